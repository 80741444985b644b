package repository

import (
	"context"
	"time"

	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (solo inserción y lectura).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	ListByClient(ctx context.Context, clientID int64) ([]*entity.Sale, error)
	// ListSince devuelve las ventas con fecha >= since, en orden de creación.
	ListSince(ctx context.Context, since time.Time) ([]*entity.Sale, error)
}
