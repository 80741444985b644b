package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Client, error)
	List(ctx context.Context) ([]*entity.Client, error)
	// Update modifica datos de contacto; TotalDebt se ignora.
	Update(ctx context.Context, client *entity.Client) error
	UpdateTotalDebt(ctx context.Context, clientID int64, debt decimal.Decimal) error
}
