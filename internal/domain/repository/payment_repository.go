package repository

import (
	"context"

	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para abonos.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id int64) (*entity.Payment, error)
	ListByClient(ctx context.Context, clientID int64) ([]*entity.Payment, error)
	SetVerified(ctx context.Context, paymentID int64, verified bool) error
}
