package repository

import (
	"context"

	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
)

// CircleRepository define el puerto de persistencia para tandas.
type CircleRepository interface {
	Create(ctx context.Context, circle *entity.Circle) error
	GetByID(ctx context.Context, id int64) (*entity.Circle, error)
	List(ctx context.Context) ([]*entity.Circle, error)
}

// CirclePaymentRepository define el puerto de persistencia para los pagos de tanda.
type CirclePaymentRepository interface {
	// CreateBatch inserta los pagos en orden y asigna sus IDs.
	CreateBatch(ctx context.Context, payments []*entity.CirclePayment) error
	GetByID(ctx context.Context, id int64) (*entity.CirclePayment, error)
	ListByCircle(ctx context.Context, circleID int64) ([]*entity.CirclePayment, error)
	MarkPaid(ctx context.Context, paymentID int64) error
}
