// Package circle administra las tandas: alta con su primer periodo y registro de pagos.
package circle

import (
	"context"

	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
)

// TxRunner ejecuta fn en una transacción que abarca Circle y CirclePayment.
type TxRunner interface {
	RunCircle(ctx context.Context, fn func(
		circles repository.CircleRepository,
		payments repository.CirclePaymentRepository,
	) error) error
}
