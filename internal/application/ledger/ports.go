// Package ledger coordina el libro de crédito de clientes: ventas a crédito,
// abonos con verificación y conciliación de la deuda contra el historial.
package ledger

import (
	"context"

	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
)

// SaleTxRunner ejecuta la venta dentro de una transacción que abarca Sale, Product y Client.
// Si fn devuelve error no queda ninguna escritura visible.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		sales repository.SaleRepository,
		products repository.ProductRepository,
		clients repository.ClientRepository,
	) error) error
}

// ReconcileTxRunner ejecuta lectura-cálculo-escritura de la deuda dentro de una transacción
// que abarca Client, Sale y Payment.
type ReconcileTxRunner interface {
	RunReconcile(ctx context.Context, fn func(
		clients repository.ClientRepository,
		sales repository.SaleRepository,
		payments repository.PaymentRepository,
	) error) error
}
