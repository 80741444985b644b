package memory

import (
	"context"

	"github.com/jhoicas/MissVentas-api/internal/application/circle"
	"github.com/jhoicas/MissVentas-api/internal/application/ledger"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
)

var (
	_ ledger.SaleTxRunner      = (*TxRunner)(nil)
	_ ledger.ReconcileTxRunner = (*TxRunner)(nil)
	_ circle.TxRunner          = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks con repositorios atados a una copia del estado (commit/rollback).
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// RunSale transacción de venta: Sale + Product + Client.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	clients repository.ClientRepository,
) error) error {
	return r.store.run(ctx, func(tx *state) error {
		a := access{store: r.store, tx: tx}
		return fn(&SaleRepo{a: a}, &ProductRepo{a: a}, &ClientRepo{a: a})
	})
}

// RunReconcile transacción de conciliación: Client + Sale + Payment.
func (r *TxRunner) RunReconcile(ctx context.Context, fn func(
	clients repository.ClientRepository,
	sales repository.SaleRepository,
	payments repository.PaymentRepository,
) error) error {
	return r.store.run(ctx, func(tx *state) error {
		a := access{store: r.store, tx: tx}
		return fn(&ClientRepo{a: a}, &SaleRepo{a: a}, &PaymentRepo{a: a})
	})
}

// RunCircle transacción de tandas: Circle + CirclePayment.
func (r *TxRunner) RunCircle(ctx context.Context, fn func(
	circles repository.CircleRepository,
	payments repository.CirclePaymentRepository,
) error) error {
	return r.store.run(ctx, func(tx *state) error {
		a := access{store: r.store, tx: tx}
		return fn(&CircleRepo{a: a}, &CirclePaymentRepo{a: a})
	})
}
