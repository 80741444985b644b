package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/MissVentas-api/internal/application/circle"
	"github.com/jhoicas/MissVentas-api/internal/application/ledger"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
)

var (
	_ ledger.SaleTxRunner      = (*TxRunner)(nil)
	_ ledger.ReconcileTxRunner = (*TxRunner)(nil)
	_ circle.TxRunner          = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale inicia una transacción con repos de ventas, productos y clientes (para RecordSale).
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	clients repository.ClientRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewSaleRepository(tx), NewProductRepository(tx), NewClientRepository(tx))
	})
}

// RunReconcile inicia una transacción con repos de clientes, ventas y abonos (recálculo de deuda).
func (r *TxRunner) RunReconcile(ctx context.Context, fn func(
	clients repository.ClientRepository,
	sales repository.SaleRepository,
	payments repository.PaymentRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewClientRepository(tx), NewSaleRepository(tx), NewPaymentRepository(tx))
	})
}

// RunCircle inicia una transacción con repos de tandas y sus pagos.
func (r *TxRunner) RunCircle(ctx context.Context, fn func(
	circles repository.CircleRepository,
	payments repository.CirclePaymentRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCircleRepository(tx), NewCirclePaymentRepository(tx))
	})
}

// run hace Commit si fn termina sin error; en cualquier otro caso Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
