package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
	"github.com/jhoicas/MissVentas-api/internal/infrastructure/memory"
)

func TestStore_IDsMonotonosPorTipo(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	p1 := &entity.Product{Name: "Labial"}
	p2 := &entity.Product{Name: "Rímel"}
	c1 := &entity.Client{Name: "Ana"}
	require.NoError(t, store.Products().Create(ctx, p1))
	require.NoError(t, store.Products().Create(ctx, p2))
	require.NoError(t, store.Clients().Create(ctx, c1))

	assert.Equal(t, int64(1), p1.ID)
	assert.Equal(t, int64(2), p2.ID)
	assert.Equal(t, int64(1), c1.ID, "cada tipo tiene su propio contador")
}

func TestStore_GetByIDInexistenteDevuelveNil(t *testing.T) {
	p, err := memory.NewStore().Products().GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestStore_LecturasDevuelvenCopias(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	p := &entity.Product{Name: "Crema", Stock: 3}
	require.NoError(t, store.Products().Create(ctx, p))

	got, _ := store.Products().GetByID(ctx, p.ID)
	got.Stock = 0

	again, _ := store.Products().GetByID(ctx, p.ID)
	assert.Equal(t, 3, again.Stock)
}

func TestStore_UpdateNoTocaStockNiDeuda(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	p := &entity.Product{Name: "Crema", Stock: 3}
	require.NoError(t, store.Products().Create(ctx, p))
	c := &entity.Client{Name: "Ana", TotalDebt: decimal.NewFromInt(40)}
	require.NoError(t, store.Clients().Create(ctx, c))

	require.NoError(t, store.Products().Update(ctx, &entity.Product{ID: p.ID, Name: "Crema facial", Stock: 100}))
	require.NoError(t, store.Clients().Update(ctx, &entity.Client{ID: c.ID, Name: "Ana María", TotalDebt: decimal.Zero}))

	gotP, _ := store.Products().GetByID(ctx, p.ID)
	gotC, _ := store.Clients().GetByID(ctx, c.ID)
	assert.Equal(t, "Crema facial", gotP.Name)
	assert.Equal(t, 3, gotP.Stock)
	assert.Equal(t, "Ana María", gotC.Name)
	assert.True(t, gotC.TotalDebt.Equal(decimal.NewFromInt(40)))
}

func TestStore_FiltroPorStock(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for _, s := range []int{0, 2, 5} {
		require.NoError(t, store.Products().Create(ctx, &entity.Product{Name: "p", Stock: s}))
	}
	limit := 2
	list, err := store.Products().List(ctx, repository.ProductFilter{MaxStock: &limit})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 0, list[0].Stock)
	assert.Equal(t, 2, list[1].Stock)
}

func TestTxRunner_RollbackDescartaEscrituras(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)
	p := &entity.Product{Name: "Perfume", Stock: 3}
	require.NoError(t, store.Products().Create(ctx, p))

	boom := errors.New("boom")
	err := runner.RunSale(ctx, func(sales repository.SaleRepository, products repository.ProductRepository, _ repository.ClientRepository) error {
		require.NoError(t, sales.Create(ctx, &entity.Sale{ProductID: p.ID}))
		require.NoError(t, products.UpdateStock(ctx, p.ID, 2))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, _ := store.Products().GetByID(ctx, p.ID)
	assert.Equal(t, 3, got.Stock, "el stock no debe cambiar tras rollback")
	sales, _ := store.Sales().ListByClient(ctx, 0)
	assert.Empty(t, sales)

	// El contador tampoco avanza: la siguiente venta recibe el ID 1
	s := &entity.Sale{}
	require.NoError(t, store.Sales().Create(ctx, s))
	assert.Equal(t, int64(1), s.ID)
}

func TestTxRunner_CommitPublicaEscrituras(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)

	err := runner.RunCircle(ctx, func(circles repository.CircleRepository, payments repository.CirclePaymentRepository) error {
		c := &entity.Circle{Name: "Tanda"}
		if err := circles.Create(ctx, c); err != nil {
			return err
		}
		return payments.CreateBatch(ctx, []*entity.CirclePayment{{CircleID: c.ID}, {CircleID: c.ID}})
	})
	require.NoError(t, err)

	list, _ := store.CirclePayments().ListByCircle(ctx, 1)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)
}

func TestTxRunner_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := memory.NewTxRunner(memory.NewStore())
	called := false
	err := runner.RunReconcile(ctx, func(repository.ClientRepository, repository.SaleRepository, repository.PaymentRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
