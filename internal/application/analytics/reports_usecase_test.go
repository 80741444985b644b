package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MissVentas-api/internal/application/analytics"
	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
	"github.com/jhoicas/MissVentas-api/internal/infrastructure/memory"
)

func seed(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	for _, p := range []*entity.Product{
		{Name: "A", Cost: decimal.NewFromInt(10), SuggestedPrice: decimal.NewFromInt(20), Stock: 5},
		{Name: "B", Cost: decimal.NewFromInt(4), SuggestedPrice: decimal.NewFromInt(9), Stock: 2},
		{Name: "C", Cost: decimal.NewFromInt(7), SuggestedPrice: decimal.NewFromInt(15), Stock: 0},
	} {
		require.NoError(t, store.Products().Create(ctx, p))
	}
	for _, c := range []*entity.Client{
		{Name: "Ana", TotalDebt: decimal.RequireFromString("30.50")},
		{Name: "Bea", TotalDebt: decimal.NewFromInt(20)},
	} {
		require.NoError(t, store.Clients().Create(ctx, c))
	}
	now := time.Now()
	for _, s := range []*entity.Sale{
		{ProductID: 1, ClientID: 1, SalePrice: decimal.NewFromInt(20), Profit: decimal.NewFromInt(10), Date: now},
		{ProductID: 2, ClientID: 2, SalePrice: decimal.NewFromInt(9), Profit: decimal.NewFromInt(5), Date: now.AddDate(0, 0, -3)},
		{ProductID: 3, ClientID: 1, SalePrice: decimal.NewFromInt(11), Profit: decimal.NewFromInt(5), Date: now.AddDate(0, 0, -30)},
	} {
		require.NoError(t, store.Sales().Create(ctx, s))
	}
	return store
}

func newReports(store *memory.Store) *analytics.ReportsUseCase {
	return analytics.NewReportsUseCase(store.Sales(), store.Products(), store.Clients(), 2)
}

func TestSummary(t *testing.T) {
	res, err := newReports(seed(t)).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "40.00", res.TotalSales.StringFixed(2))
	assert.Equal(t, "20.00", res.TotalProfit.StringFixed(2))
	assert.Equal(t, "58.00", res.InventoryInvestment.StringFixed(2))
	assert.Equal(t, "118.00", res.ExpectedSaleValue.StringFixed(2))
	assert.Equal(t, "60.00", res.ProjectedProfit.StringFixed(2))
	assert.Equal(t, "50.50", res.TotalDebt.StringFixed(2))
	assert.Equal(t, 1, res.LowStock)
	assert.Equal(t, 1, res.OutOfStock)
	assert.Equal(t, "50.0", res.AverageMargin.StringFixed(1))
}

func TestSummary_StockNegativo(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{Name: "A", Cost: decimal.NewFromInt(10), SuggestedPrice: decimal.NewFromInt(20), Stock: 3}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{Name: "B", Cost: decimal.NewFromInt(5), SuggestedPrice: decimal.NewFromInt(8), Stock: -2}))

	res, err := newReports(store).Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.OutOfStock)
	assert.Equal(t, 0, res.LowStock)
	assert.Equal(t, "30.00", res.InventoryInvestment.StringFixed(2))
	assert.Equal(t, "60.00", res.ExpectedSaleValue.StringFixed(2))
}

func TestSummary_SinVentas(t *testing.T) {
	res, err := newReports(memory.NewStore()).Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, res.AverageMargin.IsZero())
	assert.True(t, res.TotalSales.IsZero())
}

func TestToday(t *testing.T) {
	res, err := newReports(seed(t)).Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.SaleCount)
	assert.Equal(t, "20.00", res.Sales.StringFixed(2))
	assert.Equal(t, "10.00", res.Profit.StringFixed(2))
}

func TestWeekly(t *testing.T) {
	points, err := newReports(seed(t)).Weekly(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 7)

	now := time.Now()
	assert.Equal(t, now.Format(time.DateOnly), points[6].Date)
	assert.Equal(t, "20.00", points[6].Sales.StringFixed(2))
	assert.Equal(t, "9.00", points[3].Sales.StringFixed(2))
	assert.True(t, points[0].Sales.IsZero())

	labels := map[time.Weekday]string{time.Sunday: "Dom", time.Monday: "Lun", time.Tuesday: "Mar", time.Wednesday: "Mie", time.Thursday: "Jue", time.Friday: "Vie", time.Saturday: "Sab"}
	assert.Equal(t, labels[now.Weekday()], points[6].Label)
}
