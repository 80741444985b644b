// Package analytics contiene los reportes de negocio: resumen financiero,
// ventas del día y desempeño semanal.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/MissVentas-api/internal/application/dto"
	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
)

const weekDays = 7

var (
	hundred   = decimal.NewFromInt(100)
	dayLabels = [...]string{"Dom", "Lun", "Mar", "Mie", "Jue", "Vie", "Sab"}
)

// ReportsUseCase agrega ventas, productos y clientes. Solo lectura.
type ReportsUseCase struct {
	sales             repository.SaleRepository
	products          repository.ProductRepository
	clients           repository.ClientRepository
	lowStockThreshold int
	now               func() time.Time
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	clients repository.ClientRepository,
	lowStockThreshold int,
) *ReportsUseCase {
	return &ReportsUseCase{
		sales:             sales,
		products:          products,
		clients:           clients,
		lowStockThreshold: lowStockThreshold,
		now:               time.Now,
	}
}

// Summary métricas globales.
//
// Tres lecturas en paralelo (ventas, productos, clientes); el cálculo es en memoria.
func (uc *ReportsUseCase) Summary(ctx context.Context) (*dto.ReportSummaryDTO, error) {
	var (
		sales    []*entity.Sale
		products []*entity.Product
		clients  []*entity.Client
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = uc.sales.ListSince(gctx, time.Time{})
		if err != nil {
			return fmt.Errorf("reportes: ventas: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		products, err = uc.products.List(gctx, repository.ProductFilter{})
		if err != nil {
			return fmt.Errorf("reportes: productos: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		clients, err = uc.clients.List(gctx)
		if err != nil {
			return fmt.Errorf("reportes: clientes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totalSales, totalProfit := sumSales(sales)
	investment, expected := inventoryValue(products)

	out := &dto.ReportSummaryDTO{
		TotalSales:          totalSales,
		TotalProfit:         totalProfit,
		InventoryInvestment: investment,
		ExpectedSaleValue:   expected,
		ProjectedProfit:     expected.Sub(investment),
		TotalDebt:           decimal.Zero,
		AverageMargin:       decimal.Zero,
	}
	for _, c := range clients {
		out.TotalDebt = out.TotalDebt.Add(c.TotalDebt)
	}
	out.TotalDebt = out.TotalDebt.Round(2)
	for _, p := range products {
		switch {
		case p.Stock <= 0:
			out.OutOfStock++
		case p.Stock > 0 && p.Stock <= uc.lowStockThreshold:
			out.LowStock++
		}
	}
	if totalSales.IsPositive() {
		out.AverageMargin = totalProfit.Div(totalSales).Mul(hundred).Round(1)
	}
	return out, nil
}

// Today ventas y utilidad desde la medianoche local.
func (uc *ReportsUseCase) Today(ctx context.Context) (*dto.TodayDTO, error) {
	sales, err := uc.sales.ListSince(ctx, startOfDay(uc.now()))
	if err != nil {
		return nil, fmt.Errorf("reportes: ventas de hoy: %w", err)
	}
	total, profit := sumSales(sales)
	return &dto.TodayDTO{Sales: total, Profit: profit, SaleCount: len(sales)}, nil
}

// Weekly serie de los últimos 7 días (hoy incluido), del más antiguo al más reciente.
// Los días sin ventas aparecen en cero.
func (uc *ReportsUseCase) Weekly(ctx context.Context) ([]dto.DayPointDTO, error) {
	today := startOfDay(uc.now())
	from := today.AddDate(0, 0, -(weekDays - 1))
	sales, err := uc.sales.ListSince(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("reportes: ventas semanales: %w", err)
	}

	points := make([]dto.DayPointDTO, weekDays)
	index := make(map[string]int, weekDays)
	for i := range points {
		d := from.AddDate(0, 0, i)
		key := d.Format(time.DateOnly)
		points[i] = dto.DayPointDTO{Date: key, Label: dayLabels[d.Weekday()], Sales: decimal.Zero, Profit: decimal.Zero}
		index[key] = i
	}
	for _, s := range sales {
		i, ok := index[s.Date.In(today.Location()).Format(time.DateOnly)]
		if !ok {
			continue
		}
		points[i].Sales = points[i].Sales.Add(s.SalePrice)
		points[i].Profit = points[i].Profit.Add(s.Profit)
	}
	return points, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sumSales(sales []*entity.Sale) (total, profit decimal.Decimal) {
	total, profit = decimal.Zero, decimal.Zero
	for _, s := range sales {
		total = total.Add(s.SalePrice)
		profit = profit.Add(s.Profit)
	}
	return total.Round(2), profit.Round(2)
}

// inventoryValue inversión (costo × stock) y valor de venta esperado (precio sugerido × stock).
func inventoryValue(products []*entity.Product) (investment, expected decimal.Decimal) {
	investment, expected = decimal.Zero, decimal.Zero
	for _, p := range products {
		// stock negativo (ventas sin existencias) no aporta inventario
		if p.Stock <= 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(p.Stock))
		investment = investment.Add(p.Cost.Mul(qty))
		expected = expected.Add(p.SuggestedPrice.Mul(qty))
	}
	return investment.Round(2), expected.Round(2)
}
