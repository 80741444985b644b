package dto

import "github.com/shopspring/decimal"

// ReportSummaryDTO métricas globales del negocio.
type ReportSummaryDTO struct {
	TotalSales          decimal.Decimal `json:"total_sales"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
	InventoryInvestment decimal.Decimal `json:"inventory_investment"` // Σ costo × stock
	ExpectedSaleValue   decimal.Decimal `json:"expected_sale_value"`  // Σ precio sugerido × stock
	ProjectedProfit     decimal.Decimal `json:"projected_profit"`
	TotalDebt           decimal.Decimal `json:"total_debt"`
	LowStock            int             `json:"low_stock"`
	OutOfStock          int             `json:"out_of_stock"`
	AverageMargin       decimal.Decimal `json:"average_margin"` // porcentaje
}

// TodayDTO ventas y utilidad desde la medianoche local.
type TodayDTO struct {
	Sales     decimal.Decimal `json:"sales"`
	Profit    decimal.Decimal `json:"profit"`
	SaleCount int             `json:"sale_count"`
}

// DayPointDTO punto diario de la gráfica semanal.
type DayPointDTO struct {
	Date   string          `json:"date"`  // YYYY-MM-DD
	Label  string          `json:"label"` // Dom, Lun, ...
	Sales  decimal.Decimal `json:"sales"`
	Profit decimal.Decimal `json:"profit"`
}
