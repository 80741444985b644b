package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario.
// Stock solo lo modifica el coordinador de ventas; no hay borrado físico.
type Product struct {
	ID             int64
	Name           string
	Cost           decimal.Decimal // costo de adquisición
	SuggestedPrice decimal.Decimal // precio de venta sugerido
	Stock          int
	Photo          string // imagen codificada (data URL), opaca para el núcleo
	Category       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProfitAt utilidad de vender el producto al precio indicado con el costo actual.
func (p *Product) ProfitAt(salePrice decimal.Decimal) decimal.Decimal {
	return salePrice.Sub(p.Cost)
}
