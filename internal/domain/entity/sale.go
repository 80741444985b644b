package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta de una unidad de producto cargada a la cuenta de un cliente.
// Profit se captura al momento de la venta y no se recalcula. Inmutable tras su creación.
type Sale struct {
	ID        int64
	ProductID int64
	ClientID  int64
	SalePrice decimal.Decimal
	Profit    decimal.Decimal
	Date      time.Time
	Paid      bool // informativo; la conciliación no lo usa
}
