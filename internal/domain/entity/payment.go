package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment abono parcial de un cliente a su deuda.
// Verified es el único campo que cambia después de crearse.
type Payment struct {
	ID       int64
	ClientID int64
	Amount   decimal.Decimal
	Date     time.Time
	Evidence string // comprobante codificado (data URL), opcional
	Verified bool
}
