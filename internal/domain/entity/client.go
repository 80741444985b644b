package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client representa un cliente con cuenta de crédito.
// TotalDebt es derivado: solo lo escriben la conciliación de deuda y el registro de ventas.
type Client struct {
	ID        int64
	Name      string
	Nickname  string
	WhatsApp  string
	Facebook  string
	Other     string
	TotalDebt decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
