package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para registrar un abono. Date vacío = ahora.
type CreatePaymentRequest struct {
	ClientID int64           `json:"client_id"`
	Amount   decimal.Decimal `json:"amount"`
	Date     *time.Time      `json:"date,omitempty"`
	Evidence string          `json:"evidence,omitempty"`
	Verified bool            `json:"verified"`
}

// SetVerifiedRequest entrada para cambiar el estado de verificación de un abono.
// Verified es obligatorio: un cuerpo sin el campo no cambia el estado.
type SetVerifiedRequest struct {
	Verified *bool `json:"verified"`
}

// PaymentResponse salida de un abono, con la deuda del cliente ya recalculada.
type PaymentResponse struct {
	ID         int64           `json:"id"`
	ClientID   int64           `json:"client_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Evidence   string          `json:"evidence,omitempty"`
	Verified   bool            `json:"verified"`
	ClientDebt decimal.Decimal `json:"client_debt"`
}

// StatementSaleLine línea de compra en el estado de cuenta.
type StatementSaleLine struct {
	SaleID      int64           `json:"sale_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Date        time.Time       `json:"date"`
}

// StatementResponse estado de cuenta de un cliente.
type StatementResponse struct {
	Client              ClientResponse      `json:"client"`
	Sales               []StatementSaleLine `json:"sales"`
	Payments            []PaymentResponse   `json:"payments"`
	TotalSales          decimal.Decimal     `json:"total_sales"`
	TotalVerified       decimal.Decimal     `json:"total_verified"`
	PendingVerification decimal.Decimal     `json:"pending_verification"`
}
