package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta a crédito.
type RecordSaleRequest struct {
	ProductID int64           `json:"product_id"`
	ClientID  int64           `json:"client_id"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	ClientID  int64           `json:"client_id"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Profit    decimal.Decimal `json:"profit"`
	Date      time.Time       `json:"date"`
	Paid      bool            `json:"paid"`
}

// SaleDetailResponse venta con su producto y cliente (los punteros son nil si ya no existen).
type SaleDetailResponse struct {
	Sale    SaleResponse     `json:"sale"`
	Product *ProductResponse `json:"product,omitempty"`
	Client  *ClientResponse  `json:"client,omitempty"`
}
