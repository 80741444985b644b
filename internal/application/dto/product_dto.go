package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para dar de alta un producto en inventario.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	Cost           decimal.Decimal `json:"cost"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	Stock          int             `json:"stock"`
	Photo          string          `json:"photo,omitempty"`
	Category       string          `json:"category,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: solo lo mueven las ventas).
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Cost           *decimal.Decimal `json:"cost"`
	SuggestedPrice *decimal.Decimal `json:"suggested_price"`
	Photo          *string          `json:"photo"`
	Category       *string          `json:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Cost           decimal.Decimal `json:"cost"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	Stock          int             `json:"stock"`
	Photo          string          `json:"photo,omitempty"`
	Category       string          `json:"category,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
