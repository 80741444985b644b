package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClientRequest entrada para registrar un cliente. La deuda inicia en 0.
type CreateClientRequest struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Facebook string `json:"facebook,omitempty"`
	Other    string `json:"other,omitempty"`
}

// UpdateClientRequest entrada para actualizar datos de contacto (nunca la deuda).
type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Nickname *string `json:"nickname"`
	WhatsApp *string `json:"whatsapp"`
	Facebook *string `json:"facebook"`
	Other    *string `json:"other"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Nickname  string          `json:"nickname"`
	WhatsApp  string          `json:"whatsapp,omitempty"`
	Facebook  string          `json:"facebook,omitempty"`
	Other     string          `json:"other,omitempty"`
	TotalDebt decimal.Decimal `json:"total_debt"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DebtResponse resultado de recalcular la deuda de un cliente.
type DebtResponse struct {
	ClientID     int64           `json:"client_id"`
	Policy       string          `json:"policy"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	TotalDebt    decimal.Decimal `json:"total_debt"`
}

// DebtSyncResponse resultado de la resincronización de todas las deudas.
type DebtSyncResponse struct {
	Policy  string         `json:"policy"`
	Clients []DebtResponse `json:"clients"`
}
