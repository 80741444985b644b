package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCircleRequest entrada para crear una tanda de 11 participantes.
// El participante en la posición 0 es el beneficiario del primer periodo.
type CreateCircleRequest struct {
	Name          string          `json:"name"`
	AmountPerSlot decimal.Decimal `json:"amount_per_slot"`
	Participants  []string        `json:"participants"`
}

// CircleResponse salida de una tanda.
type CircleResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	AmountPerSlot    decimal.Decimal `json:"amount_per_slot"`
	Periodicity      string          `json:"periodicity"`
	StartDate        time.Time       `json:"start_date"`
	ParticipantCount int             `json:"participant_count"`
}

// CirclePaymentResponse salida de un pago de tanda.
type CirclePaymentResponse struct {
	ID              int64           `json:"id"`
	CircleID        int64           `json:"circle_id"`
	PeriodNumber    int             `json:"period_number"`
	ParticipantName string          `json:"participant_name"`
	Amount          decimal.Decimal `json:"amount"`
	Paid            bool            `json:"paid"`
	IsBeneficiary   bool            `json:"is_beneficiary"`
	State           string          `json:"state"`
	Evidence        string          `json:"evidence,omitempty"`
}

// CircleDetailResponse tanda con sus pagos y el avance del periodo.
type CircleDetailResponse struct {
	Circle    CircleResponse          `json:"circle"`
	Payments  []CirclePaymentResponse `json:"payments"`
	Collected decimal.Decimal         `json:"collected"`
	Pending   decimal.Decimal         `json:"pending"`
	PaidCount int                     `json:"paid_count"`
}
