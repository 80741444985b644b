package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Periodicidad de una tanda.
const (
	PeriodicityWeekly   = "weekly"
	PeriodicityBiweekly = "biweekly"
	PeriodicityMonthly  = "monthly"
)

// CircleParticipants número fijo de participantes del calendario soportado.
const CircleParticipants = 11

// Estados de un pago de tanda.
const (
	CirclePaymentUnpaid = "UNPAID"
	CirclePaymentPaid   = "PAID"
	CirclePaymentExempt = "EXEMPT" // beneficiario del periodo
)

// Circle tanda: círculo de ahorro rotativo de participantes fijos.
type Circle struct {
	ID               int64
	Name             string
	AmountPerSlot    decimal.Decimal
	Periodicity      string
	StartDate        time.Time
	ParticipantCount int
}

// CirclePayment obligación de pago de un participante en un periodo.
type CirclePayment struct {
	ID              int64
	CircleID        int64
	PeriodNumber    int // empieza en 1
	ParticipantName string
	Amount          decimal.Decimal
	Paid            bool
	IsBeneficiary   bool
	Evidence        string
}

// State deriva el estado del pago: Exempt es terminal para el periodo.
func (p *CirclePayment) State() string {
	switch {
	case p.IsBeneficiary:
		return CirclePaymentExempt
	case p.Paid:
		return CirclePaymentPaid
	default:
		return CirclePaymentUnpaid
	}
}
