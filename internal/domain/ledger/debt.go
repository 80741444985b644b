// Package ledger contiene las reglas puras de la deuda de clientes (servicio de dominio).
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
)

// Policy define qué abonos se descuentan al recalcular la deuda.
type Policy string

const (
	// PolicyVerifiedOnly descuenta solo abonos verificados y nunca baja de cero. Es la fórmula autoritativa.
	PolicyVerifiedOnly Policy = "verified-only"
	// PolicyAllPayments descuenta todos los abonos y no se recorta en cero (resincronización masiva).
	PolicyAllPayments Policy = "all-payments"
)

// ParsePolicy interpreta la política; vacío equivale a verified-only.
func ParsePolicy(s string) (Policy, bool) {
	switch Policy(s) {
	case "", PolicyVerifiedOnly:
		return PolicyVerifiedOnly, true
	case PolicyAllPayments:
		return PolicyAllPayments, true
	default:
		return "", false
	}
}

// Totals desglose de un recálculo.
type Totals struct {
	Sales   decimal.Decimal
	Credits decimal.Decimal
	Debt    decimal.Decimal
}

// ComputeDebt aplica la política sobre el historial de ventas y abonos de un cliente.
//
//	verified-only: Debt = max(0, Σ ventas − Σ abonos verificados)
//	all-payments:  Debt = Σ ventas − Σ abonos (puede ser negativa)
func ComputeDebt(policy Policy, sales []*entity.Sale, payments []*entity.Payment) Totals {
	totalSales := decimal.Zero
	for _, s := range sales {
		totalSales = totalSales.Add(s.SalePrice)
	}
	credits := decimal.Zero
	for _, p := range payments {
		if policy == PolicyVerifiedOnly && !p.Verified {
			continue
		}
		credits = credits.Add(p.Amount)
	}
	debt := totalSales.Sub(credits)
	if policy == PolicyVerifiedOnly && debt.IsNegative() {
		debt = decimal.Zero
	}
	return Totals{
		Sales:   totalSales.Round(2),
		Credits: credits.Round(2),
		Debt:    debt.Round(2),
	}
}

// PendingVerification suma los abonos aún no verificados.
func PendingVerification(payments []*entity.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if !p.Verified {
			total = total.Add(p.Amount)
		}
	}
	return total.Round(2)
}
