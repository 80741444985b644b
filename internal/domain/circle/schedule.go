// Package circle contiene las reglas del calendario de la tanda (servicio de dominio).
package circle

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
)

// FirstPeriod número del único periodo que se genera.
const FirstPeriod = 1

// ParticipantNames recorta los nombres y reemplaza los vacíos por "Participante N".
// Devuelve false si dos participantes terminan con el mismo nombre.
func ParticipantNames(names []string) ([]string, bool) {
	out := make([]string, len(names))
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Participante %d", i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, false
		}
		seen[name] = struct{}{}
		out[i] = name
	}
	return out, true
}

// SeedFirstPeriod genera las obligaciones del periodo 1 para los participantes en orden.
// El participante en la posición 0 es el beneficiario: monto 0, pagado y exento.
// Los nombres vacíos se reemplazan por "Participante N".
func SeedFirstPeriod(circleID int64, amountPerSlot decimal.Decimal, names []string) []*entity.CirclePayment {
	out := make([]*entity.CirclePayment, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Participante %d", i+1)
		}
		p := &entity.CirclePayment{
			CircleID:        circleID,
			PeriodNumber:    FirstPeriod,
			ParticipantName: name,
			Amount:          amountPerSlot,
		}
		if i == 0 {
			p.Amount = decimal.Zero
			p.Paid = true
			p.IsBeneficiary = true
		}
		out = append(out, p)
	}
	return out
}

// Progress totales de un periodo: recaudado, pendiente y participantes al corriente.
type Progress struct {
	Collected decimal.Decimal
	Pending   decimal.Decimal
	PaidCount int
	Total     int
}

// PeriodProgress resume los pagos del periodo; el beneficiario cuenta como al corriente.
func PeriodProgress(payments []*entity.CirclePayment) Progress {
	pr := Progress{Collected: decimal.Zero, Pending: decimal.Zero, Total: len(payments)}
	for _, p := range payments {
		if p.Paid {
			pr.PaidCount++
			pr.Collected = pr.Collected.Add(p.Amount)
			continue
		}
		pr.Pending = pr.Pending.Add(p.Amount)
	}
	return pr
}
