package circle_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MissVentas-api/internal/domain/circle"
	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
)

func names() []string {
	return []string{"Ana", "Bety", "Carla", "Dora", "Elsa", "Fabi", "Gaby", "Hilda", "Irma", "Juana", "Karla"}
}

func TestSeedFirstPeriod_BeneficiarioYObligaciones(t *testing.T) {
	amount := decimal.NewFromInt(500)
	got := circle.SeedFirstPeriod(7, amount, names())
	require.Len(t, got, entity.CircleParticipants)

	first := got[0]
	assert.Equal(t, "Ana", first.ParticipantName)
	assert.True(t, first.Amount.IsZero())
	assert.True(t, first.Paid)
	assert.True(t, first.IsBeneficiary)
	assert.Equal(t, entity.CirclePaymentExempt, first.State())

	for i, p := range got[1:] {
		assert.Equal(t, int64(7), p.CircleID)
		assert.Equal(t, 1, p.PeriodNumber)
		assert.True(t, p.Amount.Equal(amount), "fila %d", i+1)
		assert.False(t, p.Paid)
		assert.False(t, p.IsBeneficiary)
		assert.Equal(t, entity.CirclePaymentUnpaid, p.State())
	}
}

func TestSeedFirstPeriod_NombresVacios(t *testing.T) {
	n := names()
	n[3] = "   "
	got := circle.SeedFirstPeriod(1, decimal.NewFromInt(100), n)
	assert.Equal(t, "Participante 4", got[3].ParticipantName)
}

func TestParticipantNames(t *testing.T) {
	n := names()
	n[2] = "  Carla "
	n[6] = ""
	got, ok := circle.ParticipantNames(n)
	require.True(t, ok)
	assert.Equal(t, "Carla", got[2])
	assert.Equal(t, "Participante 7", got[6])

	n = names()
	n[10] = "Ana"
	_, ok = circle.ParticipantNames(n)
	assert.False(t, ok)

	n = names()
	n[0] = ""
	n[4] = "Participante 1"
	_, ok = circle.ParticipantNames(n)
	assert.False(t, ok)
}

func TestPeriodProgress(t *testing.T) {
	got := circle.SeedFirstPeriod(1, decimal.NewFromInt(500), names())
	got[1].Paid = true

	pr := circle.PeriodProgress(got)
	assert.Equal(t, 2, pr.PaidCount)
	assert.Equal(t, 11, pr.Total)
	assert.True(t, pr.Collected.Equal(decimal.NewFromInt(500)))
	assert.True(t, pr.Pending.Equal(decimal.NewFromInt(4500)))
}
