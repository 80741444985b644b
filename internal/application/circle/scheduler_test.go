package circle_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MissVentas-api/internal/application/circle"
	"github.com/jhoicas/MissVentas-api/internal/application/dto"
	"github.com/jhoicas/MissVentas-api/internal/application/events"
	"github.com/jhoicas/MissVentas-api/internal/domain"
	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
	"github.com/jhoicas/MissVentas-api/internal/infrastructure/memory"
)

func newScheduler(t *testing.T) (*circle.Scheduler, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	s := circle.NewScheduler(memory.NewTxRunner(store), store.Circles(), store.CirclePayments(), events.Discard{}, zerolog.Nop())
	return s, store
}

func participants() []string {
	names := make([]string, entity.CircleParticipants)
	for i := range names {
		names[i] = fmt.Sprintf("P%d", i+1)
	}
	return names
}

func TestCreateCircle_SiembraPrimerPeriodo(t *testing.T) {
	ctx := context.Background()
	s, _ := newScheduler(t)

	res, err := s.CreateCircle(ctx, dto.CreateCircleRequest{Name: "Tanda mayo", AmountPerSlot: decimal.NewFromInt(100), Participants: participants()})
	require.NoError(t, err)

	assert.Equal(t, entity.PeriodicityWeekly, res.Circle.Periodicity)
	assert.Equal(t, entity.CircleParticipants, res.Circle.ParticipantCount)
	require.Len(t, res.Payments, entity.CircleParticipants)

	beneficiary := res.Payments[0]
	assert.True(t, beneficiary.IsBeneficiary)
	assert.True(t, beneficiary.Paid)
	assert.True(t, beneficiary.Amount.IsZero())
	assert.Equal(t, entity.CirclePaymentExempt, beneficiary.State)

	for _, p := range res.Payments[1:] {
		assert.Equal(t, 1, p.PeriodNumber)
		assert.False(t, p.Paid)
		assert.False(t, p.IsBeneficiary)
		assert.True(t, p.Amount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, entity.CirclePaymentUnpaid, p.State)
	}
	assert.Equal(t, "1000.00", res.Pending.StringFixed(2))
	assert.True(t, res.Collected.IsZero())
	assert.Equal(t, 1, res.PaidCount)

	detail, err := s.GetCircleDetail(ctx, res.Circle.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Payments, entity.CircleParticipants)
}

func TestCreateCircle_EntradaInvalida(t *testing.T) {
	ctx := context.Background()
	s, store := newScheduler(t)

	cases := map[string]dto.CreateCircleRequest{
		"sin nombre":            {AmountPerSlot: decimal.NewFromInt(10), Participants: participants()},
		"monto cero":            {Name: "T", AmountPerSlot: decimal.Zero, Participants: participants()},
		"diez integrantes":      {Name: "T", AmountPerSlot: decimal.NewFromInt(10), Participants: participants()[:10]},
		"monto redondea a cero": {Name: "T", AmountPerSlot: decimal.RequireFromString("0.004"), Participants: participants()},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.CreateCircle(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	list, err := store.Circles().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateCircle_NombresVacios(t *testing.T) {
	s, _ := newScheduler(t)
	names := participants()
	names[4] = "  "
	res, err := s.CreateCircle(context.Background(), dto.CreateCircleRequest{Name: "T", AmountPerSlot: decimal.NewFromInt(10), Participants: names})
	require.NoError(t, err)
	assert.Equal(t, "Participante 5", res.Payments[4].ParticipantName)
}

func TestCreateCircle_NombresDuplicados(t *testing.T) {
	ctx := context.Background()
	s, store := newScheduler(t)

	repetido := participants()
	repetido[5] = repetido[3]

	// el vacío en la posición 1 se convierte en "Participante 2"
	porDefecto := participants()
	porDefecto[1] = ""
	porDefecto[7] = "Participante 2"

	conEspacios := participants()
	conEspacios[9] = " " + conEspacios[2] + " "

	for name, list := range map[string][]string{
		"mismo nombre":      repetido,
		"choca con default": porDefecto,
		"difiere en blanco": conEspacios,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.CreateCircle(ctx, dto.CreateCircleRequest{Name: "T", AmountPerSlot: decimal.NewFromInt(10), Participants: list})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	circles, err := store.Circles().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, circles)
}

func TestCreateCircle_RedondeaMonto(t *testing.T) {
	s, _ := newScheduler(t)
	res, err := s.CreateCircle(context.Background(), dto.CreateCircleRequest{Name: "T", AmountPerSlot: decimal.RequireFromString("10.005"), Participants: participants()})
	require.NoError(t, err)
	assert.Equal(t, "10.01", res.Circle.AmountPerSlot.StringFixed(2))
	assert.Equal(t, "10.01", res.Payments[1].Amount.StringFixed(2))
}

func TestMarkPaid(t *testing.T) {
	ctx := context.Background()
	s, _ := newScheduler(t)
	res, err := s.CreateCircle(ctx, dto.CreateCircleRequest{Name: "T", AmountPerSlot: decimal.NewFromInt(50), Participants: participants()})
	require.NoError(t, err)

	target := res.Payments[3]
	paid, err := s.MarkPaid(ctx, target.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	assert.Equal(t, entity.CirclePaymentPaid, paid.State)

	// idempotente
	again, err := s.MarkPaid(ctx, target.ID)
	require.NoError(t, err)
	assert.True(t, again.Paid)

	detail, err := s.GetCircleDetail(ctx, res.Circle.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.PaidCount)
	assert.Equal(t, "50.00", detail.Collected.StringFixed(2))
	assert.Equal(t, "450.00", detail.Pending.StringFixed(2))

	_, err = s.MarkPaid(ctx, res.Payments[0].ID)
	assert.ErrorIs(t, err, domain.ErrBeneficiaryExempt)

	_, err = s.MarkPaid(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrCirclePaymentNotFound)
}

func TestConsultas(t *testing.T) {
	ctx := context.Background()
	s, _ := newScheduler(t)
	for _, name := range []string{"A", "B"} {
		_, err := s.CreateCircle(ctx, dto.CreateCircleRequest{Name: name, AmountPerSlot: decimal.NewFromInt(10), Participants: participants()})
		require.NoError(t, err)
	}

	list, err := s.ListCircles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)

	payments, err := s.ListPayments(ctx, list[1].ID)
	require.NoError(t, err)
	assert.Len(t, payments, entity.CircleParticipants)
	for _, p := range payments {
		assert.Equal(t, list[1].ID, p.CircleID)
	}

	_, err = s.ListPayments(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrCircleNotFound)
	_, err = s.GetCircleDetail(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrCircleNotFound)
}

func TestAdvancePeriod(t *testing.T) {
	ctx := context.Background()
	s, _ := newScheduler(t)
	res, err := s.CreateCircle(ctx, dto.CreateCircleRequest{Name: "T", AmountPerSlot: decimal.NewFromInt(10), Participants: participants()})
	require.NoError(t, err)

	assert.ErrorIs(t, s.AdvancePeriod(ctx, res.Circle.ID), domain.ErrRolloverNotSupported)
	assert.ErrorIs(t, s.AdvancePeriod(ctx, 99), domain.ErrCircleNotFound)
}
