package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MissVentas-api/internal/application/dto"
	"github.com/jhoicas/MissVentas-api/internal/application/events"
	"github.com/jhoicas/MissVentas-api/internal/application/usecase"
	"github.com/jhoicas/MissVentas-api/internal/domain"
	"github.com/jhoicas/MissVentas-api/internal/infrastructure/memory"
)

func TestClientUseCase_CreateDeudaCero(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewClientUseCase(store.Clients(), events.Discard{})

	c, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "María", Nickname: "Mary", WhatsApp: " 555 "})
	require.NoError(t, err)
	assert.True(t, c.TotalDebt.IsZero())
	assert.Equal(t, "555", c.WhatsApp)

	_, err = uc.Create(context.Background(), dto.CreateClientRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientUseCase_UpdateNoTocaDeuda(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewClientUseCase(store.Clients(), events.Discard{})
	c, err := uc.Create(ctx, dto.CreateClientRequest{Name: "Rosa"})
	require.NoError(t, err)
	require.NoError(t, store.Clients().UpdateTotalDebt(ctx, c.ID, decimal.NewFromInt(80)))

	nick := "Rosi"
	res, err := uc.Update(ctx, c.ID, dto.UpdateClientRequest{Nickname: &nick})
	require.NoError(t, err)
	assert.Equal(t, "Rosi", res.Nickname)
	assert.Equal(t, "Rosa", res.Name)
	assert.True(t, res.TotalDebt.Equal(decimal.NewFromInt(80)))

	_, err = uc.Update(ctx, 99, dto.UpdateClientRequest{Nickname: &nick})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
	_, err = uc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientUseCase_ListPorApodo(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewClientUseCase(store.Clients(), events.Discard{})
	for _, in := range []dto.CreateClientRequest{{Name: "Lucía", Nickname: "Lu"}, {Name: "Sofía", Nickname: "Chofis"}} {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	list, err := uc.List(ctx, "chof")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sofía", list[0].Name)

	list, err = uc.List(ctx, "lucia")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestClientUseCase_PublicaEventos(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	bus := events.NewBus(zerolog.Nop())
	ch, cancel := bus.Subscribe(4)
	defer cancel()
	uc := usecase.NewClientUseCase(store.Clients(), bus)

	c, err := uc.Create(ctx, dto.CreateClientRequest{Name: "Tere"})
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, events.TopicClientCreated, ev.Topic)
		assert.Equal(t, c.ID, ev.EntityID)
	case <-time.After(time.Second):
		t.Fatal("evento no publicado")
	}
}
