package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MissVentas-api/internal/application/dto"
	"github.com/jhoicas/MissVentas-api/internal/application/events"
	"github.com/jhoicas/MissVentas-api/internal/domain"
	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
	"github.com/jhoicas/MissVentas-api/pkg/textfold"
)

// ClientUseCase alta y mantenimiento del directorio de clientes.
// La deuda nunca se escribe aquí: la mantienen las ventas, los abonos y la conciliación.
type ClientUseCase struct {
	repo   repository.ClientRepository
	events events.Publisher
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, publisher events.Publisher) *ClientUseCase {
	return &ClientUseCase{repo: repo, events: publisher}
}

// Create registra un cliente con deuda 0.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		Name:      name,
		Nickname:  strings.TrimSpace(in.Nickname),
		WhatsApp:  strings.TrimSpace(in.WhatsApp),
		Facebook:  strings.TrimSpace(in.Facebook),
		Other:     strings.TrimSpace(in.Other),
		TotalDebt: decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	uc.events.Publish(events.Event{Topic: events.TopicClientCreated, EntityID: client.ID})
	res := dto.FromClient(client)
	return &res, nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	res := dto.FromClient(client)
	return &res, nil
}

// List lista clientes; q busca en nombre y apodo sin distinguir acentos ni mayúsculas.
func (uc *ClientUseCase) List(ctx context.Context, q string) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		if textfold.Contains(q, c.Name, c.Nickname) {
			items = append(items, dto.FromClient(c))
		}
	}
	return items, nil
}

// Update modifica los datos de contacto.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Name = name
	}
	if in.Nickname != nil {
		client.Nickname = strings.TrimSpace(*in.Nickname)
	}
	if in.WhatsApp != nil {
		client.WhatsApp = strings.TrimSpace(*in.WhatsApp)
	}
	if in.Facebook != nil {
		client.Facebook = strings.TrimSpace(*in.Facebook)
	}
	if in.Other != nil {
		client.Other = strings.TrimSpace(*in.Other)
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	uc.events.Publish(events.Event{Topic: events.TopicClientUpdated, EntityID: client.ID})
	res := dto.FromClient(client)
	return &res, nil
}
