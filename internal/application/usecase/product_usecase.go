package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/MissVentas-api/internal/application/dto"
	"github.com/jhoicas/MissVentas-api/internal/application/events"
	"github.com/jhoicas/MissVentas-api/internal/domain"
	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
	"github.com/jhoicas/MissVentas-api/pkg/textfold"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo lo descuentan las ventas.
type ProductUseCase struct {
	repo              repository.ProductRepository
	events            events.Publisher
	lowStockThreshold int
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, publisher events.Publisher, lowStockThreshold int) *ProductUseCase {
	return &ProductUseCase{repo: repo, events: publisher, lowStockThreshold: lowStockThreshold}
}

// Create da de alta un producto con su stock inicial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Cost.IsNegative() || in.SuggestedPrice.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Name:           name,
		Cost:           in.Cost.Round(2),
		SuggestedPrice: in.SuggestedPrice.Round(2),
		Stock:          in.Stock,
		Photo:          in.Photo,
		Category:       strings.TrimSpace(in.Category),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.events.Publish(events.Event{Topic: events.TopicProductCreated, EntityID: product.ID})
	res := dto.FromProduct(product)
	return &res, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	res := dto.FromProduct(product)
	return &res, nil
}

// Update actualiza datos del catálogo. No permite modificar Stock.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = in.Cost.Round(2)
	}
	if in.SuggestedPrice != nil {
		if in.SuggestedPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SuggestedPrice = in.SuggestedPrice.Round(2)
	}
	if in.Photo != nil {
		product.Photo = *in.Photo
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.events.Publish(events.Event{Topic: events.TopicProductUpdated, EntityID: product.ID})
	res := dto.FromProduct(product)
	return &res, nil
}

// List lista productos; q filtra por nombre o categoría sin distinguir acentos ni mayúsculas.
func (uc *ProductUseCase) List(ctx context.Context, q string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if textfold.Contains(q, p.Name, p.Category) {
			items = append(items, dto.FromProduct(p))
		}
	}
	return items, nil
}

// CriticalStock productos con stock <= umbral (incluye agotados), el menor stock primero.
func (uc *ProductUseCase) CriticalStock(ctx context.Context) ([]dto.ProductResponse, error) {
	limit := uc.lowStockThreshold
	list, err := uc.repo.List(ctx, repository.ProductFilter{MaxStock: &limit})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Stock < list[j].Stock })
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProduct(p))
	}
	return items, nil
}
