package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/MissVentas-api/internal/application/dto"
	"github.com/jhoicas/MissVentas-api/internal/application/events"
	"github.com/jhoicas/MissVentas-api/internal/domain"
	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
	domainledger "github.com/jhoicas/MissVentas-api/internal/domain/ledger"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
)

// SaleOptions reglas configurables del registro de ventas.
type SaleOptions struct {
	// EnforceStock rechaza con ErrInsufficientStock la venta de un producto con stock <= 0.
	EnforceStock bool
	// ReconcileOnSale recalcula la deuda (verified-only) tras el commit de la venta.
	ReconcileOnSale bool
}

// SaleCoordinator registra ventas a crédito de forma atómica:
// crea la venta, descuenta una unidad de stock y suma el precio a la deuda del cliente.
type SaleCoordinator struct {
	tx         SaleTxRunner
	reconciler *DebtReconciler
	sales      repository.SaleRepository
	products   repository.ProductRepository
	clients    repository.ClientRepository
	events     events.Publisher
	log        zerolog.Logger
	opts       SaleOptions
	now        func() time.Time
}

// NewSaleCoordinator construye el caso de uso.
func NewSaleCoordinator(
	tx SaleTxRunner,
	reconciler *DebtReconciler,
	sales repository.SaleRepository,
	products repository.ProductRepository,
	clients repository.ClientRepository,
	publisher events.Publisher,
	log zerolog.Logger,
	opts SaleOptions,
) *SaleCoordinator {
	return &SaleCoordinator{
		tx:         tx,
		reconciler: reconciler,
		sales:      sales,
		products:   products,
		clients:    clients,
		events:     publisher,
		log:        log,
		opts:       opts,
		now:        time.Now,
	}
}

// RecordSale registra la venta y devuelve su ID.
//
// Dentro de una sola transacción (RunSale):
//  1. inserta la venta con Profit = precio − costo actual del producto
//  2. descuenta 1 al stock del producto
//  3. suma el precio a la deuda del cliente (incremental, sin recalcular)
//
// Si el producto o el cliente no existen se aborta sin escrituras.
func (uc *SaleCoordinator) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (int64, error) {
	if in.ProductID <= 0 || in.ClientID <= 0 || in.SalePrice.IsNegative() {
		return 0, domain.ErrInvalidInput
	}
	price := in.SalePrice.Round(2)
	now := uc.now()

	var sale entity.Sale
	var cachedDebt decimal.Decimal
	err := uc.tx.RunSale(ctx, func(
		sales repository.SaleRepository,
		products repository.ProductRepository,
		clients repository.ClientRepository,
	) error {
		product, err := products.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return fmt.Errorf("record sale: get product: %w", err)
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		client, err := clients.GetForUpdate(ctx, in.ClientID)
		if err != nil {
			return fmt.Errorf("record sale: get client: %w", err)
		}
		if client == nil {
			return domain.ErrClientNotFound
		}
		if uc.opts.EnforceStock && product.Stock <= 0 {
			return domain.ErrInsufficientStock
		}

		sale = entity.Sale{
			ProductID: product.ID,
			ClientID:  client.ID,
			SalePrice: price,
			Profit:    product.ProfitAt(price).Round(2),
			Date:      now,
			Paid:      false,
		}
		if err := sales.Create(ctx, &sale); err != nil {
			return fmt.Errorf("record sale: insert sale: %w", err)
		}
		if err := products.UpdateStock(ctx, product.ID, product.Stock-1); err != nil {
			return fmt.Errorf("record sale: update stock: %w", err)
		}
		cachedDebt = client.TotalDebt.Add(price)
		if err := clients.UpdateTotalDebt(ctx, client.ID, cachedDebt); err != nil {
			return fmt.Errorf("record sale: update debt: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).
			Int64("product_id", in.ProductID).
			Int64("client_id", in.ClientID).
			Msg("venta rechazada")
		return 0, err
	}

	uc.log.Info().
		Int64("sale_id", sale.ID).
		Int64("product_id", sale.ProductID).
		Int64("client_id", sale.ClientID).
		Str("price", price.StringFixed(2)).
		Str("profit", sale.Profit.StringFixed(2)).
		Msg("venta registrada")
	uc.events.Publish(events.Event{
		Topic:    events.TopicSaleRecorded,
		EntityID: sale.ID,
		Data:     map[string]any{"client_id": sale.ClientID, "product_id": sale.ProductID},
	})

	if uc.opts.ReconcileOnSale {
		uc.reconcileAfterSale(ctx, sale.ClientID, cachedDebt)
	}
	return sale.ID, nil
}

// reconcileAfterSale trata la deuda incremental como caché: la recalcula desde el historial
// y avisa si ambas rutas divergen. La venta ya está confirmada; un fallo aquí solo se registra.
func (uc *SaleCoordinator) reconcileAfterSale(ctx context.Context, clientID int64, cached decimal.Decimal) {
	res, err := uc.reconciler.RecomputeDebt(ctx, clientID, domainledger.PolicyVerifiedOnly)
	if err != nil {
		uc.log.Error().Err(err).Int64("client_id", clientID).Msg("conciliación posterior a la venta falló")
		return
	}
	if !res.TotalDebt.Equal(cached.Round(2)) {
		uc.log.Warn().
			Int64("client_id", clientID).
			Str("incremental", cached.StringFixed(2)).
			Str("reconciled", res.TotalDebt.StringFixed(2)).
			Msg("deuda incremental divergía del historial; se corrigió")
	}
}

// GetSale devuelve la venta con su producto y cliente.
func (uc *SaleCoordinator) GetSale(ctx context.Context, id int64) (*dto.SaleDetailResponse, error) {
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	out := &dto.SaleDetailResponse{Sale: dto.FromSale(sale)}
	product, err := uc.products.GetByID(ctx, sale.ProductID)
	if err != nil {
		return nil, err
	}
	if product != nil {
		p := dto.FromProduct(product)
		out.Product = &p
	}
	client, err := uc.clients.GetByID(ctx, sale.ClientID)
	if err != nil {
		return nil, err
	}
	if client != nil {
		c := dto.FromClient(client)
		out.Client = &c
	}
	return out, nil
}

// ListByClient lista las ventas del cliente, la más reciente primero.
func (uc *SaleCoordinator) ListByClient(ctx context.Context, clientID int64) ([]dto.SaleResponse, error) {
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	list, err := uc.sales.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.FromSale(s))
	}
	return out, nil
}
