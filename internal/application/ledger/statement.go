package ledger

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/MissVentas-api/internal/application/dto"
	"github.com/jhoicas/MissVentas-api/internal/domain"
	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
	domainledger "github.com/jhoicas/MissVentas-api/internal/domain/ledger"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
)

const deletedProductName = "Producto eliminado"

// StatementUseCase arma el estado de cuenta de un cliente (solo lectura).
type StatementUseCase struct {
	clients  repository.ClientRepository
	sales    repository.SaleRepository
	payments repository.PaymentRepository
	products repository.ProductRepository
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(
	clients repository.ClientRepository,
	sales repository.SaleRepository,
	payments repository.PaymentRepository,
	products repository.ProductRepository,
) *StatementUseCase {
	return &StatementUseCase{clients: clients, sales: sales, payments: payments, products: products}
}

// Get devuelve compras (la más reciente primero), abonos y totales del cliente.
func (uc *StatementUseCase) Get(ctx context.Context, clientID int64) (*dto.StatementResponse, error) {
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}

	var (
		sales    []*entity.Sale
		payments []*entity.Payment
		products []*entity.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = uc.sales.ListByClient(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		payments, err = uc.payments.ListByClient(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		products, err = uc.products.List(gctx, repository.ProductFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	sort.SliceStable(sales, func(i, j int) bool { return sales[i].ID > sales[j].ID })

	out := &dto.StatementResponse{
		Client:              dto.FromClient(client),
		Sales:               make([]dto.StatementSaleLine, 0, len(sales)),
		Payments:            make([]dto.PaymentResponse, 0, len(payments)),
		PendingVerification: domainledger.PendingVerification(payments),
	}
	for _, s := range sales {
		name, ok := names[s.ProductID]
		if !ok {
			name = deletedProductName
		}
		out.Sales = append(out.Sales, dto.StatementSaleLine{
			SaleID:      s.ID,
			ProductID:   s.ProductID,
			ProductName: name,
			SalePrice:   s.SalePrice,
			Date:        s.Date,
		})
	}
	for _, p := range payments {
		out.Payments = append(out.Payments, dto.FromPayment(p, client.TotalDebt))
	}
	verified := domainledger.ComputeDebt(domainledger.PolicyVerifiedOnly, sales, payments)
	out.TotalSales = verified.Sales
	out.TotalVerified = verified.Credits
	return out, nil
}
