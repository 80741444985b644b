package ledger

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/MissVentas-api/internal/application/dto"
	"github.com/jhoicas/MissVentas-api/internal/application/events"
	"github.com/jhoicas/MissVentas-api/internal/domain"
	domainledger "github.com/jhoicas/MissVentas-api/internal/domain/ledger"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
)

// DebtReconciler recalcula la deuda de los clientes desde ventas y abonos.
// Cada recálculo escribe únicamente Client.TotalDebt.
type DebtReconciler struct {
	tx      ReconcileTxRunner
	clients repository.ClientRepository
	events  events.Publisher
	log     zerolog.Logger
}

// NewDebtReconciler construye el caso de uso.
func NewDebtReconciler(
	tx ReconcileTxRunner,
	clients repository.ClientRepository,
	publisher events.Publisher,
	log zerolog.Logger,
) *DebtReconciler {
	return &DebtReconciler{tx: tx, clients: clients, events: publisher, log: log}
}

// RecomputeDebt recalcula y persiste la deuda del cliente con la política indicada.
// Devuelve ErrClientNotFound (sin escribir nada) si el cliente no existe.
func (r *DebtReconciler) RecomputeDebt(ctx context.Context, clientID int64, policy domainledger.Policy) (*dto.DebtResponse, error) {
	if !validPolicy(policy) {
		return nil, domain.ErrInvalidInput
	}
	var totals domainledger.Totals
	err := r.tx.RunReconcile(ctx, func(
		clients repository.ClientRepository,
		sales repository.SaleRepository,
		payments repository.PaymentRepository,
	) error {
		t, err := recomputeInTx(ctx, clients, sales, payments, clientID, policy)
		totals = t
		return err
	})
	if err != nil {
		return nil, err
	}

	r.log.Debug().
		Int64("client_id", clientID).
		Str("policy", string(policy)).
		Str("debt", totals.Debt.StringFixed(2)).
		Msg("deuda recalculada")
	r.events.Publish(events.Event{
		Topic:    events.TopicDebtRecomputed,
		EntityID: clientID,
		Data:     map[string]any{"policy": string(policy), "total_debt": totals.Debt.StringFixed(2)},
	})
	return toDebtResponse(clientID, policy, totals), nil
}

// RecomputeAllDebts aplica RecomputeDebt a cada cliente, uno tras otro.
// Cada cliente se concilia en su propia transacción; el primer error detiene el proceso.
func (r *DebtReconciler) RecomputeAllDebts(ctx context.Context, policy domainledger.Policy) (*dto.DebtSyncResponse, error) {
	if !validPolicy(policy) {
		return nil, domain.ErrInvalidInput
	}
	list, err := r.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync debts: list clients: %w", err)
	}
	out := &dto.DebtSyncResponse{Policy: string(policy), Clients: make([]dto.DebtResponse, 0, len(list))}
	for _, c := range list {
		res, err := r.RecomputeDebt(ctx, c.ID, policy)
		if err != nil {
			return nil, fmt.Errorf("sync debts: client %d: %w", c.ID, err)
		}
		out.Clients = append(out.Clients, *res)
	}
	r.log.Info().Str("policy", string(policy)).Int("clients", len(list)).Msg("deudas sincronizadas")
	return out, nil
}

// recomputeInTx lee ventas y abonos del cliente con los repos de la transacción del caller
// y escribe la nueva deuda. Bloquea la fila del cliente para serializar recálculos concurrentes.
func recomputeInTx(
	ctx context.Context,
	clients repository.ClientRepository,
	sales repository.SaleRepository,
	payments repository.PaymentRepository,
	clientID int64,
	policy domainledger.Policy,
) (domainledger.Totals, error) {
	client, err := clients.GetForUpdate(ctx, clientID)
	if err != nil {
		return domainledger.Totals{}, fmt.Errorf("recompute debt: get client: %w", err)
	}
	if client == nil {
		return domainledger.Totals{}, domain.ErrClientNotFound
	}
	ss, err := sales.ListByClient(ctx, clientID)
	if err != nil {
		return domainledger.Totals{}, fmt.Errorf("recompute debt: list sales: %w", err)
	}
	ps, err := payments.ListByClient(ctx, clientID)
	if err != nil {
		return domainledger.Totals{}, fmt.Errorf("recompute debt: list payments: %w", err)
	}
	totals := domainledger.ComputeDebt(policy, ss, ps)
	if err := clients.UpdateTotalDebt(ctx, clientID, totals.Debt); err != nil {
		return domainledger.Totals{}, fmt.Errorf("recompute debt: update client: %w", err)
	}
	return totals, nil
}

func validPolicy(p domainledger.Policy) bool {
	return p == domainledger.PolicyVerifiedOnly || p == domainledger.PolicyAllPayments
}

func toDebtResponse(clientID int64, policy domainledger.Policy, t domainledger.Totals) *dto.DebtResponse {
	return &dto.DebtResponse{
		ClientID:     clientID,
		Policy:       string(policy),
		TotalSales:   t.Sales,
		TotalCredits: t.Credits,
		TotalDebt:    t.Debt,
	}
}
