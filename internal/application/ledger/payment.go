package ledger

import (
	"context"
	"fmt"
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

// PaymentUseCase registra abonos y cambia su verificación.
// Ambas operaciones recalculan la deuda (verified-only) en la misma transacción,
// así la deuda nunca queda desactualizada al responder.
type PaymentUseCase struct {
	tx       ReconcileTxRunner
	payments repository.PaymentRepository
	clients  repository.ClientRepository
	events   events.Publisher
	log      zerolog.Logger
	now      func() time.Time
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	tx ReconcileTxRunner,
	payments repository.PaymentRepository,
	clients repository.ClientRepository,
	publisher events.Publisher,
	log zerolog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		tx:       tx,
		payments: payments,
		clients:  clients,
		events:   publisher,
		log:      log,
		now:      time.Now,
	}
}

// Create registra un abono (verificado o no) y recalcula la deuda del cliente.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	amount := in.Amount.Round(2)
	if in.ClientID <= 0 || !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date := uc.now()
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}
	payment := entity.Payment{
		ClientID: in.ClientID,
		Amount:   amount,
		Date:     date,
		Evidence: in.Evidence,
		Verified: in.Verified,
	}

	var totals domainledger.Totals
	err := uc.tx.RunReconcile(ctx, func(
		clients repository.ClientRepository,
		sales repository.SaleRepository,
		payments repository.PaymentRepository,
	) error {
		client, err := clients.GetForUpdate(ctx, in.ClientID)
		if err != nil {
			return fmt.Errorf("create payment: get client: %w", err)
		}
		if client == nil {
			return domain.ErrClientNotFound
		}
		if err := payments.Create(ctx, &payment); err != nil {
			return fmt.Errorf("create payment: insert: %w", err)
		}
		totals, err = recomputeInTx(ctx, clients, sales, payments, in.ClientID, domainledger.PolicyVerifiedOnly)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("payment_id", payment.ID).
		Int64("client_id", payment.ClientID).
		Str("amount", payment.Amount.StringFixed(2)).
		Bool("verified", payment.Verified).
		Str("debt", totals.Debt.StringFixed(2)).
		Msg("abono registrado")
	uc.events.Publish(events.Event{Topic: events.TopicPaymentCreated, EntityID: payment.ID, Data: map[string]any{"client_id": payment.ClientID}})
	uc.publishDebt(payment.ClientID, totals.Debt)

	res := dto.FromPayment(&payment, totals.Debt)
	return &res, nil
}

// SetVerified cambia la verificación del abono y recalcula la deuda del cliente dueño.
func (uc *PaymentUseCase) SetVerified(ctx context.Context, paymentID int64, verified bool) (*dto.PaymentResponse, error) {
	if paymentID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var payment *entity.Payment
	var totals domainledger.Totals
	err := uc.tx.RunReconcile(ctx, func(
		clients repository.ClientRepository,
		sales repository.SaleRepository,
		payments repository.PaymentRepository,
	) error {
		p, err := payments.GetByID(ctx, paymentID)
		if err != nil {
			return fmt.Errorf("verify payment: get: %w", err)
		}
		if p == nil {
			return domain.ErrPaymentNotFound
		}
		if err := payments.SetVerified(ctx, paymentID, verified); err != nil {
			return fmt.Errorf("verify payment: update: %w", err)
		}
		p.Verified = verified
		payment = p
		totals, err = recomputeInTx(ctx, clients, sales, payments, p.ClientID, domainledger.PolicyVerifiedOnly)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("payment_id", payment.ID).
		Int64("client_id", payment.ClientID).
		Bool("verified", verified).
		Str("debt", totals.Debt.StringFixed(2)).
		Msg("verificación de abono actualizada")
	uc.events.Publish(events.Event{
		Topic:    events.TopicPaymentVerified,
		EntityID: payment.ID,
		Data:     map[string]any{"client_id": payment.ClientID, "verified": verified},
	})
	uc.publishDebt(payment.ClientID, totals.Debt)

	res := dto.FromPayment(payment, totals.Debt)
	return &res, nil
}

// Get devuelve un abono con la deuda vigente de su cliente.
func (uc *PaymentUseCase) Get(ctx context.Context, id int64) (*dto.PaymentResponse, error) {
	p, err := uc.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPaymentNotFound
	}
	debt := decimal.Zero
	client, err := uc.clients.GetByID(ctx, p.ClientID)
	if err != nil {
		return nil, err
	}
	if client != nil {
		debt = client.TotalDebt
	}
	res := dto.FromPayment(p, debt)
	return &res, nil
}

// ListByClient lista los abonos del cliente en orden de registro.
func (uc *PaymentUseCase) ListByClient(ctx context.Context, clientID int64) ([]dto.PaymentResponse, error) {
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	list, err := uc.payments.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.FromPayment(p, client.TotalDebt))
	}
	return out, nil
}

func (uc *PaymentUseCase) publishDebt(clientID int64, debt decimal.Decimal) {
	uc.events.Publish(events.Event{
		Topic:    events.TopicDebtRecomputed,
		EntityID: clientID,
		Data:     map[string]any{"policy": string(domainledger.PolicyVerifiedOnly), "total_debt": debt.StringFixed(2)},
	})
}
