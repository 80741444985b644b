package circle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/MissVentas-api/internal/application/dto"
	"github.com/jhoicas/MissVentas-api/internal/application/events"
	"github.com/jhoicas/MissVentas-api/internal/domain"
	domaincircle "github.com/jhoicas/MissVentas-api/internal/domain/circle"
	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
)

// Scheduler casos de uso de la tanda.
type Scheduler struct {
	tx       TxRunner
	circles  repository.CircleRepository
	payments repository.CirclePaymentRepository
	events   events.Publisher
	log      zerolog.Logger
	now      func() time.Time
}

// NewScheduler construye el caso de uso.
func NewScheduler(
	tx TxRunner,
	circles repository.CircleRepository,
	payments repository.CirclePaymentRepository,
	publisher events.Publisher,
	log zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		tx:       tx,
		circles:  circles,
		payments: payments,
		events:   publisher,
		log:      log,
		now:      time.Now,
	}
}

// CreateCircle crea la tanda semanal y las 11 obligaciones del periodo 1 en una sola transacción.
// El primer participante es el beneficiario (exento).
func (s *Scheduler) CreateCircle(ctx context.Context, in dto.CreateCircleRequest) (*dto.CircleDetailResponse, error) {
	name := strings.TrimSpace(in.Name)
	amount := in.AmountPerSlot.Round(2)
	if name == "" || !amount.IsPositive() || len(in.Participants) != entity.CircleParticipants {
		return nil, domain.ErrInvalidInput
	}
	participants, ok := domaincircle.ParticipantNames(in.Participants)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	circle := entity.Circle{
		Name:             name,
		AmountPerSlot:    amount,
		Periodicity:      entity.PeriodicityWeekly,
		StartDate:        s.now(),
		ParticipantCount: entity.CircleParticipants,
	}

	var seeded []*entity.CirclePayment
	err := s.tx.RunCircle(ctx, func(circles repository.CircleRepository, payments repository.CirclePaymentRepository) error {
		if err := circles.Create(ctx, &circle); err != nil {
			return fmt.Errorf("create circle: insert: %w", err)
		}
		seeded = domaincircle.SeedFirstPeriod(circle.ID, circle.AmountPerSlot, participants)
		if err := payments.CreateBatch(ctx, seeded); err != nil {
			return fmt.Errorf("create circle: seed payments: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("circle_id", circle.ID).
		Str("name", circle.Name).
		Str("amount_per_slot", circle.AmountPerSlot.StringFixed(2)).
		Msg("tanda creada")
	s.events.Publish(events.Event{Topic: events.TopicCircleCreated, EntityID: circle.ID, Data: map[string]any{"name": circle.Name}})
	return toDetail(&circle, seeded), nil
}

// MarkPaid marca pagada la obligación. Repetir la operación no cambia nada;
// la del beneficiario no se puede marcar (ErrBeneficiaryExempt).
func (s *Scheduler) MarkPaid(ctx context.Context, paymentID int64) (*dto.CirclePaymentResponse, error) {
	var payment *entity.CirclePayment
	changed := false
	err := s.tx.RunCircle(ctx, func(_ repository.CircleRepository, payments repository.CirclePaymentRepository) error {
		p, err := payments.GetByID(ctx, paymentID)
		if err != nil {
			return fmt.Errorf("mark paid: get: %w", err)
		}
		if p == nil {
			return domain.ErrCirclePaymentNotFound
		}
		if p.IsBeneficiary {
			return domain.ErrBeneficiaryExempt
		}
		payment = p
		if p.Paid {
			return nil
		}
		if err := payments.MarkPaid(ctx, paymentID); err != nil {
			return fmt.Errorf("mark paid: update: %w", err)
		}
		p.Paid = true
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.Info().
			Int64("circle_id", payment.CircleID).
			Int64("circle_payment_id", payment.ID).
			Str("participant", payment.ParticipantName).
			Msg("pago de tanda registrado")
		s.events.Publish(events.Event{
			Topic:    events.TopicCirclePaymentPaid,
			EntityID: payment.ID,
			Data:     map[string]any{"circle_id": payment.CircleID},
		})
	}
	res := dto.FromCirclePayment(payment)
	return &res, nil
}

// ListCircles lista las tandas por ID ascendente.
func (s *Scheduler) ListCircles(ctx context.Context) ([]dto.CircleResponse, error) {
	list, err := s.circles.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CircleResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.FromCircle(c))
	}
	return out, nil
}

// GetCircleDetail devuelve la tanda, sus pagos y el avance de recaudación.
func (s *Scheduler) GetCircleDetail(ctx context.Context, circleID int64) (*dto.CircleDetailResponse, error) {
	c, err := s.circles.GetByID(ctx, circleID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCircleNotFound
	}
	payments, err := s.payments.ListByCircle(ctx, circleID)
	if err != nil {
		return nil, err
	}
	return toDetail(c, payments), nil
}

// ListPayments pagos de la tanda en orden de participante.
func (s *Scheduler) ListPayments(ctx context.Context, circleID int64) ([]dto.CirclePaymentResponse, error) {
	c, err := s.circles.GetByID(ctx, circleID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCircleNotFound
	}
	payments, err := s.payments.ListByCircle(ctx, circleID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(payments), nil
}

// AdvancePeriod rotaría al siguiente beneficiario. Solo existe el periodo 1.
func (s *Scheduler) AdvancePeriod(ctx context.Context, circleID int64) error {
	c, err := s.circles.GetByID(ctx, circleID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrCircleNotFound
	}
	return domain.ErrRolloverNotSupported
}

func toDetail(c *entity.Circle, payments []*entity.CirclePayment) *dto.CircleDetailResponse {
	pr := domaincircle.PeriodProgress(payments)
	return &dto.CircleDetailResponse{
		Circle:    dto.FromCircle(c),
		Payments:  toPaymentResponses(payments),
		Collected: pr.Collected,
		Pending:   pr.Pending,
		PaidCount: pr.PaidCount,
	}
}

func toPaymentResponses(list []*entity.CirclePayment) []dto.CirclePaymentResponse {
	out := make([]dto.CirclePaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.FromCirclePayment(p))
	}
	return out
}
