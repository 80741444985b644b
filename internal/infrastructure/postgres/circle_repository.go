package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/MissVentas-api/internal/domain"
	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
)

var (
	_ repository.CircleRepository        = (*CircleRepo)(nil)
	_ repository.CirclePaymentRepository = (*CirclePaymentRepo)(nil)
)

const (
	circleColumns        = `id, name, amount_per_slot, periodicity, start_date, participant_count`
	circlePaymentColumns = `id, circle_id, period_number, participant_name, amount, paid, is_beneficiary, evidence`
)

// CircleRepo tandas sobre PostgreSQL.
type CircleRepo struct {
	q Querier
}

// NewCircleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCircleRepository(q Querier) *CircleRepo {
	return &CircleRepo{q: q}
}

// Create persiste la tanda y asigna su ID.
func (r *CircleRepo) Create(ctx context.Context, c *entity.Circle) error {
	query := `
		INSERT INTO circles (name, amount_per_slot, periodicity, start_date, participant_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, c.Name, c.AmountPerSlot, c.Periodicity, c.StartDate, c.ParticipantCount).Scan(&c.ID); err != nil {
		return fmt.Errorf("insert circle: %w", err)
	}
	return nil
}

// GetByID obtiene una tanda por ID.
func (r *CircleRepo) GetByID(ctx context.Context, id int64) (*entity.Circle, error) {
	c, err := scanCircle(r.q.QueryRow(ctx, `SELECT `+circleColumns+` FROM circles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get circle: %w", err)
	}
	return c, nil
}

// List lista las tandas por ID.
func (r *CircleRepo) List(ctx context.Context) ([]*entity.Circle, error) {
	rows, err := r.q.Query(ctx, `SELECT `+circleColumns+` FROM circles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list circles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Circle
	for rows.Next() {
		c, err := scanCircle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan circle: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCircle(row pgx.Row) (*entity.Circle, error) {
	var c entity.Circle
	if err := row.Scan(&c.ID, &c.Name, &c.AmountPerSlot, &c.Periodicity, &c.StartDate, &c.ParticipantCount); err != nil {
		return nil, err
	}
	return &c, nil
}

// CirclePaymentRepo pagos de tanda sobre PostgreSQL.
type CirclePaymentRepo struct {
	q Querier
}

// NewCirclePaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCirclePaymentRepository(q Querier) *CirclePaymentRepo {
	return &CirclePaymentRepo{q: q}
}

// CreateBatch inserta los pagos en orden y asigna sus IDs. Llamar dentro de una transacción.
func (r *CirclePaymentRepo) CreateBatch(ctx context.Context, payments []*entity.CirclePayment) error {
	query := `
		INSERT INTO circle_payments (circle_id, period_number, participant_name, amount, paid, is_beneficiary, evidence)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	for _, p := range payments {
		err := r.q.QueryRow(ctx, query,
			p.CircleID, p.PeriodNumber, p.ParticipantName, p.Amount, p.Paid, p.IsBeneficiary, p.Evidence,
		).Scan(&p.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrCircleNotFound
			}
			return fmt.Errorf("insert circle payment: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pago de tanda por ID.
func (r *CirclePaymentRepo) GetByID(ctx context.Context, id int64) (*entity.CirclePayment, error) {
	p, err := scanCirclePayment(r.q.QueryRow(ctx, `SELECT `+circlePaymentColumns+` FROM circle_payments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get circle payment: %w", err)
	}
	return p, nil
}

// ListByCircle pagos de la tanda en orden de participante.
func (r *CirclePaymentRepo) ListByCircle(ctx context.Context, circleID int64) ([]*entity.CirclePayment, error) {
	rows, err := r.q.Query(ctx, `SELECT `+circlePaymentColumns+` FROM circle_payments WHERE circle_id = $1 ORDER BY id`, circleID)
	if err != nil {
		return nil, fmt.Errorf("list circle payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.CirclePayment
	for rows.Next() {
		p, err := scanCirclePayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan circle payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// MarkPaid marca el pago como pagado.
func (r *CirclePaymentRepo) MarkPaid(ctx context.Context, paymentID int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE circle_payments SET paid = TRUE WHERE id = $1`, paymentID)
	if err != nil {
		return fmt.Errorf("mark circle payment paid: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCirclePaymentNotFound
	}
	return nil
}

func scanCirclePayment(row pgx.Row) (*entity.CirclePayment, error) {
	var p entity.CirclePayment
	err := row.Scan(&p.ID, &p.CircleID, &p.PeriodNumber, &p.ParticipantName, &p.Amount, &p.Paid, &p.IsBeneficiary, &p.Evidence)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
