package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MissVentas-api/internal/domain"
	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository       = (*ProductRepo)(nil)
	_ repository.ClientRepository        = (*ClientRepo)(nil)
	_ repository.SaleRepository          = (*SaleRepo)(nil)
	_ repository.PaymentRepository       = (*PaymentRepo)(nil)
	_ repository.CircleRepository        = (*CircleRepo)(nil)
	_ repository.CirclePaymentRepository = (*CirclePaymentRepo)(nil)
)

// ProductRepo productos en memoria.
type ProductRepo struct{ a access }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.a.write(func(st *state) error {
		p.ID = st.nextID("products")
		st.products[p.ID] = *p
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	r.a.read(func(st *state) {
		if p, ok := st.products[id]; ok {
			out = &p
		}
	})
	return out, nil
}

// GetForUpdate equivale a GetByID: la transacción ya tiene el candado exclusivo.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	r.a.read(func(st *state) {
		for _, id := range sortedKeys(st.products) {
			p := st.products[id]
			if f.MaxStock != nil && p.Stock > *f.MaxStock {
				continue
			}
			out = append(out, &p)
		}
	})
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	return r.a.write(func(st *state) error {
		cur, ok := st.products[p.ID]
		if !ok {
			return domain.ErrProductNotFound
		}
		cur.Name = p.Name
		cur.Cost = p.Cost
		cur.SuggestedPrice = p.SuggestedPrice
		cur.Photo = p.Photo
		cur.Category = p.Category
		cur.UpdatedAt = p.UpdatedAt
		st.products[p.ID] = cur
		return nil
	})
}

func (r *ProductRepo) UpdateStock(_ context.Context, productID int64, stock int) error {
	return r.a.write(func(st *state) error {
		cur, ok := st.products[productID]
		if !ok {
			return domain.ErrProductNotFound
		}
		cur.Stock = stock
		cur.UpdatedAt = time.Now()
		st.products[productID] = cur
		return nil
	})
}

// ClientRepo clientes en memoria.
type ClientRepo struct{ a access }

func (r *ClientRepo) Create(_ context.Context, c *entity.Client) error {
	return r.a.write(func(st *state) error {
		c.ID = st.nextID("clients")
		st.clients[c.ID] = *c
		return nil
	})
}

func (r *ClientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	var out *entity.Client
	r.a.read(func(st *state) {
		if c, ok := st.clients[id]; ok {
			out = &c
		}
	})
	return out, nil
}

func (r *ClientRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Client, error) {
	return r.GetByID(ctx, id)
}

func (r *ClientRepo) List(_ context.Context) ([]*entity.Client, error) {
	var out []*entity.Client
	r.a.read(func(st *state) {
		for _, id := range sortedKeys(st.clients) {
			c := st.clients[id]
			out = append(out, &c)
		}
	})
	return out, nil
}

func (r *ClientRepo) Update(_ context.Context, c *entity.Client) error {
	return r.a.write(func(st *state) error {
		cur, ok := st.clients[c.ID]
		if !ok {
			return domain.ErrClientNotFound
		}
		cur.Name = c.Name
		cur.Nickname = c.Nickname
		cur.WhatsApp = c.WhatsApp
		cur.Facebook = c.Facebook
		cur.Other = c.Other
		cur.UpdatedAt = c.UpdatedAt
		st.clients[c.ID] = cur
		return nil
	})
}

func (r *ClientRepo) UpdateTotalDebt(_ context.Context, clientID int64, debt decimal.Decimal) error {
	return r.a.write(func(st *state) error {
		cur, ok := st.clients[clientID]
		if !ok {
			return domain.ErrClientNotFound
		}
		cur.TotalDebt = debt
		cur.UpdatedAt = time.Now()
		st.clients[clientID] = cur
		return nil
	})
}

// SaleRepo ventas en memoria.
type SaleRepo struct{ a access }

func (r *SaleRepo) Create(_ context.Context, s *entity.Sale) error {
	return r.a.write(func(st *state) error {
		s.ID = st.nextID("sales")
		st.sales[s.ID] = *s
		return nil
	})
}

func (r *SaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	var out *entity.Sale
	r.a.read(func(st *state) {
		if s, ok := st.sales[id]; ok {
			out = &s
		}
	})
	return out, nil
}

func (r *SaleRepo) ListByClient(_ context.Context, clientID int64) ([]*entity.Sale, error) {
	return r.filter(func(s *entity.Sale) bool { return s.ClientID == clientID }), nil
}

func (r *SaleRepo) ListSince(_ context.Context, since time.Time) ([]*entity.Sale, error) {
	return r.filter(func(s *entity.Sale) bool { return !s.Date.Before(since) }), nil
}

func (r *SaleRepo) filter(keep func(*entity.Sale) bool) []*entity.Sale {
	var out []*entity.Sale
	r.a.read(func(st *state) {
		for _, id := range sortedKeys(st.sales) {
			s := st.sales[id]
			if keep(&s) {
				out = append(out, &s)
			}
		}
	})
	return out
}

// PaymentRepo abonos en memoria.
type PaymentRepo struct{ a access }

func (r *PaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	return r.a.write(func(st *state) error {
		p.ID = st.nextID("payments")
		st.payments[p.ID] = *p
		return nil
	})
}

func (r *PaymentRepo) GetByID(_ context.Context, id int64) (*entity.Payment, error) {
	var out *entity.Payment
	r.a.read(func(st *state) {
		if p, ok := st.payments[id]; ok {
			out = &p
		}
	})
	return out, nil
}

func (r *PaymentRepo) ListByClient(_ context.Context, clientID int64) ([]*entity.Payment, error) {
	var out []*entity.Payment
	r.a.read(func(st *state) {
		for _, id := range sortedKeys(st.payments) {
			p := st.payments[id]
			if p.ClientID == clientID {
				out = append(out, &p)
			}
		}
	})
	return out, nil
}

func (r *PaymentRepo) SetVerified(_ context.Context, paymentID int64, verified bool) error {
	return r.a.write(func(st *state) error {
		cur, ok := st.payments[paymentID]
		if !ok {
			return domain.ErrPaymentNotFound
		}
		cur.Verified = verified
		st.payments[paymentID] = cur
		return nil
	})
}

// CircleRepo tandas en memoria.
type CircleRepo struct{ a access }

func (r *CircleRepo) Create(_ context.Context, c *entity.Circle) error {
	return r.a.write(func(st *state) error {
		c.ID = st.nextID("circles")
		st.circles[c.ID] = *c
		return nil
	})
}

func (r *CircleRepo) GetByID(_ context.Context, id int64) (*entity.Circle, error) {
	var out *entity.Circle
	r.a.read(func(st *state) {
		if c, ok := st.circles[id]; ok {
			out = &c
		}
	})
	return out, nil
}

func (r *CircleRepo) List(_ context.Context) ([]*entity.Circle, error) {
	var out []*entity.Circle
	r.a.read(func(st *state) {
		for _, id := range sortedKeys(st.circles) {
			c := st.circles[id]
			out = append(out, &c)
		}
	})
	return out, nil
}

// CirclePaymentRepo pagos de tanda en memoria.
type CirclePaymentRepo struct{ a access }

func (r *CirclePaymentRepo) CreateBatch(_ context.Context, payments []*entity.CirclePayment) error {
	return r.a.write(func(st *state) error {
		for _, p := range payments {
			p.ID = st.nextID("circle_payments")
			st.circlePayments[p.ID] = *p
		}
		return nil
	})
}

func (r *CirclePaymentRepo) GetByID(_ context.Context, id int64) (*entity.CirclePayment, error) {
	var out *entity.CirclePayment
	r.a.read(func(st *state) {
		if p, ok := st.circlePayments[id]; ok {
			out = &p
		}
	})
	return out, nil
}

func (r *CirclePaymentRepo) ListByCircle(_ context.Context, circleID int64) ([]*entity.CirclePayment, error) {
	var out []*entity.CirclePayment
	r.a.read(func(st *state) {
		for _, id := range sortedKeys(st.circlePayments) {
			p := st.circlePayments[id]
			if p.CircleID == circleID {
				out = append(out, &p)
			}
		}
	})
	return out, nil
}

func (r *CirclePaymentRepo) MarkPaid(_ context.Context, paymentID int64) error {
	return r.a.write(func(st *state) error {
		cur, ok := st.circlePayments[paymentID]
		if !ok {
			return domain.ErrCirclePaymentNotFound
		}
		cur.Paid = true
		st.circlePayments[paymentID] = cur
		return nil
	})
}
