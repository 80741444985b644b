// Package memory implementa el almacén de entidades dentro del proceso (base de datos del dispositivo).
//
// Cada tipo de entidad tiene su propio contador de IDs (monótono). Las transacciones
// trabajan sobre una copia del estado y la publican solo si el callback termina sin error,
// de modo que ningún lector observa escrituras parciales.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
)

type state struct {
	seq            map[string]int64
	products       map[int64]entity.Product
	clients        map[int64]entity.Client
	sales          map[int64]entity.Sale
	payments       map[int64]entity.Payment
	circles        map[int64]entity.Circle
	circlePayments map[int64]entity.CirclePayment
}

func newState() *state {
	return &state{
		seq:            make(map[string]int64),
		products:       make(map[int64]entity.Product),
		clients:        make(map[int64]entity.Client),
		sales:          make(map[int64]entity.Sale),
		payments:       make(map[int64]entity.Payment),
		circles:        make(map[int64]entity.Circle),
		circlePayments: make(map[int64]entity.CirclePayment),
	}
}

func (s *state) nextID(kind string) int64 {
	s.seq[kind]++
	return s.seq[kind]
}

func (s *state) clone() *state {
	c := &state{
		seq:            make(map[string]int64, len(s.seq)),
		products:       make(map[int64]entity.Product, len(s.products)),
		clients:        make(map[int64]entity.Client, len(s.clients)),
		sales:          make(map[int64]entity.Sale, len(s.sales)),
		payments:       make(map[int64]entity.Payment, len(s.payments)),
		circles:        make(map[int64]entity.Circle, len(s.circles)),
		circlePayments: make(map[int64]entity.CirclePayment, len(s.circlePayments)),
	}
	for k, v := range s.seq {
		c.seq[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.clients {
		c.clients[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	for k, v := range s.circles {
		c.circles[k] = v
	}
	for k, v := range s.circlePayments {
		c.circlePayments[k] = v
	}
	return c
}

// Store almacén en memoria con un único candado; las transacciones se serializan entre sí.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// access decide si un repositorio opera sobre el estado publicado (con candado)
// o sobre la copia de una transacción en curso (el candado ya lo tiene el runner).
type access struct {
	store *Store
	tx    *state
}

func (a access) read(fn func(st *state)) {
	if a.tx != nil {
		fn(a.tx)
		return
	}
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	fn(a.store.st)
}

func (a access) write(fn func(st *state) error) error {
	if a.tx != nil {
		return fn(a.tx)
	}
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return fn(a.store.st)
}

// run ejecuta fn sobre una copia del estado y la publica si no hay error (commit);
// ante error la copia se descarta (rollback).
func (s *Store) run(ctx context.Context, fn func(tx *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	staged := s.st.clone()
	if err := fn(staged); err != nil {
		return err
	}
	s.st = staged
	return nil
}

func (s *Store) plain() access { return access{store: s} }

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{a: s.plain()} }

// Clients repositorio de clientes fuera de transacción.
func (s *Store) Clients() *ClientRepo { return &ClientRepo{a: s.plain()} }

// Sales repositorio de ventas fuera de transacción.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{a: s.plain()} }

// Payments repositorio de abonos fuera de transacción.
func (s *Store) Payments() *PaymentRepo { return &PaymentRepo{a: s.plain()} }

// Circles repositorio de tandas fuera de transacción.
func (s *Store) Circles() *CircleRepo { return &CircleRepo{a: s.plain()} }

// CirclePayments repositorio de pagos de tanda fuera de transacción.
func (s *Store) CirclePayments() *CirclePaymentRepo { return &CirclePaymentRepo{a: s.plain()} }

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
