// Package events publica los cambios del libro para que la capa de presentación
// decida cuándo refrescar (suscripción) en lugar de consultas "en vivo".
package events

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Temas publicados por los casos de uso, siempre después del commit.
const (
	TopicProductCreated    = "product.created"
	TopicProductUpdated    = "product.updated"
	TopicClientCreated     = "client.created"
	TopicClientUpdated     = "client.updated"
	TopicSaleRecorded      = "sale.recorded"
	TopicPaymentCreated    = "payment.created"
	TopicPaymentVerified   = "payment.verified"
	TopicDebtRecomputed    = "debt.recomputed"
	TopicCircleCreated     = "circle.created"
	TopicCirclePaymentPaid = "circle_payment.paid"
)

// Event notificación de cambio. EntityID es el ID de la entidad afectada.
type Event struct {
	Topic    string         `json:"topic"`
	EntityID int64          `json:"entity_id"`
	Data     map[string]any `json:"data,omitempty"`
	At       time.Time      `json:"at"`
}

// Publisher puerto que usan los casos de uso.
type Publisher interface {
	Publish(ev Event)
}

// Bus pub/sub en proceso. Un suscriptor lento pierde eventos; nunca bloquea al escritor.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan Event
	closed bool
	log    zerolog.Logger
}

// NewBus construye el bus.
func NewBus(log zerolog.Logger) *Bus {
	return &Bus{subs: make(map[int]chan Event), log: log}
}

// Subscribe registra un suscriptor con un buffer de tamaño buffer.
// La función devuelta cancela la suscripción y cierra el canal.
// Después de Close devuelve un canal ya cerrado.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	return ch, func() { b.unsubscribe(id) }
}

func (b *Bus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Close cierra todos los canales de suscripción (apagado del servidor).
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish entrega el evento a todos los suscriptores sin bloquear.
func (b *Bus) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.log.Warn().Int("subscriber", id).Str("topic", ev.Topic).Msg("evento descartado: suscriptor lento")
		}
	}
}

// Subscribers número de suscriptores activos.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Discard publicador que no hace nada (tests y herramientas).
type Discard struct{}

// Publish descarta el evento.
func (Discard) Publish(Event) {}
