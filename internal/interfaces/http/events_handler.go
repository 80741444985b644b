package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/MissVentas-api/internal/application/events"
)

const (
	sseBuffer    = 32
	sseKeepAlive = 20 * time.Second
)

// EventsHandler expone el bus de eventos como Server-Sent Events.
type EventsHandler struct {
	bus *events.Bus
	log zerolog.Logger
}

// NewEventsHandler construye el handler.
func NewEventsHandler(bus *events.Bus, log zerolog.Logger) *EventsHandler {
	return &EventsHandler{bus: bus, log: log}
}

// Stream godoc
// @Summary      Suscripción a cambios (SSE)
// @Description  Emite un evento por cada escritura confirmada (venta, abono, recálculo de deuda, tanda...).
// @Tags         events
// @Produce      text/event-stream
// @Router       /api/events [get]
func (h *EventsHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	ch, cancel := h.bus.Subscribe(sseBuffer)
	reqID := RequestID(c)
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		h.log.Debug().Str("request_id", reqID).Msg("suscriptor SSE conectado")
		ticker := time.NewTicker(sseKeepAlive)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-ch:
				if !ok {
					return
				}
				if err := writeSSE(w, ev); err != nil {
					h.log.Debug().Err(err).Str("request_id", reqID).Msg("suscriptor SSE desconectado")
					return
				}
			case <-ticker.C:
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})
	return nil
}

func writeSSE(w *bufio.Writer, ev events.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Topic, payload); err != nil {
		return err
	}
	return w.Flush()
}
