package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/MissVentas-api/internal/application/circle"
	"github.com/jhoicas/MissVentas-api/internal/application/dto"
)

// CircleHandler tandas y sus pagos.
type CircleHandler struct {
	uc  *circle.Scheduler
	log zerolog.Logger
}

// NewCircleHandler construye el handler.
func NewCircleHandler(uc *circle.Scheduler, log zerolog.Logger) *CircleHandler {
	return &CircleHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear tanda de 11 participantes
// @Description  El participante en la posición 0 es el beneficiario del periodo 1 (exento).
// @Tags         circles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCircleRequest  true  "Nombre, monto por turno y participantes"
// @Success      201   {object}  dto.CircleDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/circles [post]
func (h *CircleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCircleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCircle(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tandas
// @Tags         circles
// @Produce      json
// @Success      200  {array}  dto.CircleResponse
// @Router       /api/circles [get]
func (h *CircleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListCircles(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de la tanda con avance de recaudación
// @Tags         circles
// @Produce      json
// @Param        id   path  int  true  "ID de la tanda"
// @Success      200  {object}  dto.CircleDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/circles/{id} [get]
func (h *CircleHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetCircleDetail(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Payments godoc
// @Summary      Pagos de la tanda
// @Tags         circles
// @Produce      json
// @Param        id   path  int  true  "ID de la tanda"
// @Success      200  {array}  dto.CirclePaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/circles/{id}/payments [get]
func (h *CircleHandler) Payments(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.ListPayments(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Advance godoc
// @Summary      Avanzar al siguiente periodo (no soportado)
// @Tags         circles
// @Produce      json
// @Param        id   path  int  true  "ID de la tanda"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /api/circles/{id}/advance [post]
func (h *CircleHandler) Advance(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.AdvancePeriod(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "periodo avanzado"})
}

// MarkPaid godoc
// @Summary      Marcar pagada la obligación de un participante
// @Tags         circles
// @Produce      json
// @Param        id   path  int  true  "ID del pago de tanda"
// @Success      200  {object}  dto.CirclePaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/circle-payments/{id}/paid [post]
func (h *CircleHandler) MarkPaid(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.MarkPaid(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
