package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/MissVentas-api/internal/application/dto"
	"github.com/jhoicas/MissVentas-api/internal/application/ledger"
)

// PaymentHandler abonos y su verificación.
type PaymentHandler struct {
	uc  *ledger.PaymentUseCase
	log zerolog.Logger
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *ledger.PaymentUseCase, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar abono
// @Description  Solo los abonos verificados descuentan deuda. La respuesta incluye la deuda recalculada.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Datos del abono"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener abono
// @Tags         payments
// @Produce      json
// @Param        id   path  int  true  "ID del abono"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SetVerified godoc
// @Summary      Marcar o desmarcar un abono como verificado
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del abono"
// @Param        body  body  dto.SetVerifiedRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/verified [patch]
func (h *PaymentHandler) SetVerified(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.SetVerifiedRequest
	if err := c.BodyParser(&in); err != nil || in.Verified == nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetVerified(c.Context(), id, *in.Verified)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
