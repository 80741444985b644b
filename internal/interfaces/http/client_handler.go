package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/MissVentas-api/internal/application/dto"
	"github.com/jhoicas/MissVentas-api/internal/application/ledger"
	"github.com/jhoicas/MissVentas-api/internal/application/usecase"
	domainledger "github.com/jhoicas/MissVentas-api/internal/domain/ledger"
)

// ClientHandler directorio de clientes, estado de cuenta y conciliación de deuda.
type ClientHandler struct {
	uc         *usecase.ClientUseCase
	statement  *ledger.StatementUseCase
	payments   *ledger.PaymentUseCase
	sales      *ledger.SaleCoordinator
	reconciler *ledger.DebtReconciler
	log        zerolog.Logger
}

// NewClientHandler construye el handler.
func NewClientHandler(
	uc *usecase.ClientUseCase,
	statement *ledger.StatementUseCase,
	payments *ledger.PaymentUseCase,
	sales *ledger.SaleCoordinator,
	reconciler *ledger.DebtReconciler,
	log zerolog.Logger,
) *ClientHandler {
	return &ClientHandler{uc: uc, statement: statement, payments: payments, sales: sales, reconciler: reconciler, log: log}
}

// Create godoc
// @Summary      Registrar cliente (deuda inicial 0)
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" {
		return badRequest(c, "VALIDATION", "name es requerido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Produce      json
// @Param        q    query  string  false  "Busca en nombre y apodo (sin acentos)"
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("q"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente
// @Tags         clients
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar datos de contacto
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Statement godoc
// @Summary      Estado de cuenta del cliente
// @Tags         clients
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.StatementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/statement [get]
func (h *ClientHandler) Statement(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.statement.Get(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Payments godoc
// @Summary      Abonos del cliente
// @Tags         clients
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {array}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/payments [get]
func (h *ClientHandler) Payments(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.payments.ListByClient(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Sales godoc
// @Summary      Compras del cliente (la más reciente primero)
// @Tags         clients
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {array}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/sales [get]
func (h *ClientHandler) Sales(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.sales.ListByClient(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SyncDebt godoc
// @Summary      Recalcular la deuda de un cliente
// @Tags         debts
// @Produce      json
// @Param        id      path   int     true   "ID del cliente"
// @Param        policy  query  string  false  "verified-only (por defecto) o all-payments"
// @Success      200     {object}  dto.DebtResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/debt/sync [post]
func (h *ClientHandler) SyncDebt(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	policy, ok := domainledger.ParsePolicy(c.Query("policy"))
	if !ok {
		return badRequest(c, "INVALID_POLICY", "policy debe ser verified-only o all-payments")
	}
	out, err := h.reconciler.RecomputeDebt(c.Context(), id, policy)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SyncAllDebts godoc
// @Summary      Recalcular la deuda de todos los clientes
// @Tags         debts
// @Produce      json
// @Param        policy  query  string  false  "verified-only (por defecto) o all-payments"
// @Success      200     {object}  dto.DebtSyncResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/debts/sync [post]
func (h *ClientHandler) SyncAllDebts(c *fiber.Ctx) error {
	policy, ok := domainledger.ParsePolicy(c.Query("policy"))
	if !ok {
		return badRequest(c, "INVALID_POLICY", "policy debe ser verified-only o all-payments")
	}
	out, err := h.reconciler.RecomputeAllDebts(c.Context(), policy)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
