package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/MissVentas-api/internal/application/analytics"
)

// ReportsHandler maneja los endpoints de reportes.
type ReportsHandler struct {
	uc  *appanalytics.ReportsUseCase
	log zerolog.Logger
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *appanalytics.ReportsUseCase, log zerolog.Logger) *ReportsHandler {
	return &ReportsHandler{uc: uc, log: log}
}

// Summary devuelve las métricas globales del negocio.
// GET /api/reports/summary
//
// Respuesta: ReportSummaryDTO (total_sales, total_profit, inventory_investment,
// expected_sale_value, projected_profit, total_debt, low_stock, out_of_stock, average_margin).
func (h *ReportsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Today ventas y utilidad desde la medianoche (hora del servidor).
// GET /api/reports/today
func (h *ReportsHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.Today(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Weekly serie diaria de los últimos 7 días.
// GET /api/reports/weekly
func (h *ReportsHandler) Weekly(c *fiber.Ctx) error {
	out, err := h.uc.Weekly(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
