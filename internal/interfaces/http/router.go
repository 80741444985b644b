package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/MissVentas-api/internal/application/analytics"
	"github.com/jhoicas/MissVentas-api/internal/application/circle"
	"github.com/jhoicas/MissVentas-api/internal/application/events"
	"github.com/jhoicas/MissVentas-api/internal/application/ledger"
	"github.com/jhoicas/MissVentas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	ClientUC   *usecase.ClientUseCase
	Sales      *ledger.SaleCoordinator
	Payments   *ledger.PaymentUseCase
	Statement  *ledger.StatementUseCase
	Reconciler *ledger.DebtReconciler
	Circles    *circle.Scheduler
	Reports    *appanalytics.ReportsUseCase
	Bus        *events.Bus
	Log        zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Eventos (SSE)
	api.Get("/events", NewEventsHandler(deps.Bus, deps.Log).Stream)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/critical", productHandler.Critical)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Sales
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.Sales, deps.Log)
	sales.Post("/", saleHandler.Record)
	sales.Get("/:id", saleHandler.GetByID)

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.Statement, deps.Payments, deps.Sales, deps.Reconciler, deps.Log)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Get("/:id/statement", clientHandler.Statement)
	clients.Get("/:id/payments", clientHandler.Payments)
	clients.Get("/:id/sales", clientHandler.Sales)
	clients.Post("/:id/debt/sync", clientHandler.SyncDebt)
	api.Post("/debts/sync", clientHandler.SyncAllDebts)

	// Payments (abonos)
	payments := api.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.Payments, deps.Log)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Patch("/:id/verified", paymentHandler.SetVerified)

	// Circles (tandas)
	circles := api.Group("/circles")
	circleHandler := NewCircleHandler(deps.Circles, deps.Log)
	circles.Post("/", circleHandler.Create)
	circles.Get("/", circleHandler.List)
	circles.Get("/:id", circleHandler.GetByID)
	circles.Get("/:id/payments", circleHandler.Payments)
	circles.Post("/:id/advance", circleHandler.Advance)
	api.Post("/circle-payments/:id/paid", circleHandler.MarkPaid)

	// Reports
	reports := api.Group("/reports")
	reportsHandler := NewReportsHandler(deps.Reports, deps.Log)
	reports.Get("/summary", reportsHandler.Summary)
	reports.Get("/today", reportsHandler.Today)
	reports.Get("/weekly", reportsHandler.Weekly)
}
