package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/MissVentas-api/internal/application/analytics"
	"github.com/jhoicas/MissVentas-api/internal/application/circle"
	"github.com/jhoicas/MissVentas-api/internal/application/events"
	"github.com/jhoicas/MissVentas-api/internal/application/ledger"
	"github.com/jhoicas/MissVentas-api/internal/application/usecase"
	"github.com/jhoicas/MissVentas-api/internal/domain/repository"
	"github.com/jhoicas/MissVentas-api/internal/infrastructure/memory"
	"github.com/jhoicas/MissVentas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/MissVentas-api/internal/interfaces/http"
	"github.com/jhoicas/MissVentas-api/pkg/config"
	"github.com/jhoicas/MissVentas-api/pkg/logger"
)

// txRunner agrupa las transacciones que necesitan los casos de uso.
type txRunner interface {
	ledger.SaleTxRunner
	ledger.ReconcileTxRunner
	circle.TxRunner
}

// stores repositorios fuera de transacción más el runner, según STORE_DRIVER.
type stores struct {
	products       repository.ProductRepository
	clients        repository.ClientRepository
	sales          repository.SaleRepository
	payments       repository.PaymentRepository
	circles        repository.CircleRepository
	circlePayments repository.CirclePaymentRepository
	tx             txRunner
	close          func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacén")
	}
	defer st.close()

	bus := events.NewBus(log.Component("events"))
	ledgerLog := log.Component("ledger")

	reconciler := ledger.NewDebtReconciler(st.tx, st.clients, bus, ledgerLog)
	saleCoordinator := ledger.NewSaleCoordinator(
		st.tx, reconciler, st.sales, st.products, st.clients, bus, ledgerLog,
		ledger.SaleOptions{
			EnforceStock:    cfg.Ledger.EnforceStock,
			ReconcileOnSale: cfg.Ledger.ReconcileOnSale,
		},
	)
	paymentUC := ledger.NewPaymentUseCase(st.tx, st.payments, st.clients, bus, ledgerLog)
	statementUC := ledger.NewStatementUseCase(st.clients, st.sales, st.payments, st.products)
	scheduler := circle.NewScheduler(st.tx, st.circles, st.circlePayments, bus, log.Component("circle"))
	productUC := usecase.NewProductUseCase(st.products, bus, cfg.Ledger.LowStockThreshold)
	clientUC := usecase.NewClientUseCase(st.clients, bus)
	reportsUC := appanalytics.NewReportsUseCase(st.sales, st.products, st.clients, cfg.Ledger.LowStockThreshold)

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		IdleTimeout: time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestIDMiddleware())
	app.Use(httpRouter.LoggerMiddleware(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "MissVentas API",
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		ClientUC:   clientUC,
		Sales:      saleCoordinator,
		Payments:   paymentUC,
		Statement:  statementUC,
		Reconciler: reconciler,
		Circles:    scheduler,
		Reports:    reportsUC,
		Bus:        bus,
		Log:        log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// Cerrar el bus termina los streams SSE abiertos
	bus.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStores construye los repositorios del driver configurado.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		store := memory.NewStore()
		return &stores{
			products:       store.Products(),
			clients:        store.Clients(),
			sales:          store.Sales(),
			payments:       store.Payments(),
			circles:        store.Circles(),
			circlePayments: store.CirclePayments(),
			tx:             memory.NewTxRunner(store),
			close:          func() {},
		}, nil
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log.Component("migrate")); err != nil {
			return nil, err
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &stores{
		products:       postgres.NewProductRepository(pool),
		clients:        postgres.NewClientRepository(pool),
		sales:          postgres.NewSaleRepository(pool),
		payments:       postgres.NewPaymentRepository(pool),
		circles:        postgres.NewCircleRepository(pool),
		circlePayments: postgres.NewCirclePaymentRepository(pool),
		tx:             postgres.NewTxRunner(pool),
		close:          pool.Close,
	}, nil
}
