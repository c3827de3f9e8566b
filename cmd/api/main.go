package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jortega-dev/almacen-api/internal/application/auth"
	"github.com/jortega-dev/almacen-api/internal/application/inventory"
	"github.com/jortega-dev/almacen-api/internal/application/usecase"
	"github.com/jortega-dev/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jortega-dev/almacen-api/internal/interfaces/http"
	"github.com/jortega-dev/almacen-api/pkg/config"
	"github.com/jortega-dev/almacen-api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	stockRepo := postgres.NewStockItemRepository(pool)
	ledgerRepo := postgres.NewLedgerEntryRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	stockUC := usecase.NewStockUseCase(stockRepo)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	receiptUC := inventory.NewReceiptUseCase(txRunner, receiptRepo, productRepo, warehouseRepo)
	deliveryUC := inventory.NewDeliveryUseCase(txRunner, deliveryRepo, productRepo, warehouseRepo)
	transferUC := inventory.NewTransferUseCase(txRunner, transferRepo, productRepo, warehouseRepo)
	adjustmentUC := inventory.NewAdjustmentUseCase(txRunner, adjustmentRepo, productRepo, warehouseRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		WarehouseUC:  warehouseUC,
		StockUC:      stockUC,
		LedgerUC:     ledgerUC,
		DashboardUC:  dashboardUC,
		ReceiptUC:    receiptUC,
		DeliveryUC:   deliveryUC,
		TransferUC:   transferUC,
		AdjustmentUC: adjustmentUC,
		JWTSecret:    cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
