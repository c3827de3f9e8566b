package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jortega-dev/almacen-api/internal/application/auth"
	"github.com/jortega-dev/almacen-api/internal/application/inventory"
	"github.com/jortega-dev/almacen-api/internal/application/usecase"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	StockUC      *usecase.StockUseCase
	LedgerUC     *usecase.LedgerUseCase
	DashboardUC  *usecase.DashboardUseCase
	ReceiptUC    *inventory.ReceiptUseCase
	DeliveryUC   *inventory.DeliveryUseCase
	TransferUC   *inventory.TransferUseCase
	AdjustmentUC *inventory.AdjustmentUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
//
// Permisos por rol: cualquier usuario autenticado consulta y crea borradores;
// validar o cancelar documentos y aplicar ajustes requiere admin o manager;
// el catálogo y las bodegas se administran con admin o manager.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	manage := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", manage, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", manage, productHandler.Update)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", manage, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", manage, warehouseHandler.Update)

	// Stock (protegido, solo lectura)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Get("/:warehouse_id/:product_id", stockHandler.Level)

	// Receipts (protegido)
	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Post("/:id/validate", manage, receiptHandler.Validate)
	receipts.Post("/:id/cancel", manage, receiptHandler.Cancel)

	// Deliveries (protegido)
	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Post("/:id/validate", manage, deliveryHandler.Validate)
	deliveries.Post("/:id/cancel", manage, deliveryHandler.Cancel)

	// Transfers (protegido)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Post("/:id/validate", manage, transferHandler.Validate)
	transfers.Post("/:id/cancel", manage, transferHandler.Cancel)

	// Adjustments (protegido; crear+aplicar es una sola operación)
	adjustments := protected.Group("/adjustments")
	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC)
	adjustments.Post("/", manage, adjustmentHandler.Create)
	adjustments.Get("/", adjustmentHandler.List)
	adjustments.Get("/:id", adjustmentHandler.GetByID)

	// Ledger (protegido, solo lectura)
	ledger := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledger.Get("/", ledgerHandler.List)

	// Dashboard (protegido, solo lectura)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
}
