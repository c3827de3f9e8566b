package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardSummary agregados globales para el tablero.
type DashboardSummary struct {
	TotalProducts      int64
	TotalWarehouses    int64
	TotalStockQuantity int64
	TotalStockValue    decimal.Decimal // Σ cantidad × costo unitario
}

// LowStockItem existencia por debajo del umbral de reorden del producto.
type LowStockItem struct {
	ProductID     string
	SKU           string
	ProductName   string
	WarehouseID   string
	WarehouseName string
	Quantity      int64
	ReorderLevel  int64
}

// DashboardRepository consultas de agregación para el tablero (solo lectura).
type DashboardRepository interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
	LowStock(ctx context.Context) ([]LowStockItem, error)
}
