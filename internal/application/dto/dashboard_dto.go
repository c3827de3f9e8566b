package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse agregados globales del tablero.
type DashboardSummaryResponse struct {
	TotalProducts      int64           `json:"total_products"`
	TotalWarehouses    int64           `json:"total_warehouses"`
	TotalStockQuantity int64           `json:"total_stock_quantity"`
	TotalStockValue    decimal.Decimal `json:"total_stock_value"`
}

// LowStockItemResponse existencia por debajo del umbral de reorden.
type LowStockItemResponse struct {
	ProductID     string `json:"product_id"`
	SKU           string `json:"sku"`
	ProductName   string `json:"product_name"`
	WarehouseID   string `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	Quantity      int64  `json:"quantity"`
	ReorderLevel  int64  `json:"reorder_level"`
}
