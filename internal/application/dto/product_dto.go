package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required"`
	SKU          string          `json:"sku" validate:"required"`
	Category     string          `json:"category" validate:"required"`
	UOM          string          `json:"uom" validate:"required"`
	Description  string          `json:"description"`
	ReorderLevel int64           `json:"reorder_level" validate:"min=0"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalesPrice   decimal.Decimal `json:"sales_price"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	UOM          *string          `json:"uom,omitempty"`
	Description  *string          `json:"description,omitempty"`
	ReorderLevel *int64           `json:"reorder_level,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	SalesPrice   *decimal.Decimal `json:"sales_price,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	UOM          string          `json:"uom"`
	Description  string          `json:"description,omitempty"`
	ReorderLevel int64           `json:"reorder_level"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalesPrice   decimal.Decimal `json:"sales_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
