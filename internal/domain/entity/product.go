package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// El stock no vive aquí: se maneja por bodega en StockItem.
type Product struct {
	ID           string
	SKU          string // código único, siempre en mayúsculas
	Name         string
	Category     string
	UOM          string // unidad de medida (kg, und, caja)
	Description  string
	ReorderLevel int64           // umbral de alerta de stock bajo
	CostPrice    decimal.Decimal // costo unitario para valorización
	SalesPrice   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
