package repository

import "github.com/jortega-dev/almacen-api/internal/domain/entity"

// StockFilter filtros opcionales para listar existencias.
type StockFilter struct {
	WarehouseID string
	ProductID   string
}

// StockItemRepository define el puerto para consultar/actualizar existencias
// por (producto, bodega). Las escrituras se usan solo dentro de transacciones,
// a través del motor de stock.
type StockItemRepository interface {
	Get(productID, warehouseID string) (*entity.StockItem, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para el
	// read-modify-write del motor de stock. Devuelve nil si no existe fila.
	GetForUpdate(productID, warehouseID string) (*entity.StockItem, error)
	// Upsert inserta o fija la cantidad de forma absoluta; no toca Reserved.
	Upsert(item *entity.StockItem) error
	// AddQuantity suma qty de forma atómica, creando la fila si no existe,
	// y devuelve el estado resultante.
	AddQuantity(productID, warehouseID string, qty int64) (*entity.StockItem, error)
	List(filter StockFilter, limit, offset int) ([]*entity.StockItem, error)
	Count(filter StockFilter) (int64, error)
}
