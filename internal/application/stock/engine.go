// Package stock implementa el motor de mutación de existencias: las únicas
// primitivas autorizadas para escribir sobre StockItem.
package stock

import (
	"fmt"
	"time"

	"github.com/jortega-dev/almacen-api/internal/domain"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

// Engine aplica incrementos, decrementos y fijaciones absolutas de stock
// garantizando que la cantidad nunca sea negativa. No es dueño del
// repositorio: recibe el handle atado a la transacción del caller, de modo
// que todas sus operaciones ocurren dentro del mismo alcance atómico.
//
// Decrement es la única operación con modo de fallo: es la única capaz de
// violar el invariante de no-negatividad. Increment y SetAbsolute se usan
// en flujos que agregan stock o reconcilian contra el conteo físico.
type Engine struct {
	stock repository.StockItemRepository
}

// NewEngine construye el motor sobre un repositorio de existencias,
// normalmente el atado a la transacción en curso (TxRunner.Run).
func NewEngine(stock repository.StockItemRepository) *Engine {
	return &Engine{stock: stock}
}

// Increment suma qty a la existencia del par (producto, bodega), creando la
// fila con cantidad qty si no existe. Nunca falla para qty válido.
func (e *Engine) Increment(productID, warehouseID string, qty int64) (*entity.StockItem, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: la cantidad a incrementar debe ser positiva", domain.ErrInvalidInput)
	}
	return e.stock.AddQuantity(productID, warehouseID, qty)
}

// Decrement resta qty de la existencia, verificando primero disponibilidad
// (cantidad menos reservado) sobre la fila bloqueada. El chequeo y la
// escritura comparten el bloqueo de fila, así dos despachos concurrentes no
// pueden aprobar ambos contra el mismo saldo.
func (e *Engine) Decrement(productID, warehouseID string, qty int64) (*entity.StockItem, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: la cantidad a decrementar debe ser positiva", domain.ErrInvalidInput)
	}
	item, err := e.stock.GetForUpdate(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: sin existencia del producto %s en la bodega %s",
			domain.ErrNotFound, productID, warehouseID)
	}
	available := item.Available()
	if available < qty {
		return nil, fmt.Errorf("%w: disponible %d, requerido %d",
			domain.ErrInsufficientStock, available, qty)
	}
	item.Quantity -= qty
	item.UpdatedAt = time.Now()
	if err := e.stock.Upsert(item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetAbsolute fija la cantidad exacta del par (producto, bodega) sin
// importar el valor anterior; se usa para reconciliar contra conteos
// físicos. No toca Reserved.
func (e *Engine) SetAbsolute(productID, warehouseID string, newQty int64) (*entity.StockItem, error) {
	if newQty < 0 {
		return nil, fmt.Errorf("%w: la cantidad absoluta no puede ser negativa", domain.ErrInvalidInput)
	}
	item, err := e.stock.GetForUpdate(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = &entity.StockItem{ProductID: productID, WarehouseID: warehouseID}
	}
	item.Quantity = newQty
	item.UpdatedAt = time.Now()
	if err := e.stock.Upsert(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Level devuelve la cantidad actual, o 0 si la fila no existe. Bloquea la
// fila si existe: el valor leído sigue siendo válido para calcular deltas
// dentro de la misma transacción.
func (e *Engine) Level(productID, warehouseID string) (int64, error) {
	item, err := e.stock.GetForUpdate(productID, warehouseID)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, nil
	}
	return item.Quantity, nil
}
