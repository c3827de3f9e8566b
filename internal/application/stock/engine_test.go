package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega-dev/almacen-api/internal/application/stock"
	"github.com/jortega-dev/almacen-api/internal/domain"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de existencias
// ──────────────────────────────────────────────────────────────────────────────

type memStockRepo struct {
	items map[string]*entity.StockItem
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{items: map[string]*entity.StockItem{}}
}

func key(productID, warehouseID string) string { return productID + "|" + warehouseID }

func (m *memStockRepo) Get(productID, warehouseID string) (*entity.StockItem, error) {
	return m.GetForUpdate(productID, warehouseID)
}

func (m *memStockRepo) GetForUpdate(productID, warehouseID string) (*entity.StockItem, error) {
	item, ok := m.items[key(productID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (m *memStockRepo) Upsert(item *entity.StockItem) error {
	cp := *item
	m.items[key(item.ProductID, item.WarehouseID)] = &cp
	return nil
}

func (m *memStockRepo) AddQuantity(productID, warehouseID string, qty int64) (*entity.StockItem, error) {
	k := key(productID, warehouseID)
	item, ok := m.items[k]
	if !ok {
		item = &entity.StockItem{ProductID: productID, WarehouseID: warehouseID}
		m.items[k] = item
	}
	item.Quantity += qty
	item.UpdatedAt = time.Now()
	cp := *item
	return &cp, nil
}

func (m *memStockRepo) List(filter repository.StockFilter, limit, offset int) ([]*entity.StockItem, error) {
	var list []*entity.StockItem
	for _, it := range m.items {
		cp := *it
		list = append(list, &cp)
	}
	return list, nil
}

func (m *memStockRepo) Count(filter repository.StockFilter) (int64, error) {
	return int64(len(m.items)), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor
// ──────────────────────────────────────────────────────────────────────────────

const (
	prodA   = "producto-a"
	bodega1 = "bodega-1"
)

func TestIncrement_CreaFilaSiNoExiste(t *testing.T) {
	repo := newMemStockRepo()
	eng := stock.NewEngine(repo)

	item, err := eng.Increment(prodA, bodega1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), item.Quantity)

	item, err = eng.Increment(prodA, bodega1, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(125), item.Quantity, "el incremento debe acumular sobre la fila existente")
}

func TestIncrement_CantidadInvalida(t *testing.T) {
	eng := stock.NewEngine(newMemStockRepo())

	_, err := eng.Increment(prodA, bodega1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = eng.Increment(prodA, bodega1, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecrement_DescuentaYRespetaDisponible(t *testing.T) {
	repo := newMemStockRepo()
	eng := stock.NewEngine(repo)

	_, err := eng.Increment(prodA, bodega1, 100)
	require.NoError(t, err)

	item, err := eng.Decrement(prodA, bodega1, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(70), item.Quantity)
}

func TestDecrement_StockInsuficiente(t *testing.T) {
	repo := newMemStockRepo()
	eng := stock.NewEngine(repo)

	_, err := eng.Increment(prodA, bodega1, 70)
	require.NoError(t, err)

	_, err = eng.Decrement(prodA, bodega1, 1000)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "disponible 70, requerido 1000")

	// El fallo no debe haber tocado la cantidad.
	level, err := eng.Level(prodA, bodega1)
	require.NoError(t, err)
	assert.Equal(t, int64(70), level, "un decremento rechazado no debe mutar la existencia")
}

func TestDecrement_SinFilaPrevia(t *testing.T) {
	eng := stock.NewEngine(newMemStockRepo())

	_, err := eng.Decrement(prodA, bodega1, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"decrementar un par sin existencia debe fallar, nunca crear fila negativa")
}

func TestDecrement_RespetaReservado(t *testing.T) {
	repo := newMemStockRepo()
	eng := stock.NewEngine(repo)

	require.NoError(t, repo.Upsert(&entity.StockItem{
		ProductID: prodA, WarehouseID: bodega1, Quantity: 50, Reserved: 20,
	}))

	// Disponible = 50 - 20 = 30: pedir 40 debe fallar.
	_, err := eng.Decrement(prodA, bodega1, 40)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Pedir exactamente el disponible debe pasar.
	item, err := eng.Decrement(prodA, bodega1, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(20), item.Quantity)
	assert.Equal(t, int64(20), item.Reserved, "el decremento nunca toca lo reservado")
}

func TestSetAbsolute_FijaCantidadExacta(t *testing.T) {
	repo := newMemStockRepo()
	eng := stock.NewEngine(repo)

	// Sin fila previa: la crea.
	item, err := eng.SetAbsolute(prodA, bodega1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), item.Quantity)

	// Sobre fila existente: reemplaza sin importar el valor anterior.
	item, err = eng.SetAbsolute(prodA, bodega1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), item.Quantity)

	_, err = eng.SetAbsolute(prodA, bodega1, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad absoluta negativa debe rechazarse")
}

func TestLevel_CeroSinFila(t *testing.T) {
	eng := stock.NewEngine(newMemStockRepo())

	level, err := eng.Level(prodA, bodega1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), level, "un par sin movimientos reporta existencia cero")
}

// La cantidad nunca queda negativa bajo ninguna secuencia de operaciones.
func TestInvariante_NuncaNegativo(t *testing.T) {
	repo := newMemStockRepo()
	eng := stock.NewEngine(repo)

	_, err := eng.Increment(prodA, bodega1, 10)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, _ = eng.Decrement(prodA, bodega1, 4)
	}

	level, err := eng.Level(prodA, bodega1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, level, int64(0))
	assert.Equal(t, int64(2), level, "10 - 4 - 4 = 2; el tercer decremento debe rechazarse")
}
