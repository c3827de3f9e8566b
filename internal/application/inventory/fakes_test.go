package inventory_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/jortega-dev/almacen-api/internal/application/inventory"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria compartido por todos los fakes
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	stock       map[string]*entity.StockItem
	ledger      []*entity.LedgerEntry
	receipts    map[string]*entity.Receipt
	deliveries  map[string]*entity.Delivery
	transfers   map[string]*entity.Transfer
	adjustments map[string]*entity.Adjustment
	products    map[string]*entity.Product
	warehouses  map[string]*entity.Warehouse
}

func newMemStore() *memStore {
	return &memStore{
		stock:       map[string]*entity.StockItem{},
		receipts:    map[string]*entity.Receipt{},
		deliveries:  map[string]*entity.Delivery{},
		transfers:   map[string]*entity.Transfer{},
		adjustments: map[string]*entity.Adjustment{},
		products:    map[string]*entity.Product{},
		warehouses:  map[string]*entity.Warehouse{},
	}
}

func stockKey(productID, warehouseID string) string { return productID + "|" + warehouseID }

// clone copia el estado completo; lo usa el runner de transacciones para
// poder revertir todo cuando la función falla.
func (s *memStore) clone() *memStore {
	cp := newMemStore()
	for k, v := range s.stock {
		item := *v
		cp.stock[k] = &item
	}
	cp.ledger = make([]*entity.LedgerEntry, len(s.ledger))
	for i, e := range s.ledger {
		entry := *e
		cp.ledger[i] = &entry
	}
	for k, v := range s.receipts {
		doc := *v
		doc.Items = append([]entity.ReceiptItem(nil), v.Items...)
		cp.receipts[k] = &doc
	}
	for k, v := range s.deliveries {
		doc := *v
		doc.Items = append([]entity.DeliveryItem(nil), v.Items...)
		cp.deliveries[k] = &doc
	}
	for k, v := range s.transfers {
		doc := *v
		doc.Items = append([]entity.TransferItem(nil), v.Items...)
		cp.transfers[k] = &doc
	}
	for k, v := range s.adjustments {
		doc := *v
		doc.Items = append([]entity.AdjustmentItem(nil), v.Items...)
		cp.adjustments[k] = &doc
	}
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	for k, v := range s.warehouses {
		w := *v
		cp.warehouses[k] = &w
	}
	return cp
}

// ──────────────────────────────────────────────────────────────────────────────
// Runner de transacciones con semántica de rollback real
// ──────────────────────────────────────────────────────────────────────────────

type memTxRunner struct {
	store *memStore
}

var _ inventory.TxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockItemRepository,
	ledgerRepo repository.LedgerEntryRepository,
	receiptRepo repository.ReceiptRepository,
	deliveryRepo repository.DeliveryRepository,
	transferRepo repository.TransferRepository,
	adjustmentRepo repository.AdjustmentRepository,
) error) error {
	snapshot := r.store.clone()
	err := fn(
		&memStockRepo{store: r.store},
		&memLedgerRepo{store: r.store},
		&memReceiptRepo{store: r.store},
		&memDeliveryRepo{store: r.store},
		&memTransferRepo{store: r.store},
		&memAdjustmentRepo{store: r.store},
	)
	if err != nil {
		*r.store = *snapshot
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake
// ──────────────────────────────────────────────────────────────────────────────

type memStockRepo struct{ store *memStore }

func (m *memStockRepo) Get(productID, warehouseID string) (*entity.StockItem, error) {
	return m.GetForUpdate(productID, warehouseID)
}

func (m *memStockRepo) GetForUpdate(productID, warehouseID string) (*entity.StockItem, error) {
	item, ok := m.store.stock[stockKey(productID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (m *memStockRepo) Upsert(item *entity.StockItem) error {
	cp := *item
	m.store.stock[stockKey(item.ProductID, item.WarehouseID)] = &cp
	return nil
}

func (m *memStockRepo) AddQuantity(productID, warehouseID string, qty int64) (*entity.StockItem, error) {
	k := stockKey(productID, warehouseID)
	item, ok := m.store.stock[k]
	if !ok {
		item = &entity.StockItem{ProductID: productID, WarehouseID: warehouseID}
		m.store.stock[k] = item
	}
	item.Quantity += qty
	cp := *item
	return &cp, nil
}

func (m *memStockRepo) List(_ repository.StockFilter, _, _ int) ([]*entity.StockItem, error) {
	var list []*entity.StockItem
	for _, it := range m.store.stock {
		cp := *it
		list = append(list, &cp)
	}
	return list, nil
}

func (m *memStockRepo) Count(_ repository.StockFilter) (int64, error) {
	return int64(len(m.store.stock)), nil
}

type memLedgerRepo struct{ store *memStore }

func (m *memLedgerRepo) Create(entry *entity.LedgerEntry) error {
	cp := *entry
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	m.store.ledger = append(m.store.ledger, &cp)
	return nil
}

func (m *memLedgerRepo) List(filter repository.LedgerFilter, limit, offset int) ([]*entity.LedgerEntry, error) {
	var list []*entity.LedgerEntry
	// Más recientes primero, como el repositorio real.
	for i := len(m.store.ledger) - 1; i >= 0; i-- {
		e := m.store.ledger[i]
		if filter.ProductID != "" && e.ProductID != filter.ProductID {
			continue
		}
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		cp := *e
		list = append(list, &cp)
	}
	if offset > len(list) {
		offset = len(list)
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (m *memLedgerRepo) Count(filter repository.LedgerFilter) (int64, error) {
	list, _ := m.List(filter, 0, 0)
	return int64(len(list)), nil
}

type memReceiptRepo struct{ store *memStore }

func (m *memReceiptRepo) Create(receipt *entity.Receipt) error {
	doc := *receipt
	doc.Items = append([]entity.ReceiptItem(nil), receipt.Items...)
	m.store.receipts[doc.ID] = &doc
	return nil
}

func (m *memReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	doc, ok := m.store.receipts[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	cp.Items = append([]entity.ReceiptItem(nil), doc.Items...)
	return &cp, nil
}

func (m *memReceiptRepo) GetForUpdate(id string) (*entity.Receipt, error) {
	return m.GetByID(id)
}

func (m *memReceiptRepo) SetStatus(id string, from, to entity.Status) (bool, error) {
	doc, ok := m.store.receipts[id]
	if !ok || doc.Status != from {
		return false, nil
	}
	doc.Status = to
	return true, nil
}

func (m *memReceiptRepo) List(status entity.Status, _, _ int) ([]*entity.Receipt, error) {
	var list []*entity.Receipt
	for _, doc := range m.store.receipts {
		if status != "" && doc.Status != status {
			continue
		}
		cp, _ := m.GetByID(doc.ID)
		list = append(list, cp)
	}
	return list, nil
}

func (m *memReceiptRepo) Count(status entity.Status) (int64, error) {
	list, _ := m.List(status, 0, 0)
	return int64(len(list)), nil
}

type memDeliveryRepo struct{ store *memStore }

func (m *memDeliveryRepo) Create(delivery *entity.Delivery) error {
	doc := *delivery
	doc.Items = append([]entity.DeliveryItem(nil), delivery.Items...)
	m.store.deliveries[doc.ID] = &doc
	return nil
}

func (m *memDeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	doc, ok := m.store.deliveries[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	cp.Items = append([]entity.DeliveryItem(nil), doc.Items...)
	return &cp, nil
}

func (m *memDeliveryRepo) GetForUpdate(id string) (*entity.Delivery, error) {
	return m.GetByID(id)
}

func (m *memDeliveryRepo) SetStatus(id string, from, to entity.Status) (bool, error) {
	doc, ok := m.store.deliveries[id]
	if !ok || doc.Status != from {
		return false, nil
	}
	doc.Status = to
	return true, nil
}

func (m *memDeliveryRepo) List(status entity.Status, _, _ int) ([]*entity.Delivery, error) {
	var list []*entity.Delivery
	for _, doc := range m.store.deliveries {
		if status != "" && doc.Status != status {
			continue
		}
		cp, _ := m.GetByID(doc.ID)
		list = append(list, cp)
	}
	return list, nil
}

func (m *memDeliveryRepo) Count(status entity.Status) (int64, error) {
	list, _ := m.List(status, 0, 0)
	return int64(len(list)), nil
}

type memTransferRepo struct{ store *memStore }

func (m *memTransferRepo) Create(transfer *entity.Transfer) error {
	doc := *transfer
	doc.Items = append([]entity.TransferItem(nil), transfer.Items...)
	m.store.transfers[doc.ID] = &doc
	return nil
}

func (m *memTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	doc, ok := m.store.transfers[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	cp.Items = append([]entity.TransferItem(nil), doc.Items...)
	return &cp, nil
}

func (m *memTransferRepo) GetForUpdate(id string) (*entity.Transfer, error) {
	return m.GetByID(id)
}

func (m *memTransferRepo) SetStatus(id string, from, to entity.Status) (bool, error) {
	doc, ok := m.store.transfers[id]
	if !ok || doc.Status != from {
		return false, nil
	}
	doc.Status = to
	return true, nil
}

func (m *memTransferRepo) List(status entity.Status, _, _ int) ([]*entity.Transfer, error) {
	var list []*entity.Transfer
	for _, doc := range m.store.transfers {
		if status != "" && doc.Status != status {
			continue
		}
		cp, _ := m.GetByID(doc.ID)
		list = append(list, cp)
	}
	return list, nil
}

func (m *memTransferRepo) Count(status entity.Status) (int64, error) {
	list, _ := m.List(status, 0, 0)
	return int64(len(list)), nil
}

type memAdjustmentRepo struct{ store *memStore }

func (m *memAdjustmentRepo) Create(adjustment *entity.Adjustment) error {
	doc := *adjustment
	doc.Items = append([]entity.AdjustmentItem(nil), adjustment.Items...)
	m.store.adjustments[doc.ID] = &doc
	return nil
}

func (m *memAdjustmentRepo) GetByID(id string) (*entity.Adjustment, error) {
	doc, ok := m.store.adjustments[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	cp.Items = append([]entity.AdjustmentItem(nil), doc.Items...)
	return &cp, nil
}

func (m *memAdjustmentRepo) List(_, _ int) ([]*entity.Adjustment, error) {
	var list []*entity.Adjustment
	for _, doc := range m.store.adjustments {
		cp, _ := m.GetByID(doc.ID)
		list = append(list, cp)
	}
	return list, nil
}

func (m *memAdjustmentRepo) Count() (int64, error) {
	return int64(len(m.store.adjustments)), nil
}

type memProductRepo struct{ store *memStore }

func (m *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	m.store.products[cp.ID] = &cp
	return nil
}

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := m.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range m.store.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProductRepo) Update(p *entity.Product) error { return m.Create(p) }

func (m *memProductRepo) List(_, _ int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range m.store.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (m *memProductRepo) Count() (int64, error) { return int64(len(m.store.products)), nil }

type memWarehouseRepo struct{ store *memStore }

func (m *memWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	m.store.warehouses[cp.ID] = &cp
	return nil
}

func (m *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := m.store.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (m *memWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	for _, w := range m.store.warehouses {
		if w.Code == code {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memWarehouseRepo) Update(w *entity.Warehouse) error { return m.Create(w) }

func (m *memWarehouseRepo) List(_, _ int) ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for _, w := range m.store.warehouses {
		cp := *w
		list = append(list, &cp)
	}
	return list, nil
}

func (m *memWarehouseRepo) Count() (int64, error) { return int64(len(m.store.warehouses)), nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	whCentral = "11111111-1111-4111-8111-111111111111"
	whNorte   = "22222222-2222-4222-8222-222222222222"
	prodArroz = "33333333-3333-4333-8333-333333333333"
	prodAzuc  = "44444444-4444-4444-8444-444444444444"
)

type fixture struct {
	store       *memStore
	receipts    *inventory.ReceiptUseCase
	deliveries  *inventory.DeliveryUseCase
	transfers   *inventory.TransferUseCase
	adjustments *inventory.AdjustmentUseCase
}

// newFixture arma el juego completo: dos bodegas, dos productos y los
// cuatro casos de uso cableados sobre el mismo almacén en memoria.
func newFixture() *fixture {
	store := newMemStore()
	store.warehouses[whCentral] = &entity.Warehouse{ID: whCentral, Name: "Bodega Central", Code: "BOD-CENTRAL", Active: true}
	store.warehouses[whNorte] = &entity.Warehouse{ID: whNorte, Name: "Bodega Norte", Code: "BOD-NORTE", Active: true}
	store.products[prodArroz] = &entity.Product{ID: prodArroz, SKU: "ARR-500G", Name: "Arroz 500g", UOM: "und"}
	store.products[prodAzuc] = &entity.Product{ID: prodAzuc, SKU: "AZU-1KG", Name: "Azúcar 1kg", UOM: "und"}

	runner := &memTxRunner{store: store}
	products := &memProductRepo{store: store}
	warehouses := &memWarehouseRepo{store: store}

	return &fixture{
		store:       store,
		receipts:    inventory.NewReceiptUseCase(runner, &memReceiptRepo{store: store}, products, warehouses),
		deliveries:  inventory.NewDeliveryUseCase(runner, &memDeliveryRepo{store: store}, products, warehouses),
		transfers:   inventory.NewTransferUseCase(runner, &memTransferRepo{store: store}, products, warehouses),
		adjustments: inventory.NewAdjustmentUseCase(runner, &memAdjustmentRepo{store: store}, products, warehouses),
	}
}

// quantity devuelve la existencia actual del par, 0 si no hay fila.
func (f *fixture) quantity(productID, warehouseID string) int64 {
	item, ok := f.store.stock[stockKey(productID, warehouseID)]
	if !ok {
		return 0
	}
	return item.Quantity
}
