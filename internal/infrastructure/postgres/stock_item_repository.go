package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de existencias. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// Get obtiene la existencia de un producto en una bodega; nil si no hay fila.
func (r *StockItemRepo) Get(productID, warehouseID string) (*entity.StockItem, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, reserved, updated_at
		FROM stock_items WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.StockItem
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.Reserved, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la existencia y bloquea la fila (SELECT FOR UPDATE); nil si no hay fila.
func (r *StockItemRepo) GetForUpdate(productID, warehouseID string) (*entity.StockItem, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, reserved, updated_at
		FROM stock_items WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var s entity.StockItem
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.Reserved, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o fija la cantidad de forma absoluta. No toca reserved en
// filas existentes.
func (r *StockItemRepo) Upsert(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (product_id, warehouse_id, quantity, reserved, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		item.ProductID, item.WarehouseID, item.Quantity, item.Reserved,
	)
	if err != nil {
		return fmt.Errorf("upsert stock item: %w", err)
	}
	return nil
}

// AddQuantity suma qty de forma atómica, creando la fila si no existe, y
// devuelve el estado resultante.
func (r *StockItemRepo) AddQuantity(productID, warehouseID string, qty int64) (*entity.StockItem, error) {
	query := `
		INSERT INTO stock_items (product_id, warehouse_id, quantity, reserved, updated_at)
		VALUES ($1, $2, $3, 0, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = stock_items.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING product_id, warehouse_id, quantity, reserved, updated_at`
	var s entity.StockItem
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID, qty).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.Reserved, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("add stock quantity: %w", err)
	}
	return &s, nil
}

// List lista existencias con filtros opcionales por bodega y producto.
func (r *StockItemRepo) List(filter repository.StockFilter, limit, offset int) ([]*entity.StockItem, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, reserved, updated_at
		FROM stock_items WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY warehouse_id, product_id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		var s entity.StockItem
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.Quantity, &s.Reserved, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Count cuenta existencias con los mismos filtros de List.
func (r *StockItemRepo) Count(filter repository.StockFilter) (int64, error) {
	query := `SELECT count(*) FROM stock_items WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
	}
	var total int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count stock items: %w", err)
	}
	return total, nil
}
