package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implementación de AdjustmentRepository sobre PostgreSQL (usable con pool o tx).
// Los ajustes nacen validados, así que no hay SetStatus.
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador de ajustes. Pasar pool o tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create persiste el ajuste y sus líneas.
func (r *AdjustmentRepo) Create(adjustment *entity.Adjustment) error {
	query := `
		INSERT INTO adjustments (id, adjustment_number, warehouse_id, status, reason, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		adjustment.ID, adjustment.AdjustmentNumber, adjustment.WarehouseID, adjustment.Status,
		adjustment.Reason, adjustment.Notes, adjustment.CreatedAt, adjustment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert adjustment: número duplicado: %w", err)
		}
		return fmt.Errorf("insert adjustment: %w", err)
	}
	for i, item := range adjustment.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO adjustment_items (adjustment_id, position, product_id, system_quantity, counted_quantity, difference)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			adjustment.ID, i, item.ProductID, item.SystemQuantity, item.CountedQuantity, item.Difference,
		)
		if err != nil {
			return fmt.Errorf("insert adjustment item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un ajuste con sus líneas; nil si no existe.
func (r *AdjustmentRepo) GetByID(id string) (*entity.Adjustment, error) {
	query := `
		SELECT id, adjustment_number, warehouse_id, status, reason, notes, created_at, updated_at
		FROM adjustments WHERE id = $1`
	var a entity.Adjustment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.AdjustmentNumber, &a.WarehouseID, &a.Status,
		&a.Reason, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adjustment: %w", err)
	}
	items, err := r.loadItems(a.ID)
	if err != nil {
		return nil, err
	}
	a.Items = items
	return &a, nil
}

func (r *AdjustmentRepo) loadItems(adjustmentID string) ([]entity.AdjustmentItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT product_id, system_quantity, counted_quantity, difference
		FROM adjustment_items WHERE adjustment_id = $1 ORDER BY position`, adjustmentID)
	if err != nil {
		return nil, fmt.Errorf("load adjustment items: %w", err)
	}
	defer rows.Close()
	var items []entity.AdjustmentItem
	for rows.Next() {
		var it entity.AdjustmentItem
		if err := rows.Scan(&it.ProductID, &it.SystemQuantity, &it.CountedQuantity, &it.Difference); err != nil {
			return nil, fmt.Errorf("scan adjustment item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// List lista ajustes, más recientes primero.
func (r *AdjustmentRepo) List(limit, offset int) ([]*entity.Adjustment, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, adjustment_number, warehouse_id, status, reason, notes, created_at, updated_at
		FROM adjustments ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Adjustment
	for rows.Next() {
		var a entity.Adjustment
		if err := rows.Scan(&a.ID, &a.AdjustmentNumber, &a.WarehouseID, &a.Status,
			&a.Reason, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, a := range list {
		items, err := r.loadItems(a.ID)
		if err != nil {
			return nil, err
		}
		a.Items = items
	}
	return list, nil
}

// Count cuenta los ajustes.
func (r *AdjustmentRepo) Count() (int64, error) {
	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM adjustments`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count adjustments: %w", err)
	}
	return total, nil
}
