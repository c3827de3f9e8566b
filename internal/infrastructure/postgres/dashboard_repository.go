package postgres

import (
	"context"
	"fmt"

	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de agregación para el tablero (solo lectura).
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del tablero. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Summary calcula los agregados globales: total de productos y bodegas,
// unidades en existencia y valor del inventario a costo.
func (r *DashboardRepo) Summary(ctx context.Context) (*repository.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT count(*) FROM products),
			(SELECT count(*) FROM warehouses),
			COALESCE(sum(s.quantity), 0),
			COALESCE(sum(s.quantity * p.cost_price), 0)
		FROM stock_items s
		JOIN products p ON p.id = s.product_id`
	var sm repository.DashboardSummary
	err := r.q.QueryRow(ctx, query).Scan(
		&sm.TotalProducts, &sm.TotalWarehouses, &sm.TotalStockQuantity, &sm.TotalStockValue,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &sm, nil
}

// LowStock lista existencias por debajo del umbral de reorden del producto.
func (r *DashboardRepo) LowStock(ctx context.Context) ([]repository.LowStockItem, error) {
	query := `
		SELECT s.product_id, p.sku, p.name, s.warehouse_id, w.name, s.quantity, p.reorder_level
		FROM stock_items s
		JOIN products p ON p.id = s.product_id
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE p.reorder_level > 0 AND s.quantity <= p.reorder_level
		ORDER BY s.quantity ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard low stock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.ProductID, &it.SKU, &it.ProductName,
			&it.WarehouseID, &it.WarehouseName, &it.Quantity, &it.ReorderLevel); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
