package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación de DeliveryRepository sobre PostgreSQL (usable con pool o tx).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador de despachos. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste el despacho y sus líneas.
func (r *DeliveryRepo) Create(delivery *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (id, delivery_number, customer, warehouse_id, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		delivery.ID, delivery.DeliveryNumber, delivery.Customer, delivery.WarehouseID,
		delivery.Status, delivery.Notes, delivery.CreatedAt, delivery.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert delivery: número duplicado: %w", err)
		}
		return fmt.Errorf("insert delivery: %w", err)
	}
	for i, item := range delivery.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO delivery_items (delivery_id, position, product_id, quantity)
			VALUES ($1, $2, $3, $4)`,
			delivery.ID, i, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert delivery item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un despacho con sus líneas; nil si no existe.
func (r *DeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el despacho bloqueando la fila del documento.
func (r *DeliveryRepo) GetForUpdate(id string) (*entity.Delivery, error) {
	return r.get(id, true)
}

func (r *DeliveryRepo) get(id string, forUpdate bool) (*entity.Delivery, error) {
	query := `
		SELECT id, delivery_number, customer, warehouse_id, status, notes, created_at, updated_at
		FROM deliveries WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var d entity.Delivery
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.DeliveryNumber, &d.Customer, &d.WarehouseID,
		&d.Status, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	items, err := r.loadItems(d.ID)
	if err != nil {
		return nil, err
	}
	d.Items = items
	return &d, nil
}

func (r *DeliveryRepo) loadItems(deliveryID string) ([]entity.DeliveryItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT product_id, quantity FROM delivery_items
		WHERE delivery_id = $1 ORDER BY position`, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("load delivery items: %w", err)
	}
	defer rows.Close()
	var items []entity.DeliveryItem
	for rows.Next() {
		var it entity.DeliveryItem
		if err := rows.Scan(&it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan delivery item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// SetStatus transiciona de from a to; devuelve false si el documento ya no
// estaba en from.
func (r *DeliveryRepo) SetStatus(id string, from, to entity.Status) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE deliveries SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		return false, fmt.Errorf("set delivery status: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// List lista despachos con filtro opcional por estado, más recientes primero.
func (r *DeliveryRepo) List(status entity.Status, limit, offset int) ([]*entity.Delivery, error) {
	query := `
		SELECT id, delivery_number, customer, warehouse_id, status, notes, created_at, updated_at
		FROM deliveries`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		if err := rows.Scan(&d.ID, &d.DeliveryNumber, &d.Customer, &d.WarehouseID,
			&d.Status, &d.Notes, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, d := range list {
		items, err := r.loadItems(d.ID)
		if err != nil {
			return nil, err
		}
		d.Items = items
	}
	return list, nil
}

// Count cuenta despachos con filtro opcional por estado.
func (r *DeliveryRepo) Count(status entity.Status) (int64, error) {
	query := `SELECT count(*) FROM deliveries`
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	var total int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count deliveries: %w", err)
	}
	return total, nil
}
