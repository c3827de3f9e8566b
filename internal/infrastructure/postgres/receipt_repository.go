package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository sobre PostgreSQL (usable con pool o tx).
// El documento vive en receipts y sus líneas en receipt_items.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador de recepciones. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste la recepción y sus líneas.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, receipt_number, supplier, warehouse_id, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.ReceiptNumber, receipt.Supplier, receipt.WarehouseID,
		receipt.Status, receipt.Notes, receipt.CreatedAt, receipt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert receipt: número duplicado: %w", err)
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	for i, item := range receipt.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO receipt_items (receipt_id, position, product_id, quantity)
			VALUES ($1, $2, $3, $4)`,
			receipt.ID, i, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert receipt item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una recepción con sus líneas; nil si no existe.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la recepción bloqueando la fila del documento.
func (r *ReceiptRepo) GetForUpdate(id string) (*entity.Receipt, error) {
	return r.get(id, true)
}

func (r *ReceiptRepo) get(id string, forUpdate bool) (*entity.Receipt, error) {
	query := `
		SELECT id, receipt_number, supplier, warehouse_id, status, notes, created_at, updated_at
		FROM receipts WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var rec entity.Receipt
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.ReceiptNumber, &rec.Supplier, &rec.WarehouseID,
		&rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	items, err := r.loadItems(rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Items = items
	return &rec, nil
}

func (r *ReceiptRepo) loadItems(receiptID string) ([]entity.ReceiptItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT product_id, quantity FROM receipt_items
		WHERE receipt_id = $1 ORDER BY position`, receiptID)
	if err != nil {
		return nil, fmt.Errorf("load receipt items: %w", err)
	}
	defer rows.Close()
	var items []entity.ReceiptItem
	for rows.Next() {
		var it entity.ReceiptItem
		if err := rows.Scan(&it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan receipt item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// SetStatus transiciona de from a to; devuelve false si el documento ya no
// estaba en from (otro proceso ganó la carrera).
func (r *ReceiptRepo) SetStatus(id string, from, to entity.Status) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE receipts SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		return false, fmt.Errorf("set receipt status: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// List lista recepciones con filtro opcional por estado, más recientes primero.
func (r *ReceiptRepo) List(status entity.Status, limit, offset int) ([]*entity.Receipt, error) {
	query := `
		SELECT id, receipt_number, supplier, warehouse_id, status, notes, created_at, updated_at
		FROM receipts`
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
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		if err := rows.Scan(&rec.ID, &rec.ReceiptNumber, &rec.Supplier, &rec.WarehouseID,
			&rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, rec := range list {
		items, err := r.loadItems(rec.ID)
		if err != nil {
			return nil, err
		}
		rec.Items = items
	}
	return list, nil
}

// Count cuenta recepciones con filtro opcional por estado.
func (r *ReceiptRepo) Count(status entity.Status) (int64, error) {
	query := `SELECT count(*) FROM receipts`
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	var total int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count receipts: %w", err)
	}
	return total, nil
}
