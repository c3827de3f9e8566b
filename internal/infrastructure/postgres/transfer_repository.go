package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de traslados. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste el traslado y sus líneas.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, transfer_number, source_warehouse_id, destination_warehouse_id, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.TransferNumber, transfer.SourceWarehouseID, transfer.DestinationWarehouseID,
		transfer.Status, transfer.Notes, transfer.CreatedAt, transfer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert transfer: número duplicado: %w", err)
		}
		return fmt.Errorf("insert transfer: %w", err)
	}
	for i, item := range transfer.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO transfer_items (transfer_id, position, product_id, quantity)
			VALUES ($1, $2, $3, $4)`,
			transfer.ID, i, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert transfer item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un traslado con sus líneas; nil si no existe.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el traslado bloqueando la fila del documento.
func (r *TransferRepo) GetForUpdate(id string) (*entity.Transfer, error) {
	return r.get(id, true)
}

func (r *TransferRepo) get(id string, forUpdate bool) (*entity.Transfer, error) {
	query := `
		SELECT id, transfer_number, source_warehouse_id, destination_warehouse_id, status, notes, created_at, updated_at
		FROM transfers WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var t entity.Transfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.TransferNumber, &t.SourceWarehouseID, &t.DestinationWarehouseID,
		&t.Status, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	items, err := r.loadItems(t.ID)
	if err != nil {
		return nil, err
	}
	t.Items = items
	return &t, nil
}

func (r *TransferRepo) loadItems(transferID string) ([]entity.TransferItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT product_id, quantity FROM transfer_items
		WHERE transfer_id = $1 ORDER BY position`, transferID)
	if err != nil {
		return nil, fmt.Errorf("load transfer items: %w", err)
	}
	defer rows.Close()
	var items []entity.TransferItem
	for rows.Next() {
		var it entity.TransferItem
		if err := rows.Scan(&it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// SetStatus transiciona de from a to; devuelve false si el documento ya no
// estaba en from.
func (r *TransferRepo) SetStatus(id string, from, to entity.Status) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE transfers SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		return false, fmt.Errorf("set transfer status: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// List lista traslados con filtro opcional por estado, más recientes primero.
func (r *TransferRepo) List(status entity.Status, limit, offset int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, transfer_number, source_warehouse_id, destination_warehouse_id, status, notes, created_at, updated_at
		FROM transfers`
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
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.TransferNumber, &t.SourceWarehouseID, &t.DestinationWarehouseID,
			&t.Status, &t.Notes, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range list {
		items, err := r.loadItems(t.ID)
		if err != nil {
			return nil, err
		}
		t.Items = items
	}
	return list, nil
}

// Count cuenta traslados con filtro opcional por estado.
func (r *TransferRepo) Count(status entity.Status) (int64, error) {
	query := `SELECT count(*) FROM transfers`
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	var total int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count transfers: %w", err)
	}
	return total, nil
}
