package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

var _ repository.LedgerEntryRepository = (*LedgerEntryRepo)(nil)

// LedgerEntryRepo implementación del kardex sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: este adaptador no emite UPDATE ni DELETE.
type LedgerEntryRepo struct {
	q Querier
}

// NewLedgerEntryRepository construye el adaptador del kardex. Pasar pool o tx (Querier).
func NewLedgerEntryRepository(q Querier) *LedgerEntryRepo {
	return &LedgerEntryRepo{q: q}
}

// Create persiste un asiento del kardex.
func (r *LedgerEntryRepo) Create(entry *entity.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ledger_entries (id, kind, reference_id, reference_kind, product_id,
			from_warehouse_id, to_warehouse_id, quantity_delta, balance_after, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Kind, entry.ReferenceID, entry.ReferenceKind, entry.ProductID,
		entry.FromWarehouseID, entry.ToWarehouseID, entry.QuantityDelta, entry.BalanceAfter,
		entry.Reason, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// List lista asientos con filtros opcionales, más recientes primero.
func (r *LedgerEntryRepo) List(filter repository.LedgerFilter, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id, kind, reference_id, reference_kind, product_id,
			from_warehouse_id, to_warehouse_id, quantity_delta, balance_after, reason, created_at
		FROM ledger_entries WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", pos)
		args = append(args, filter.Kind)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.ReferenceID, &e.ReferenceKind, &e.ProductID,
			&e.FromWarehouseID, &e.ToWarehouseID, &e.QuantityDelta, &e.BalanceAfter,
			&e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Count cuenta asientos con los mismos filtros de List.
func (r *LedgerEntryRepo) Count(filter repository.LedgerFilter) (int64, error) {
	query := `SELECT count(*) FROM ledger_entries WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", pos)
		args = append(args, filter.Kind)
	}
	var total int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count ledger entries: %w", err)
	}
	return total, nil
}
