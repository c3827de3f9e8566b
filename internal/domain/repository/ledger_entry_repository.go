package repository

import "github.com/jortega-dev/almacen-api/internal/domain/entity"

// LedgerFilter filtros opcionales para consultar el kardex.
type LedgerFilter struct {
	ProductID string
	Kind      string // receipt, delivery, transfer, adjustment
}

// LedgerEntryRepository define el puerto de persistencia del kardex.
// El kardex es append-only: no existe Update ni Delete.
type LedgerEntryRepository interface {
	Create(entry *entity.LedgerEntry) error
	List(filter LedgerFilter, limit, offset int) ([]*entity.LedgerEntry, error)
	Count(filter LedgerFilter) (int64, error)
}
