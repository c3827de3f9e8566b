package usecase

import (
	"fmt"

	"github.com/jortega-dev/almacen-api/internal/application/dto"
	"github.com/jortega-dev/almacen-api/internal/domain"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

// LedgerUseCase consulta del kardex (solo lectura; los asientos los escriben
// los validadores de documentos dentro de sus transacciones).
type LedgerUseCase struct {
	ledgerRepo repository.LedgerEntryRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(ledgerRepo repository.LedgerEntryRepository) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo}
}

// List lista asientos del kardex con filtros opcionales por producto y tipo
// de movimiento, más recientes primero.
func (uc *LedgerUseCase) List(filter repository.LedgerFilter, limit, offset int) (*dto.LedgerListResponse, error) {
	if filter.Kind != "" {
		switch filter.Kind {
		case entity.LedgerKindReceipt, entity.LedgerKindDelivery,
			entity.LedgerKindTransfer, entity.LedgerKindAdjustment:
		default:
			return nil, fmt.Errorf("%w: tipo de movimiento %q desconocido", domain.ErrInvalidInput, filter.Kind)
		}
	}
	list, err := uc.ledgerRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.ledgerRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LedgerEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.LedgerEntryResponse{
			ID:              e.ID,
			Kind:            e.Kind,
			ReferenceID:     e.ReferenceID,
			ReferenceKind:   e.ReferenceKind,
			ProductID:       e.ProductID,
			FromWarehouseID: e.FromWarehouseID,
			ToWarehouseID:   e.ToWarehouseID,
			QuantityDelta:   e.QuantityDelta,
			BalanceAfter:    e.BalanceAfter,
			Reason:          e.Reason,
			CreatedAt:       e.CreatedAt,
		})
	}
	return &dto.LedgerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}
