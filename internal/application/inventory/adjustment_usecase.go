package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jortega-dev/almacen-api/internal/application/dto"
	"github.com/jortega-dev/almacen-api/internal/application/stock"
	"github.com/jortega-dev/almacen-api/internal/domain/docnum"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
	"github.com/jortega-dev/almacen-api/pkg/metrics"
)

// AdjustmentUseCase gestiona ajustes de inventario por conteo físico.
type AdjustmentUseCase struct {
	txRunner       TxRunner
	adjustmentRepo repository.AdjustmentRepository
	productRepo    repository.ProductRepository
	warehouseRepo  repository.WarehouseRepository
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(
	txRunner TxRunner,
	adjustmentRepo repository.AdjustmentRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *AdjustmentUseCase {
	return &AdjustmentUseCase{
		txRunner:       txRunner,
		adjustmentRepo: adjustmentRepo,
		productRepo:    productRepo,
		warehouseRepo:  warehouseRepo,
	}
}

// Create crea y aplica el ajuste en una sola transacción. El ajuste no pasa
// por draft: el documento se persiste directamente en validated. Por cada
// línea se lee la cantidad en sistema bajo bloqueo de fila, se calcula la
// diferencia contra lo contado y se fija la cantidad absoluta; si la
// diferencia es cero no se escribe asiento en el kardex.
func (uc *AdjustmentUseCase) Create(ctx context.Context, in dto.CreateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	if err := checkWarehouse(uc.warehouseRepo, in.WarehouseID); err != nil {
		return nil, err
	}
	for _, it := range in.Items {
		if err := checkProduct(uc.productRepo, it.ProductID); err != nil {
			return nil, err
		}
	}
	reason := in.Reason
	if reason == "" {
		reason = "Conteo físico"
	}

	var created *entity.Adjustment
	var entriesWritten int
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		ledgerRepo repository.LedgerEntryRepository,
		_ repository.ReceiptRepository,
		_ repository.DeliveryRepository,
		_ repository.TransferRepository,
		adjustmentRepo repository.AdjustmentRepository,
	) error {
		eng := stock.NewEngine(stockRepo)
		now := time.Now()
		adjustment := &entity.Adjustment{
			ID:               uuid.NewString(),
			AdjustmentNumber: docnum.New(docnum.PrefixAdjustment),
			WarehouseID:      in.WarehouseID,
			Status:           entity.StatusValidated,
			Reason:           reason,
			Notes:            in.Notes,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		for _, it := range in.Items {
			system, err := eng.Level(it.ProductID, in.WarehouseID)
			if err != nil {
				return err
			}
			delta := it.CountedQuantity - system
			adjustment.Items = append(adjustment.Items, entity.AdjustmentItem{
				ProductID:       it.ProductID,
				SystemQuantity:  system,
				CountedQuantity: it.CountedQuantity,
				Difference:      delta,
			})
			// La cantidad se fija siempre, incluso sin diferencia: un conteo
			// en cero sobre un par nunca almacenado debe dejar fila de
			// existencia. El asiento solo se escribe cuando hay movimiento.
			updated, err := eng.SetAbsolute(it.ProductID, in.WarehouseID, it.CountedQuantity)
			if err != nil {
				return err
			}
			if delta == 0 {
				continue
			}
			entry := &entity.LedgerEntry{
				Kind:          entity.LedgerKindAdjustment,
				ReferenceID:   adjustment.ID,
				ReferenceKind: entity.ReferenceKindAdjustment,
				ProductID:     it.ProductID,
				QuantityDelta: delta,
				BalanceAfter:  updated.Quantity,
				Reason:        reason,
				CreatedAt:     now,
			}
			if delta > 0 {
				entry.ToWarehouseID = &adjustment.WarehouseID
			} else {
				entry.FromWarehouseID = &adjustment.WarehouseID
			}
			if err := ledgerRepo.Create(entry); err != nil {
				return err
			}
			entriesWritten++
		}
		if err := adjustmentRepo.Create(adjustment); err != nil {
			return err
		}
		created = adjustment
		return nil
	})
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(entity.LedgerKindAdjustment, failureCause(err)).Inc()
		return nil, err
	}
	metrics.TransactionsValidated.WithLabelValues(entity.LedgerKindAdjustment).Inc()
	metrics.LedgerEntriesWritten.Add(float64(entriesWritten))
	return toAdjustmentResponse(created), nil
}

// GetByID obtiene un ajuste por ID.
func (uc *AdjustmentUseCase) GetByID(id string) (*dto.AdjustmentResponse, error) {
	adjustment, err := uc.adjustmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if adjustment == nil {
		return nil, nil
	}
	return toAdjustmentResponse(adjustment), nil
}

// List lista ajustes, más recientes primero.
func (uc *AdjustmentUseCase) List(limit, offset int) (*dto.AdjustmentListResponse, error) {
	list, err := uc.adjustmentRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.adjustmentRepo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAdjustmentResponse(a))
	}
	return &dto.AdjustmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

func toAdjustmentResponse(a *entity.Adjustment) *dto.AdjustmentResponse {
	items := make([]dto.AdjustmentItemResponse, 0, len(a.Items))
	for _, it := range a.Items {
		items = append(items, dto.AdjustmentItemResponse{
			ProductID:       it.ProductID,
			SystemQuantity:  it.SystemQuantity,
			CountedQuantity: it.CountedQuantity,
			Difference:      it.Difference,
		})
	}
	return &dto.AdjustmentResponse{
		ID:               a.ID,
		AdjustmentNumber: a.AdjustmentNumber,
		WarehouseID:      a.WarehouseID,
		Status:           string(a.Status),
		Reason:           a.Reason,
		Items:            items,
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
