package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jortega-dev/almacen-api/internal/application/dto"
	"github.com/jortega-dev/almacen-api/internal/application/stock"
	"github.com/jortega-dev/almacen-api/internal/domain"
	"github.com/jortega-dev/almacen-api/internal/domain/docnum"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
	"github.com/jortega-dev/almacen-api/pkg/metrics"
)

// ReceiptUseCase gestiona recepciones de mercancía: creación de borradores,
// consulta y la validación transaccional que aplica sus efectos al stock.
type ReceiptUseCase struct {
	txRunner      TxRunner
	receiptRepo   repository.ReceiptRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	txRunner TxRunner,
	receiptRepo repository.ReceiptRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		txRunner:      txRunner,
		receiptRepo:   receiptRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// CreateDraft crea una recepción en estado draft, sin efecto sobre el stock.
func (uc *ReceiptUseCase) CreateDraft(in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if err := checkWarehouse(uc.warehouseRepo, in.WarehouseID); err != nil {
		return nil, err
	}
	items := make([]entity.ReceiptItem, 0, len(in.Items))
	for _, it := range in.Items {
		if err := checkProduct(uc.productRepo, it.ProductID); err != nil {
			return nil, err
		}
		items = append(items, entity.ReceiptItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	now := time.Now()
	receipt := &entity.Receipt{
		ID:            uuid.NewString(),
		ReceiptNumber: docnum.New(docnum.PrefixReceipt),
		Supplier:      in.Supplier,
		WarehouseID:   in.WarehouseID,
		Status:        entity.StatusDraft,
		Items:         items,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.receiptRepo.Create(receipt); err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt), nil
}

// Validate aplica los efectos de la recepción: por cada línea incrementa el
// stock en la bodega receptora y escribe un asiento en el kardex; al final
// transiciona draft -> validated. Todo dentro de una transacción: si
// cualquier paso falla no persiste ningún efecto parcial.
func (uc *ReceiptUseCase) Validate(ctx context.Context, id string) (*dto.ReceiptResponse, error) {
	var validated *entity.Receipt
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		ledgerRepo repository.LedgerEntryRepository,
		receiptRepo repository.ReceiptRepository,
		_ repository.DeliveryRepository,
		_ repository.TransferRepository,
		_ repository.AdjustmentRepository,
	) error {
		receipt, err := receiptRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if receipt == nil {
			return fmt.Errorf("%w: recepción %s", domain.ErrNotFound, id)
		}
		if receipt.Status != entity.StatusDraft {
			return domain.ErrAlreadyProcessed
		}

		eng := stock.NewEngine(stockRepo)
		now := time.Now()
		for _, item := range receipt.Items {
			updated, err := eng.Increment(item.ProductID, receipt.WarehouseID, item.Quantity)
			if err != nil {
				return err
			}
			entry := &entity.LedgerEntry{
				Kind:          entity.LedgerKindReceipt,
				ReferenceID:   receipt.ID,
				ReferenceKind: entity.ReferenceKindReceipt,
				ProductID:     item.ProductID,
				ToWarehouseID: &receipt.WarehouseID,
				QuantityDelta: item.Quantity,
				BalanceAfter:  updated.Quantity,
				Reason:        "Recepción #" + receipt.ReceiptNumber,
				CreatedAt:     now,
			}
			if err := ledgerRepo.Create(entry); err != nil {
				return err
			}
		}

		ok, err := receiptRepo.SetStatus(receipt.ID, entity.StatusDraft, entity.StatusValidated)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAlreadyProcessed
		}
		receipt.Status = entity.StatusValidated
		receipt.UpdatedAt = now
		validated = receipt
		return nil
	})
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(entity.LedgerKindReceipt, failureCause(err)).Inc()
		return nil, err
	}
	metrics.TransactionsValidated.WithLabelValues(entity.LedgerKindReceipt).Inc()
	metrics.LedgerEntriesWritten.Add(float64(len(validated.Items)))
	return toReceiptResponse(validated), nil
}

// Cancel transiciona draft -> cancelled. Solo los borradores se cancelan;
// un documento validado es inmutable.
func (uc *ReceiptUseCase) Cancel(id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, fmt.Errorf("%w: recepción %s", domain.ErrNotFound, id)
	}
	if receipt.Status != entity.StatusDraft {
		return nil, domain.ErrAlreadyProcessed
	}
	ok, err := uc.receiptRepo.SetStatus(id, entity.StatusDraft, entity.StatusCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAlreadyProcessed
	}
	receipt.Status = entity.StatusCancelled
	return toReceiptResponse(receipt), nil
}

// GetByID obtiene una recepción por ID.
func (uc *ReceiptUseCase) GetByID(id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, nil
	}
	return toReceiptResponse(receipt), nil
}

// List lista recepciones con filtro opcional por estado, más recientes primero.
func (uc *ReceiptUseCase) List(status string, limit, offset int) (*dto.ReceiptListResponse, error) {
	st := entity.Status(status)
	if status != "" && !st.Valid() {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, status)
	}
	list, err := uc.receiptRepo.List(st, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.receiptRepo.Count(st)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceiptResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReceiptResponse(r))
	}
	return &dto.ReceiptListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	items := make([]dto.LineItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.LineItemResponse{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &dto.ReceiptResponse{
		ID:            r.ID,
		ReceiptNumber: r.ReceiptNumber,
		Supplier:      r.Supplier,
		WarehouseID:   r.WarehouseID,
		Status:        string(r.Status),
		Items:         items,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
