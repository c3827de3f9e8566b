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

// TransferUseCase gestiona traslados de mercancía entre bodegas.
type TransferUseCase struct {
	txRunner      TxRunner
	transferRepo  repository.TransferRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	transferRepo repository.TransferRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:      txRunner,
		transferRepo:  transferRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// CreateDraft crea un traslado en estado draft, sin efecto sobre el stock.
func (uc *TransferUseCase) CreateDraft(in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if in.SourceWarehouseID == in.DestinationWarehouseID {
		return nil, fmt.Errorf("%w: origen y destino deben ser bodegas distintas", domain.ErrInvalidInput)
	}
	if err := checkWarehouse(uc.warehouseRepo, in.SourceWarehouseID); err != nil {
		return nil, err
	}
	if err := checkWarehouse(uc.warehouseRepo, in.DestinationWarehouseID); err != nil {
		return nil, err
	}
	items := make([]entity.TransferItem, 0, len(in.Items))
	for _, it := range in.Items {
		if err := checkProduct(uc.productRepo, it.ProductID); err != nil {
			return nil, err
		}
		items = append(items, entity.TransferItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	now := time.Now()
	transfer := &entity.Transfer{
		ID:                     uuid.NewString(),
		TransferNumber:         docnum.New(docnum.PrefixTransfer),
		SourceWarehouseID:      in.SourceWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		Status:                 entity.StatusDraft,
		Items:                  items,
		Notes:                  in.Notes,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.transferRepo.Create(transfer); err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

// Validate aplica los efectos del traslado. Por cada línea primero debita
// la bodega origen y solo entonces acredita la destino: el destino nunca
// recibe stock que el origen no pudo entregar. Se escribe un único asiento
// combinado por línea (ambas bodegas, delta = magnitud del traslado,
// BalanceAfter = saldo resultante en destino).
func (uc *TransferUseCase) Validate(ctx context.Context, id string) (*dto.TransferResponse, error) {
	var validated *entity.Transfer
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		ledgerRepo repository.LedgerEntryRepository,
		_ repository.ReceiptRepository,
		_ repository.DeliveryRepository,
		transferRepo repository.TransferRepository,
		_ repository.AdjustmentRepository,
	) error {
		transfer, err := transferRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if transfer == nil {
			return fmt.Errorf("%w: traslado %s", domain.ErrNotFound, id)
		}
		if transfer.Status != entity.StatusDraft {
			return domain.ErrAlreadyProcessed
		}

		eng := stock.NewEngine(stockRepo)
		now := time.Now()
		for _, item := range transfer.Items {
			if _, err := eng.Decrement(item.ProductID, transfer.SourceWarehouseID, item.Quantity); err != nil {
				return err
			}
			dest, err := eng.Increment(item.ProductID, transfer.DestinationWarehouseID, item.Quantity)
			if err != nil {
				return err
			}
			entry := &entity.LedgerEntry{
				Kind:            entity.LedgerKindTransfer,
				ReferenceID:     transfer.ID,
				ReferenceKind:   entity.ReferenceKindTransfer,
				ProductID:       item.ProductID,
				FromWarehouseID: &transfer.SourceWarehouseID,
				ToWarehouseID:   &transfer.DestinationWarehouseID,
				QuantityDelta:   item.Quantity,
				BalanceAfter:    dest.Quantity,
				Reason:          "Traslado #" + transfer.TransferNumber,
				CreatedAt:       now,
			}
			if err := ledgerRepo.Create(entry); err != nil {
				return err
			}
		}

		ok, err := transferRepo.SetStatus(transfer.ID, entity.StatusDraft, entity.StatusValidated)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAlreadyProcessed
		}
		transfer.Status = entity.StatusValidated
		transfer.UpdatedAt = now
		validated = transfer
		return nil
	})
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(entity.LedgerKindTransfer, failureCause(err)).Inc()
		return nil, err
	}
	metrics.TransactionsValidated.WithLabelValues(entity.LedgerKindTransfer).Inc()
	metrics.LedgerEntriesWritten.Add(float64(len(validated.Items)))
	return toTransferResponse(validated), nil
}

// Cancel transiciona draft -> cancelled.
func (uc *TransferUseCase) Cancel(id string) (*dto.TransferResponse, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, fmt.Errorf("%w: traslado %s", domain.ErrNotFound, id)
	}
	if transfer.Status != entity.StatusDraft {
		return nil, domain.ErrAlreadyProcessed
	}
	ok, err := uc.transferRepo.SetStatus(id, entity.StatusDraft, entity.StatusCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAlreadyProcessed
	}
	transfer.Status = entity.StatusCancelled
	return toTransferResponse(transfer), nil
}

// GetByID obtiene un traslado por ID.
func (uc *TransferUseCase) GetByID(id string) (*dto.TransferResponse, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, nil
	}
	return toTransferResponse(transfer), nil
}

// List lista traslados con filtro opcional por estado, más recientes primero.
func (uc *TransferUseCase) List(status string, limit, offset int) (*dto.TransferListResponse, error) {
	st := entity.Status(status)
	if status != "" && !st.Valid() {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, status)
	}
	list, err := uc.transferRepo.List(st, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.transferRepo.Count(st)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t))
	}
	return &dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	items := make([]dto.LineItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, dto.LineItemResponse{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &dto.TransferResponse{
		ID:                     t.ID,
		TransferNumber:         t.TransferNumber,
		SourceWarehouseID:      t.SourceWarehouseID,
		DestinationWarehouseID: t.DestinationWarehouseID,
		Status:                 string(t.Status),
		Items:                  items,
		Notes:                  t.Notes,
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
}
