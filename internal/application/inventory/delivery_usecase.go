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

// DeliveryUseCase gestiona despachos de mercancía hacia clientes. La
// validación es el único flujo del sistema que puede fallar por falta de
// stock: el decremento verifica disponibilidad bajo bloqueo de fila.
type DeliveryUseCase struct {
	txRunner      TxRunner
	deliveryRepo  repository.DeliveryRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(
	txRunner TxRunner,
	deliveryRepo repository.DeliveryRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		txRunner:      txRunner,
		deliveryRepo:  deliveryRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// CreateDraft crea un despacho en estado draft, sin efecto sobre el stock.
// La disponibilidad NO se verifica aquí: solo la validación compromete stock.
func (uc *DeliveryUseCase) CreateDraft(in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	if err := checkWarehouse(uc.warehouseRepo, in.WarehouseID); err != nil {
		return nil, err
	}
	items := make([]entity.DeliveryItem, 0, len(in.Items))
	for _, it := range in.Items {
		if err := checkProduct(uc.productRepo, it.ProductID); err != nil {
			return nil, err
		}
		items = append(items, entity.DeliveryItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	now := time.Now()
	delivery := &entity.Delivery{
		ID:             uuid.NewString(),
		DeliveryNumber: docnum.New(docnum.PrefixDelivery),
		Customer:       in.Customer,
		WarehouseID:    in.WarehouseID,
		Status:         entity.StatusDraft,
		Items:          items,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.deliveryRepo.Create(delivery); err != nil {
		return nil, err
	}
	return toDeliveryResponse(delivery), nil
}

// Validate aplica los efectos del despacho: por cada línea decrementa el
// stock en la bodega de origen (fallando con stock insuficiente si la
// disponibilidad no alcanza) y escribe un asiento con delta negativo. Si
// una línea falla, ninguna línea anterior persiste: la transacción completa
// se revierte y el documento sigue en draft.
func (uc *DeliveryUseCase) Validate(ctx context.Context, id string) (*dto.DeliveryResponse, error) {
	var validated *entity.Delivery
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		ledgerRepo repository.LedgerEntryRepository,
		_ repository.ReceiptRepository,
		deliveryRepo repository.DeliveryRepository,
		_ repository.TransferRepository,
		_ repository.AdjustmentRepository,
	) error {
		delivery, err := deliveryRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if delivery == nil {
			return fmt.Errorf("%w: despacho %s", domain.ErrNotFound, id)
		}
		if delivery.Status != entity.StatusDraft {
			return domain.ErrAlreadyProcessed
		}

		eng := stock.NewEngine(stockRepo)
		now := time.Now()
		for _, item := range delivery.Items {
			updated, err := eng.Decrement(item.ProductID, delivery.WarehouseID, item.Quantity)
			if err != nil {
				return err
			}
			entry := &entity.LedgerEntry{
				Kind:            entity.LedgerKindDelivery,
				ReferenceID:     delivery.ID,
				ReferenceKind:   entity.ReferenceKindDelivery,
				ProductID:       item.ProductID,
				FromWarehouseID: &delivery.WarehouseID,
				QuantityDelta:   -item.Quantity,
				BalanceAfter:    updated.Quantity,
				Reason:          "Despacho #" + delivery.DeliveryNumber,
				CreatedAt:       now,
			}
			if err := ledgerRepo.Create(entry); err != nil {
				return err
			}
		}

		ok, err := deliveryRepo.SetStatus(delivery.ID, entity.StatusDraft, entity.StatusValidated)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAlreadyProcessed
		}
		delivery.Status = entity.StatusValidated
		delivery.UpdatedAt = now
		validated = delivery
		return nil
	})
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(entity.LedgerKindDelivery, failureCause(err)).Inc()
		return nil, err
	}
	metrics.TransactionsValidated.WithLabelValues(entity.LedgerKindDelivery).Inc()
	metrics.LedgerEntriesWritten.Add(float64(len(validated.Items)))
	return toDeliveryResponse(validated), nil
}

// Cancel transiciona draft -> cancelled.
func (uc *DeliveryUseCase) Cancel(id string) (*dto.DeliveryResponse, error) {
	delivery, err := uc.deliveryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, fmt.Errorf("%w: despacho %s", domain.ErrNotFound, id)
	}
	if delivery.Status != entity.StatusDraft {
		return nil, domain.ErrAlreadyProcessed
	}
	ok, err := uc.deliveryRepo.SetStatus(id, entity.StatusDraft, entity.StatusCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAlreadyProcessed
	}
	delivery.Status = entity.StatusCancelled
	return toDeliveryResponse(delivery), nil
}

// GetByID obtiene un despacho por ID.
func (uc *DeliveryUseCase) GetByID(id string) (*dto.DeliveryResponse, error) {
	delivery, err := uc.deliveryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, nil
	}
	return toDeliveryResponse(delivery), nil
}

// List lista despachos con filtro opcional por estado, más recientes primero.
func (uc *DeliveryUseCase) List(status string, limit, offset int) (*dto.DeliveryListResponse, error) {
	st := entity.Status(status)
	if status != "" && !st.Valid() {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, status)
	}
	list, err := uc.deliveryRepo.List(st, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.deliveryRepo.Count(st)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDeliveryResponse(d))
	}
	return &dto.DeliveryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	items := make([]dto.LineItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, dto.LineItemResponse{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &dto.DeliveryResponse{
		ID:             d.ID,
		DeliveryNumber: d.DeliveryNumber,
		Customer:       d.Customer,
		WarehouseID:    d.WarehouseID,
		Status:         string(d.Status),
		Items:          items,
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
