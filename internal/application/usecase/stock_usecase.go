package usecase

import (
	"github.com/jortega-dev/almacen-api/internal/application/dto"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

// StockUseCase consulta de existencias (solo lectura; toda escritura pasa
// por los validadores de documentos).
type StockUseCase struct {
	stockRepo repository.StockItemRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockItemRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo}
}

// Level devuelve la cantidad actual del par (producto, bodega); 0 si el par
// nunca ha tenido movimientos.
func (uc *StockUseCase) Level(productID, warehouseID string) (*dto.StockItemResponse, error) {
	item, err := uc.stockRepo.Get(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = &entity.StockItem{ProductID: productID, WarehouseID: warehouseID}
	}
	return toStockItemResponse(item), nil
}

// List lista existencias con filtros opcionales por bodega y producto.
func (uc *StockUseCase) List(filter repository.StockFilter, limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.stockRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.stockRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockItemResponse(s))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

func toStockItemResponse(s *entity.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ProductID:   s.ProductID,
		WarehouseID: s.WarehouseID,
		Quantity:    s.Quantity,
		Reserved:    s.Reserved,
		Available:   s.Available(),
		UpdatedAt:   s.UpdatedAt,
	}
}
