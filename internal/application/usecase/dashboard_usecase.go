package usecase

import (
	"context"

	"github.com/jortega-dev/almacen-api/internal/application/dto"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

// DashboardUseCase agregados de inventario para el tablero.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// Summary devuelve los totales globales: productos, bodegas, unidades en
// existencia y valor del inventario a costo.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	summary, err := uc.dashboardRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryResponse{
		TotalProducts:      summary.TotalProducts,
		TotalWarehouses:    summary.TotalWarehouses,
		TotalStockQuantity: summary.TotalStockQuantity,
		TotalStockValue:    summary.TotalStockValue,
	}, nil
}

// LowStock devuelve las existencias por debajo del umbral de reorden de su
// producto.
func (uc *DashboardUseCase) LowStock(ctx context.Context) ([]dto.LowStockItemResponse, error) {
	list, err := uc.dashboardRepo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.LowStockItemResponse{
			ProductID:     it.ProductID,
			SKU:           it.SKU,
			ProductName:   it.ProductName,
			WarehouseID:   it.WarehouseID,
			WarehouseName: it.WarehouseName,
			Quantity:      it.Quantity,
			ReorderLevel:  it.ReorderLevel,
		})
	}
	return items, nil
}
