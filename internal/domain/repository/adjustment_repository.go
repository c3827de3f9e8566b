package repository

import "github.com/jortega-dev/almacen-api/internal/domain/entity"

// AdjustmentRepository define el puerto de persistencia para ajustes.
// Los ajustes nacen ya validados, por eso no hay SetStatus.
type AdjustmentRepository interface {
	Create(adjustment *entity.Adjustment) error
	GetByID(id string) (*entity.Adjustment, error)
	List(limit, offset int) ([]*entity.Adjustment, error)
	Count() (int64, error)
}
