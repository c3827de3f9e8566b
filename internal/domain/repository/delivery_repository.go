package repository

import "github.com/jortega-dev/almacen-api/internal/domain/entity"

// DeliveryRepository define el puerto de persistencia para despachos.
type DeliveryRepository interface {
	Create(delivery *entity.Delivery) error
	GetByID(id string) (*entity.Delivery, error)
	GetForUpdate(id string) (*entity.Delivery, error)
	SetStatus(id string, from, to entity.Status) (bool, error)
	List(status entity.Status, limit, offset int) ([]*entity.Delivery, error)
	Count(status entity.Status) (int64, error)
}
