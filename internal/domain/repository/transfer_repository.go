package repository

import "github.com/jortega-dev/almacen-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para traslados.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	GetForUpdate(id string) (*entity.Transfer, error)
	SetStatus(id string, from, to entity.Status) (bool, error)
	List(status entity.Status, limit, offset int) ([]*entity.Transfer, error)
	Count(status entity.Status) (int64, error)
}
