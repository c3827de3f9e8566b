package repository

import "github.com/jortega-dev/almacen-api/internal/domain/entity"

// ReceiptRepository define el puerto de persistencia para recepciones.
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	// GetForUpdate bloquea la fila del documento durante la validación.
	GetForUpdate(id string) (*entity.Receipt, error)
	// SetStatus transiciona de from a to con chequeo optimista: devuelve
	// false si el documento ya no estaba en from.
	SetStatus(id string, from, to entity.Status) (bool, error)
	List(status entity.Status, limit, offset int) ([]*entity.Receipt, error)
	Count(status entity.Status) (int64, error)
}
