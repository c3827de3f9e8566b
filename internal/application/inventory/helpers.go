package inventory

import (
	"errors"
	"fmt"

	"github.com/jortega-dev/almacen-api/internal/domain"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

// checkWarehouse verifica que la bodega exista antes de crear un borrador.
func checkWarehouse(repo repository.WarehouseRepository, id string) error {
	wh, err := repo.GetByID(id)
	if err != nil {
		return err
	}
	if wh == nil {
		return fmt.Errorf("%w: bodega %s", domain.ErrNotFound, id)
	}
	return nil
}

// checkProduct verifica que el producto exista antes de crear un borrador.
func checkProduct(repo repository.ProductRepository, id string) error {
	p, err := repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return nil
}

// failureCause clasifica un error de validación para la etiqueta de métrica.
func failureCause(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrAlreadyProcessed):
		return "already_processed"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "infrastructure"
	}
}
