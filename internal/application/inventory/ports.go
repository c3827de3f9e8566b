package inventory

import (
	"context"

	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es el alcance atómico de los validadores:
// mutaciones de stock, asientos del kardex y cambio de estado del documento
// se confirman juntos o no se confirma ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		ledgerRepo repository.LedgerEntryRepository,
		receiptRepo repository.ReceiptRepository,
		deliveryRepo repository.DeliveryRepository,
		transferRepo repository.TransferRepository,
		adjustmentRepo repository.AdjustmentRepository,
	) error) error
}
