package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jortega-dev/almacen-api/internal/application/inventory"
	"github.com/jortega-dev/almacen-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockItemRepository,
	ledgerRepo repository.LedgerEntryRepository,
	receiptRepo repository.ReceiptRepository,
	deliveryRepo repository.DeliveryRepository,
	transferRepo repository.TransferRepository,
	adjustmentRepo repository.AdjustmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockItemRepository(tx)
	ledgerRepo := NewLedgerEntryRepository(tx)
	receiptRepo := NewReceiptRepository(tx)
	deliveryRepo := NewDeliveryRepository(tx)
	transferRepo := NewTransferRepository(tx)
	adjustmentRepo := NewAdjustmentRepository(tx)

	if err := fn(stockRepo, ledgerRepo, receiptRepo, deliveryRepo, transferRepo, adjustmentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
