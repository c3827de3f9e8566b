package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega-dev/almacen-api/internal/application/dto"
	"github.com/jortega-dev/almacen-api/internal/domain"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
)

func TestReceipt_CreateDraft_NoTocaStock(t *testing.T) {
	f := newFixture()

	out, err := f.receipts.CreateDraft(dto.CreateReceiptRequest{
		Supplier:    "Distribuidora ACME",
		WarehouseID: whCentral,
		Items:       []dto.LineItemRequest{{ProductID: prodArroz, Quantity: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusDraft), out.Status)
	assert.Contains(t, out.ReceiptNumber, "RCPT-")

	assert.Equal(t, int64(0), f.quantity(prodArroz, whCentral),
		"el borrador no debe tener efecto sobre el stock")
	assert.Empty(t, f.store.ledger, "el borrador no debe escribir en el kardex")
}

func TestReceipt_CreateDraft_BodegaInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.receipts.CreateDraft(dto.CreateReceiptRequest{
		Supplier:    "Distribuidora ACME",
		WarehouseID: "99999999-9999-4999-8999-999999999999",
		Items:       []dto.LineItemRequest{{ProductID: prodArroz, Quantity: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceipt_Validate_IncrementaStockYEscribeKardex(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	draft, err := f.receipts.CreateDraft(dto.CreateReceiptRequest{
		Supplier:    "Distribuidora ACME",
		WarehouseID: whCentral,
		Items: []dto.LineItemRequest{
			{ProductID: prodArroz, Quantity: 100},
			{ProductID: prodAzuc, Quantity: 40},
		},
	})
	require.NoError(t, err)

	out, err := f.receipts.Validate(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusValidated), out.Status)

	assert.Equal(t, int64(100), f.quantity(prodArroz, whCentral))
	assert.Equal(t, int64(40), f.quantity(prodAzuc, whCentral))

	require.Len(t, f.store.ledger, 2, "un asiento por línea")
	first := f.store.ledger[0]
	assert.Equal(t, entity.LedgerKindReceipt, first.Kind)
	assert.Equal(t, draft.ID, first.ReferenceID)
	assert.Equal(t, prodArroz, first.ProductID)
	assert.Equal(t, int64(100), first.QuantityDelta)
	assert.Equal(t, int64(100), first.BalanceAfter)
	require.NotNil(t, first.ToWarehouseID)
	assert.Equal(t, whCentral, *first.ToWarehouseID)
	assert.Nil(t, first.FromWarehouseID)
}

func TestReceipt_Validate_DosVeces_RetornaYaProcesado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	draft, err := f.receipts.CreateDraft(dto.CreateReceiptRequest{
		Supplier:    "Distribuidora ACME",
		WarehouseID: whCentral,
		Items:       []dto.LineItemRequest{{ProductID: prodArroz, Quantity: 50}},
	})
	require.NoError(t, err)

	_, err = f.receipts.Validate(ctx, draft.ID)
	require.NoError(t, err)

	_, err = f.receipts.Validate(ctx, draft.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)

	assert.Equal(t, int64(50), f.quantity(prodArroz, whCentral),
		"la segunda validación no debe duplicar el stock")
	assert.Len(t, f.store.ledger, 1, "la segunda validación no debe duplicar asientos")
}

func TestReceipt_Cancel_LuegoValidate_RetornaYaProcesado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	draft, err := f.receipts.CreateDraft(dto.CreateReceiptRequest{
		Supplier:    "Distribuidora ACME",
		WarehouseID: whCentral,
		Items:       []dto.LineItemRequest{{ProductID: prodArroz, Quantity: 50}},
	})
	require.NoError(t, err)

	cancelled, err := f.receipts.Cancel(draft.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusCancelled), cancelled.Status)

	_, err = f.receipts.Validate(ctx, draft.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	assert.Equal(t, int64(0), f.quantity(prodArroz, whCentral))
}

func TestReceipt_Validate_Inexistente(t *testing.T) {
	f := newFixture()

	_, err := f.receipts.Validate(context.Background(), "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
