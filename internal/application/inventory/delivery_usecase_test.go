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

// receiveStock valida una recepción para dejar existencia disponible.
func receiveStock(t *testing.T, f *fixture, warehouseID string, items ...dto.LineItemRequest) {
	t.Helper()
	draft, err := f.receipts.CreateDraft(dto.CreateReceiptRequest{
		Supplier:    "Distribuidora ACME",
		WarehouseID: warehouseID,
		Items:       items,
	})
	require.NoError(t, err)
	_, err = f.receipts.Validate(context.Background(), draft.ID)
	require.NoError(t, err)
}

func TestDelivery_Validate_DescuentaStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	receiveStock(t, f, whCentral, dto.LineItemRequest{ProductID: prodArroz, Quantity: 100})

	draft, err := f.deliveries.CreateDraft(dto.CreateDeliveryRequest{
		Customer:    "Tienda El Sol",
		WarehouseID: whCentral,
		Items:       []dto.LineItemRequest{{ProductID: prodArroz, Quantity: 30}},
	})
	require.NoError(t, err)
	assert.Contains(t, draft.DeliveryNumber, "DLV-")

	out, err := f.deliveries.Validate(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusValidated), out.Status)
	assert.Equal(t, int64(70), f.quantity(prodArroz, whCentral))

	// El asiento del despacho registra salida: delta negativo desde la bodega.
	entry := f.store.ledger[len(f.store.ledger)-1]
	assert.Equal(t, entity.LedgerKindDelivery, entry.Kind)
	assert.Equal(t, int64(-30), entry.QuantityDelta)
	assert.Equal(t, int64(70), entry.BalanceAfter)
	require.NotNil(t, entry.FromWarehouseID)
	assert.Equal(t, whCentral, *entry.FromWarehouseID)
	assert.Nil(t, entry.ToWarehouseID)
}

func TestDelivery_Validate_StockInsuficiente_RevierteTodo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	receiveStock(t, f, whCentral,
		dto.LineItemRequest{ProductID: prodArroz, Quantity: 100},
		dto.LineItemRequest{ProductID: prodAzuc, Quantity: 5},
	)
	entriesBefore := len(f.store.ledger)

	// La primera línea alcanzaría; la segunda no. Nada debe persistir.
	draft, err := f.deliveries.CreateDraft(dto.CreateDeliveryRequest{
		Customer:    "Tienda El Sol",
		WarehouseID: whCentral,
		Items: []dto.LineItemRequest{
			{ProductID: prodArroz, Quantity: 10},
			{ProductID: prodAzuc, Quantity: 50},
		},
	})
	require.NoError(t, err)

	_, err = f.deliveries.Validate(ctx, draft.ID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "disponible 5, requerido 50")

	assert.Equal(t, int64(100), f.quantity(prodArroz, whCentral),
		"el decremento de la primera línea debe revertirse")
	assert.Equal(t, int64(5), f.quantity(prodAzuc, whCentral))
	assert.Len(t, f.store.ledger, entriesBefore, "ningún asiento parcial debe persistir")

	got, err := f.deliveries.GetByID(draft.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusDraft), got.Status,
		"el documento debe seguir en draft y poder reintentarse")
}

func TestDelivery_FlujoRecepcionDespacho(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Recepción de 100, despacho de 30: quedan 70 disponibles.
	receiveStock(t, f, whCentral, dto.LineItemRequest{ProductID: prodArroz, Quantity: 100})

	d1, err := f.deliveries.CreateDraft(dto.CreateDeliveryRequest{
		Customer:    "Tienda El Sol",
		WarehouseID: whCentral,
		Items:       []dto.LineItemRequest{{ProductID: prodArroz, Quantity: 30}},
	})
	require.NoError(t, err)
	_, err = f.deliveries.Validate(ctx, d1.ID)
	require.NoError(t, err)

	// Despachar 1000 contra 70 disponibles debe rechazarse con el saldo exacto.
	d2, err := f.deliveries.CreateDraft(dto.CreateDeliveryRequest{
		Customer:    "Tienda La Luna",
		WarehouseID: whCentral,
		Items:       []dto.LineItemRequest{{ProductID: prodArroz, Quantity: 1000}},
	})
	require.NoError(t, err)

	_, err = f.deliveries.Validate(ctx, d2.ID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "disponible 70, requerido 1000")
	assert.Equal(t, int64(70), f.quantity(prodArroz, whCentral))
}

func TestDelivery_Cancel_EvitaValidacionPosterior(t *testing.T) {
	f := newFixture()
	receiveStock(t, f, whCentral, dto.LineItemRequest{ProductID: prodArroz, Quantity: 100})

	draft, err := f.deliveries.CreateDraft(dto.CreateDeliveryRequest{
		Customer:    "Tienda El Sol",
		WarehouseID: whCentral,
		Items:       []dto.LineItemRequest{{ProductID: prodArroz, Quantity: 10}},
	})
	require.NoError(t, err)

	_, err = f.deliveries.Cancel(draft.ID)
	require.NoError(t, err)

	_, err = f.deliveries.Validate(context.Background(), draft.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	assert.Equal(t, int64(100), f.quantity(prodArroz, whCentral))
}
