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

func TestAdjustment_Create_AplicaConteoEnUnaOperacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	receiveStock(t, f, whCentral, dto.LineItemRequest{ProductID: prodArroz, Quantity: 100})
	entriesBefore := len(f.store.ledger)

	out, err := f.adjustments.Create(ctx, dto.CreateAdjustmentRequest{
		WarehouseID: whCentral,
		Reason:      "Conteo mensual",
		Items:       []dto.AdjustmentItemRequest{{ProductID: prodArroz, CountedQuantity: 92}},
	})
	require.NoError(t, err)
	assert.Contains(t, out.AdjustmentNumber, "ADJ-")
	assert.Equal(t, string(entity.StatusValidated), out.Status, "el ajuste nace validado, sin draft")

	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(100), out.Items[0].SystemQuantity)
	assert.Equal(t, int64(92), out.Items[0].CountedQuantity)
	assert.Equal(t, int64(-8), out.Items[0].Difference)

	assert.Equal(t, int64(92), f.quantity(prodArroz, whCentral))

	require.Len(t, f.store.ledger, entriesBefore+1)
	entry := f.store.ledger[len(f.store.ledger)-1]
	assert.Equal(t, entity.LedgerKindAdjustment, entry.Kind)
	assert.Equal(t, int64(-8), entry.QuantityDelta)
	assert.Equal(t, int64(92), entry.BalanceAfter)
	assert.Equal(t, "Conteo mensual", entry.Reason)
	require.NotNil(t, entry.FromWarehouseID, "diferencia negativa = salida de la bodega")
	assert.Equal(t, whCentral, *entry.FromWarehouseID)
	assert.Nil(t, entry.ToWarehouseID)
}

func TestAdjustment_Create_DiferenciaPositiva(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Sin existencia previa: el conteo crea la fila con la cantidad contada.
	out, err := f.adjustments.Create(ctx, dto.CreateAdjustmentRequest{
		WarehouseID: whNorte,
		Items:       []dto.AdjustmentItemRequest{{ProductID: prodAzuc, CountedQuantity: 15}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Conteo físico", out.Reason, "sin motivo explícito aplica el predeterminado")
	assert.Equal(t, int64(15), f.quantity(prodAzuc, whNorte))

	entry := f.store.ledger[len(f.store.ledger)-1]
	assert.Equal(t, int64(15), entry.QuantityDelta)
	require.NotNil(t, entry.ToWarehouseID, "diferencia positiva = entrada a la bodega")
	assert.Equal(t, whNorte, *entry.ToWarehouseID)
	assert.Nil(t, entry.FromWarehouseID)
}

func TestAdjustment_Create_DiferenciaCero_NoEscribeKardex(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	receiveStock(t, f, whCentral, dto.LineItemRequest{ProductID: prodArroz, Quantity: 100})
	entriesBefore := len(f.store.ledger)

	out, err := f.adjustments.Create(ctx, dto.CreateAdjustmentRequest{
		WarehouseID: whCentral,
		Items:       []dto.AdjustmentItemRequest{{ProductID: prodArroz, CountedQuantity: 100}},
	})
	require.NoError(t, err)

	// La línea queda documentada aunque no genere movimiento.
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(0), out.Items[0].Difference)
	assert.Len(t, f.store.ledger, entriesBefore, "diferencia cero no genera asiento")
	assert.Equal(t, int64(100), f.quantity(prodArroz, whCentral))
}

func TestAdjustment_Create_ConteoEnCero_CreaFilaDeExistencia(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Par nunca almacenado contado en cero: sin movimiento, pero la fila
	// de existencia debe materializarse para aparecer en los listados.
	_, err := f.adjustments.Create(ctx, dto.CreateAdjustmentRequest{
		WarehouseID: whNorte,
		Items:       []dto.AdjustmentItemRequest{{ProductID: prodArroz, CountedQuantity: 0}},
	})
	require.NoError(t, err)

	item, ok := f.store.stock[stockKey(prodArroz, whNorte)]
	require.True(t, ok, "el conteo debe crear la fila aunque la diferencia sea cero")
	assert.Equal(t, int64(0), item.Quantity)
	assert.Empty(t, f.store.ledger, "diferencia cero no genera asiento")
}

func TestAdjustment_Create_LineasMixtas(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	receiveStock(t, f, whCentral,
		dto.LineItemRequest{ProductID: prodArroz, Quantity: 100},
		dto.LineItemRequest{ProductID: prodAzuc, Quantity: 50},
	)
	entriesBefore := len(f.store.ledger)

	out, err := f.adjustments.Create(ctx, dto.CreateAdjustmentRequest{
		WarehouseID: whCentral,
		Items: []dto.AdjustmentItemRequest{
			{ProductID: prodArroz, CountedQuantity: 100}, // sin cambio
			{ProductID: prodAzuc, CountedQuantity: 47},   // faltante de 3
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Len(t, f.store.ledger, entriesBefore+1, "solo la línea con diferencia genera asiento")
	assert.Equal(t, int64(47), f.quantity(prodAzuc, whCentral))
}

func TestAdjustment_Create_BodegaInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.adjustments.Create(context.Background(), dto.CreateAdjustmentRequest{
		WarehouseID: "99999999-9999-4999-8999-999999999999",
		Items:       []dto.AdjustmentItemRequest{{ProductID: prodArroz, CountedQuantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.store.adjustments, "no debe persistir documento alguno")
}
