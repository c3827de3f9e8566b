package entity

import "time"

// Tipos de asiento del kardex (libro de inventario).
const (
	LedgerKindReceipt    = "receipt"
	LedgerKindDelivery   = "delivery"
	LedgerKindTransfer   = "transfer"
	LedgerKindAdjustment = "adjustment"
)

// Documento que originó un asiento del kardex.
const (
	ReferenceKindReceipt    = "Receipt"
	ReferenceKindDelivery   = "Delivery"
	ReferenceKindTransfer   = "Transfer"
	ReferenceKindAdjustment = "Adjustment"
)

// LedgerEntry es un asiento inmutable del kardex: registra un movimiento
// físico de stock y el documento que lo causó. Solo se inserta, nunca se
// actualiza ni se elimina.
//
// Convención de signos en QuantityDelta: positivo = entrada de stock,
// negativo = salida. Para traslados se registra un único asiento combinado
// con ambas bodegas, delta positivo (magnitud del traslado) y BalanceAfter
// igual al saldo resultante en la bodega destino.
type LedgerEntry struct {
	ID              string
	Kind            string // receipt, delivery, transfer, adjustment
	ReferenceID     string // ID del documento origen
	ReferenceKind   string // Receipt, Delivery, Transfer, Adjustment
	ProductID       string
	FromWarehouseID *string // poblado cuando sale stock de una bodega
	ToWarehouseID   *string // poblado cuando entra stock a una bodega
	QuantityDelta   int64
	BalanceAfter    int64 // saldo en la ubicación afectada tras el movimiento
	Reason          string
	CreatedAt       time.Time
}
