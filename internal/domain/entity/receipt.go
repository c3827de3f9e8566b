package entity

import "time"

// ReceiptItem es una línea de recepción: producto y cantidad que ingresa.
type ReceiptItem struct {
	ProductID string
	Quantity  int64 // siempre >= 1
}

// Receipt representa una recepción de mercancía de un proveedor hacia una
// bodega. Nace en draft; al validarse incrementa stock y deja asientos en
// el kardex dentro de la misma transacción.
type Receipt struct {
	ID            string
	ReceiptNumber string // consecutivo legible, único (RCPT-...)
	Supplier      string
	WarehouseID   string
	Status        Status
	Items         []ReceiptItem
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
