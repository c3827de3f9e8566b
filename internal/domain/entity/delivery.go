package entity

import "time"

// DeliveryItem es una línea de despacho: producto y cantidad que sale.
type DeliveryItem struct {
	ProductID string
	Quantity  int64 // siempre >= 1
}

// Delivery representa un despacho de mercancía desde una bodega hacia un
// cliente. Al validarse decrementa stock (verificando disponibilidad) y
// deja asientos en el kardex.
type Delivery struct {
	ID             string
	DeliveryNumber string // consecutivo legible, único (DLV-...)
	Customer       string
	WarehouseID    string
	Status         Status
	Items          []DeliveryItem
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
