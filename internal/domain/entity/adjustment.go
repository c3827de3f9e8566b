package entity

import "time"

// AdjustmentItem es una línea de ajuste por conteo físico: cantidad en
// sistema vs. cantidad contada, con la diferencia resultante.
type AdjustmentItem struct {
	ProductID       string
	SystemQuantity  int64 // lo que decía el sistema al momento del conteo
	CountedQuantity int64 // lo que se contó físicamente
	Difference      int64 // counted - system
}

// Adjustment representa un ajuste de inventario por conteo físico. A
// diferencia de los demás documentos no pasa por draft: se crea y aplica
// en una sola operación atómica, quedando directamente en validated.
type Adjustment struct {
	ID               string
	AdjustmentNumber string // consecutivo legible, único (ADJ-...)
	WarehouseID      string
	Status           Status
	Reason           string
	Items            []AdjustmentItem
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
