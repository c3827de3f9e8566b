package entity

import "time"

// TransferItem es una línea de traslado entre bodegas.
type TransferItem struct {
	ProductID string
	Quantity  int64 // siempre >= 1
}

// Transfer representa un traslado de mercancía entre dos bodegas. Al
// validarse descuenta primero en origen y luego acredita en destino: el
// destino nunca recibe stock si el débito en origen falló.
type Transfer struct {
	ID                     string
	TransferNumber         string // consecutivo legible, único (TRF-...)
	SourceWarehouseID      string
	DestinationWarehouseID string
	Status                 Status
	Items                  []TransferItem
	Notes                  string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
