package entity

import "time"

// Warehouse representa una bodega o sucursal donde se almacena inventario.
type Warehouse struct {
	ID        string
	Name      string
	Code      string // código único, siempre en mayúsculas
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
