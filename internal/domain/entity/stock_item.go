package entity

import "time"

// StockItem representa la existencia actual de un producto en una bodega.
// Hay exactamente una fila por par (producto, bodega); se crea de forma
// perezosa en la primera operación que afecta ese par y nunca se elimina.
//
// Invariante: Quantity >= 0 siempre. Toda escritura pasa por el motor de
// stock (application/stock); ningún otro componente muta estas filas.
type StockItem struct {
	ProductID   string
	WarehouseID string
	Quantity    int64 // existencia física
	Reserved    int64 // apartado para pedidos; ningún flujo del núcleo lo muta
	UpdatedAt   time.Time
}

// Available devuelve la cantidad elegible para despacho (física menos reservada).
func (s *StockItem) Available() int64 {
	return s.Quantity - s.Reserved
}
