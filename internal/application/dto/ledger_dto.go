package dto

import "time"

// LedgerEntryResponse asiento del kardex en respuestas.
type LedgerEntryResponse struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	ReferenceID     string    `json:"reference_id"`
	ReferenceKind   string    `json:"reference_kind"`
	ProductID       string    `json:"product_id"`
	FromWarehouseID *string   `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   *string   `json:"to_warehouse_id,omitempty"`
	QuantityDelta   int64     `json:"quantity_delta"`
	BalanceAfter    int64     `json:"balance_after"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// LedgerListResponse listado paginado del kardex.
type LedgerListResponse struct {
	Items []LedgerEntryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
