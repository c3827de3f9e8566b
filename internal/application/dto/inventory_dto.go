package dto

import "time"

// LineItemRequest línea de documento (recepción, despacho o traslado).
type LineItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// CreateReceiptRequest body para POST /api/receipts (borrador).
type CreateReceiptRequest struct {
	Supplier    string            `json:"supplier" validate:"required"`
	WarehouseID string            `json:"warehouse_id" validate:"required,uuid4"`
	Items       []LineItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes       string            `json:"notes"`
}

// CreateDeliveryRequest body para POST /api/deliveries (borrador).
type CreateDeliveryRequest struct {
	Customer    string            `json:"customer" validate:"required"`
	WarehouseID string            `json:"warehouse_id" validate:"required,uuid4"`
	Items       []LineItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes       string            `json:"notes"`
}

// CreateTransferRequest body para POST /api/transfers (borrador).
type CreateTransferRequest struct {
	SourceWarehouseID      string            `json:"source_warehouse_id" validate:"required,uuid4"`
	DestinationWarehouseID string            `json:"destination_warehouse_id" validate:"required,uuid4,nefield=SourceWarehouseID"`
	Items                  []LineItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes                  string            `json:"notes"`
}

// AdjustmentItemRequest línea de conteo físico.
type AdjustmentItemRequest struct {
	ProductID       string `json:"product_id" validate:"required,uuid4"`
	CountedQuantity int64  `json:"counted_quantity" validate:"min=0"`
}

// CreateAdjustmentRequest body para POST /api/adjustments. A diferencia de
// los demás documentos el ajuste se crea y aplica en la misma llamada.
type CreateAdjustmentRequest struct {
	WarehouseID string                  `json:"warehouse_id" validate:"required,uuid4"`
	Reason      string                  `json:"reason"`
	Items       []AdjustmentItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes       string                  `json:"notes"`
}

// LineItemResponse línea de documento en respuestas.
type LineItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// ReceiptResponse representación de una recepción.
type ReceiptResponse struct {
	ID            string             `json:"id"`
	ReceiptNumber string             `json:"receipt_number"`
	Supplier      string             `json:"supplier"`
	WarehouseID   string             `json:"warehouse_id"`
	Status        string             `json:"status"`
	Items         []LineItemResponse `json:"items"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// DeliveryResponse representación de un despacho.
type DeliveryResponse struct {
	ID             string             `json:"id"`
	DeliveryNumber string             `json:"delivery_number"`
	Customer       string             `json:"customer"`
	WarehouseID    string             `json:"warehouse_id"`
	Status         string             `json:"status"`
	Items          []LineItemResponse `json:"items"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// TransferResponse representación de un traslado.
type TransferResponse struct {
	ID                     string             `json:"id"`
	TransferNumber         string             `json:"transfer_number"`
	SourceWarehouseID      string             `json:"source_warehouse_id"`
	DestinationWarehouseID string             `json:"destination_warehouse_id"`
	Status                 string             `json:"status"`
	Items                  []LineItemResponse `json:"items"`
	Notes                  string             `json:"notes,omitempty"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

// AdjustmentItemResponse línea de ajuste en respuestas.
type AdjustmentItemResponse struct {
	ProductID       string `json:"product_id"`
	SystemQuantity  int64  `json:"system_quantity"`
	CountedQuantity int64  `json:"counted_quantity"`
	Difference      int64  `json:"difference"`
}

// AdjustmentResponse representación de un ajuste.
type AdjustmentResponse struct {
	ID               string                   `json:"id"`
	AdjustmentNumber string                   `json:"adjustment_number"`
	WarehouseID      string                   `json:"warehouse_id"`
	Status           string                   `json:"status"`
	Reason           string                   `json:"reason,omitempty"`
	Items            []AdjustmentItemResponse `json:"items"`
	Notes            string                   `json:"notes,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// ReceiptListResponse listado paginado de recepciones.
type ReceiptListResponse struct {
	Items []ReceiptResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// DeliveryListResponse listado paginado de despachos.
type DeliveryListResponse struct {
	Items []DeliveryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// TransferListResponse listado paginado de traslados.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// AdjustmentListResponse listado paginado de ajustes.
type AdjustmentListResponse struct {
	Items []AdjustmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
