package dto

import "time"

// CreateMovementRequest body para POST /api/v1/movements.
// warehouse_from y warehouse_to son obligatorios u opcionales según movement_type.
type CreateMovementRequest struct {
	MovementType  string `json:"movement_type"`
	ProductID     string `json:"product"`
	Quantity      int64  `json:"quantity"`
	WarehouseFrom string `json:"warehouse_from,omitempty"`
	WarehouseTo   string `json:"warehouse_to,omitempty"`
}

// UpdateMovementRequest body para PUT /api/v1/movements/{id}. Campos ausentes
// conservan el valor almacenado; enviar "" en una bodega la limpia.
type UpdateMovementRequest struct {
	MovementType  *string `json:"movement_type"`
	ProductID     *string `json:"product"`
	Quantity      *int64  `json:"quantity"`
	WarehouseFrom *string `json:"warehouse_from"`
	WarehouseTo   *string `json:"warehouse_to"`
}

// MovementResponse salida de un asiento del libro de movimientos.
type MovementResponse struct {
	ID            string    `json:"id"`
	MovementType  string    `json:"movement_type"`
	ProductID     string    `json:"product"`
	Quantity      int64     `json:"quantity"`
	WarehouseFrom string    `json:"warehouse_from,omitempty"`
	WarehouseTo   string    `json:"warehouse_to,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
