package dto

import "time"

// InventoryResponse salida de un saldo. Proyección de solo lectura:
// los saldos se derivan de los movimientos, nunca se editan directo.
type InventoryResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product"`
	WarehouseID string    `json:"warehouse"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventoryListResponse lista paginada de saldos.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
