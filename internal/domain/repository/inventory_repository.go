package repository

import "github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"

// InventoryRepository define el puerto para consultar y mutar saldos por (producto, bodega).
// Las mutaciones solo ocurren dentro de la transacción del motor de movimientos.
type InventoryRepository interface {
	GetByID(id string) (*entity.Inventory, error)
	// Get devuelve nil si no existe fila para el par; no crea nada.
	Get(productID, warehouseID string) (*entity.Inventory, error)
	// EnsureRow materializa la fila del par con saldo 0 de forma idempotente
	// (upsert), para que el primer toque concurrente no duplique filas.
	EnsureRow(productID, warehouseID string) error
	// GetForUpdate obtiene la fila y la bloquea hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID string) (*entity.Inventory, error)
	UpdateQuantity(productID, warehouseID string, quantity int64) error
	List(limit, offset int) ([]*entity.Inventory, error)
}
