package entity

import "time"

// Inventory representa el saldo actual de un producto en una bodega.
// Existe a lo más una fila por par (producto, bodega); si no existe, el saldo efectivo es 0.
// Solo el motor de movimientos la muta; para los clientes HTTP es de solo lectura.
type Inventory struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64 // nunca negativa tras una operación confirmada
	UpdatedAt   time.Time
}
