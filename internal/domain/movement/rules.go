// Package movement contiene las reglas puras del libro de movimientos:
// validación de forma por tipo, efectos con signo sobre los saldos y su
// reverso. No toca persistencia; el caso de uso aplica los deltas dentro
// de una transacción.
package movement

import (
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"
)

// Validate verifica cantidad positiva y la forma del movimiento según su tipo:
//
//	IN:       warehouse_to requerido, warehouse_from vacío.
//	OUT:      warehouse_from requerido, warehouse_to vacío.
//	TRANSFER: ambos requeridos y distintos.
func Validate(t entity.MovementType, warehouseFromID, warehouseToID string, quantity int64) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	switch t {
	case entity.MovementTypeIn:
		if warehouseToID == "" {
			return &domain.ShapeError{Rule: "warehouse_to es requerido para movimientos IN"}
		}
		if warehouseFromID != "" {
			return &domain.ShapeError{Rule: "warehouse_from debe estar vacío para movimientos IN"}
		}
	case entity.MovementTypeOut:
		if warehouseFromID == "" {
			return &domain.ShapeError{Rule: "warehouse_from es requerido para movimientos OUT"}
		}
		if warehouseToID != "" {
			return &domain.ShapeError{Rule: "warehouse_to debe estar vacío para movimientos OUT"}
		}
	case entity.MovementTypeTransfer:
		if warehouseFromID == "" || warehouseToID == "" {
			return &domain.ShapeError{Rule: "warehouse_from y warehouse_to son requeridos para movimientos TRANSFER"}
		}
		if warehouseFromID == warehouseToID {
			return &domain.ShapeError{Rule: "las bodegas de un TRANSFER deben ser distintas"}
		}
	default:
		return &domain.ShapeError{Rule: "tipo de movimiento desconocido"}
	}
	return nil
}

// Normalize limpia la bodega que no aplica al tipo, para que una combinación
// inválida nunca llegue al almacenamiento aunque el request la incluya.
func Normalize(m *entity.Movement) {
	switch m.Type {
	case entity.MovementTypeIn:
		m.WarehouseFromID = ""
	case entity.MovementTypeOut:
		m.WarehouseToID = ""
	}
}
