package inventory

import (
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/movement"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/repository"
)

// Ledger es el único punto por donde cambian los saldos. Se construye sobre
// un InventoryRepository atado a la transacción en curso; Adjust es la
// operación de lectura-modificación-escritura que verifica el invariante de
// saldo no negativo bajo bloqueo de fila.
type Ledger struct {
	inventories repository.InventoryRepository
}

// NewLedger construye el libro de saldos sobre el repositorio dado.
func NewLedger(inventories repository.InventoryRepository) *Ledger {
	return &Ledger{inventories: inventories}
}

// Quantity devuelve el saldo actual del par (producto, bodega); 0 si no hay fila. No crea nada.
func (l *Ledger) Quantity(productID, warehouseID string) (int64, error) {
	inv, err := l.inventories.Get(productID, warehouseID)
	if err != nil {
		return 0, err
	}
	if inv == nil {
		return 0, nil
	}
	return inv.Quantity, nil
}

// Adjust materializa la fila si no existe (upsert idempotente), la bloquea,
// y aplica el delta. Si el saldo quedara negativo falla con
// InsufficientStockError y no escribe nada; devuelve el saldo resultante.
func (l *Ledger) Adjust(productID, warehouseID string, delta int64) (int64, error) {
	if err := l.inventories.EnsureRow(productID, warehouseID); err != nil {
		return 0, err
	}
	inv, err := l.inventories.GetForUpdate(productID, warehouseID)
	if err != nil {
		return 0, err
	}
	newQty := inv.Quantity + delta
	if newQty < 0 {
		return 0, &domain.InsufficientStockError{
			ProductID:   productID,
			WarehouseID: warehouseID,
			Requested:   -delta,
			Available:   inv.Quantity,
		}
	}
	if err := l.inventories.UpdateQuantity(productID, warehouseID, newQty); err != nil {
		return 0, err
	}
	return newQty, nil
}

// Apply coalesce los deltas por clave y los ajusta en orden (bodega, producto),
// de modo que dos traslados opuestos concurrentes no puedan abrazarse en deadlock.
func (l *Ledger) Apply(adjs []movement.Adjustment) error {
	for _, a := range movement.Coalesce(adjs) {
		if _, err := l.Adjust(a.ProductID, a.WarehouseID, a.Delta); err != nil {
			return err
		}
	}
	return nil
}
