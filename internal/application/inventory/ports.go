package inventory

import (
	"context"

	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que el asiento del movimiento y el ajuste de saldos se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movementRepo repository.MovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
