package memory

import (
	"context"

	"github.com/Acrobyux/cf-inventory-management-API/internal/application/inventory"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner emula la transacción de BD: txMu serializa las transacciones
// concurrentes (como lo haría SELECT FOR UPDATE sobre las mismas filas) y el
// snapshot restaurado en caso de error hace las veces de rollback.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén dado.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos sobre el almacén; si fn falla, revierte saldos y asientos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movementRepo repository.MovementRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	snap := r.store.snapshot()
	if err := fn(NewMovementRepository(r.store), NewInventoryRepository(r.store)); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
