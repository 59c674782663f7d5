package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación en memoria del puerto InventoryRepository.
type InventoryRepo struct {
	store *Store
}

// NewInventoryRepository construye el adaptador de saldos en memoria.
func NewInventoryRepository(store *Store) *InventoryRepo {
	return &InventoryRepo{store: store}
}

// GetByID obtiene un saldo por ID de fila.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, inv := range r.store.inventories {
		if inv.ID == id {
			copied := inv
			return &copied, nil
		}
	}
	return nil, nil
}

// Get obtiene el saldo de un par (producto, bodega); nil si no hay fila.
func (r *InventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if inv, ok := r.store.inventories[pairKey{productID, warehouseID}]; ok {
		copied := inv
		return &copied, nil
	}
	return nil, nil
}

// EnsureRow materializa la fila del par con saldo 0 si no existe (idempotente).
func (r *InventoryRepo) EnsureRow(productID, warehouseID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := pairKey{productID, warehouseID}
	if _, ok := r.store.inventories[key]; !ok {
		r.store.inventories[key] = entity.Inventory{
			ID:          uuid.New().String(),
			ProductID:   productID,
			WarehouseID: warehouseID,
			UpdatedAt:   time.Now(),
		}
	}
	return nil
}

// GetForUpdate obtiene el saldo; la exclusión la aporta el TxRunner, que
// serializa las transacciones completas.
func (r *InventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	inv, err := r.Get(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return &entity.Inventory{ProductID: productID, WarehouseID: warehouseID}, nil
	}
	return inv, nil
}

// UpdateQuantity fija el saldo del par.
func (r *InventoryRepo) UpdateQuantity(productID, warehouseID string, quantity int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := pairKey{productID, warehouseID}
	inv := r.store.inventories[key]
	inv.ProductID = productID
	inv.WarehouseID = warehouseID
	inv.Quantity = quantity
	inv.UpdatedAt = time.Now()
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	r.store.inventories[key] = inv
	return nil
}

// List lista saldos ordenados por (bodega, producto) con paginación.
func (r *InventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := make([]*entity.Inventory, 0, len(r.store.inventories))
	for _, inv := range r.store.inventories {
		copied := inv
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].WarehouseID != all[j].WarehouseID {
			return all[i].WarehouseID < all[j].WarehouseID
		}
		return all[i].ProductID < all[j].ProductID
	})
	return paginate(all, limit, offset), nil
}

// paginate aplica limit/offset sobre una lista ya ordenada.
func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}
