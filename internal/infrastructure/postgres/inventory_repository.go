package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
// La tabla tiene índice único sobre (product_id, warehouse_id) y un CHECK
// quantity >= 0 como respaldo del invariante que verifica el Ledger.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetByID obtiene un saldo por ID de fila.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventories WHERE id = $1`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// Get obtiene el saldo de un par (producto, bodega); nil si no hay fila.
func (r *InventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventories WHERE product_id = $1 AND warehouse_id = $2`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// EnsureRow materializa la fila del par con saldo 0 si no existe.
// Upsert idempotente: dos primeros toques concurrentes no duplican filas,
// ambos terminan serializados sobre la misma fila en GetForUpdate.
func (r *InventoryRepo) EnsureRow(productID, warehouseID string) error {
	query := `
		INSERT INTO inventories (id, product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, 0, now())
		ON CONFLICT (product_id, warehouse_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, uuid.New().String(), productID, warehouseID)
	if err != nil {
		return fmt.Errorf("ensure inventory row: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el saldo y bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventories WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Inventory{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &inv, nil
}

// UpdateQuantity fija el saldo del par. Solo el Ledger llama aquí, con la fila ya bloqueada.
func (r *InventoryRepo) UpdateQuantity(productID, warehouseID string, quantity int64) error {
	query := `
		UPDATE inventories SET quantity = $3, updated_at = now()
		WHERE product_id = $1 AND warehouse_id = $2`
	_, err := r.q.Exec(context.Background(), query, productID, warehouseID, quantity)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// List lista saldos con paginación.
func (r *InventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventories ORDER BY warehouse_id, product_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
