package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un asiento del libro de movimientos.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, movement_type, product_id, warehouse_from_id, warehouse_to_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, string(movement.Type), movement.ProductID,
		nullIfEmpty(movement.WarehouseFromID), nullIfEmpty(movement.WarehouseToID),
		movement.Quantity, movement.CreatedAt, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT id, movement_type, product_id, warehouse_from_id, warehouse_to_id, quantity, created_at, updated_at
		FROM movements WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene un movimiento y bloquea el asiento (SELECT FOR UPDATE)
// para serializar ediciones y eliminaciones concurrentes del mismo movimiento.
func (r *MovementRepo) GetForUpdate(id string) (*entity.Movement, error) {
	query := `
		SELECT id, movement_type, product_id, warehouse_from_id, warehouse_to_id, quantity, created_at, updated_at
		FROM movements WHERE id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update actualiza un asiento existente.
func (r *MovementRepo) Update(movement *entity.Movement) error {
	query := `
		UPDATE movements SET movement_type = $2, product_id = $3, warehouse_from_id = $4, warehouse_to_id = $5, quantity = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, string(movement.Type), movement.ProductID,
		nullIfEmpty(movement.WarehouseFromID), nullIfEmpty(movement.WarehouseToID),
		movement.Quantity, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// Delete elimina un asiento por ID.
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// List lista movimientos con paginación, del más reciente al más antiguo.
func (r *MovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, movement_type, product_id, warehouse_from_id, warehouse_to_id, quantity, created_at, updated_at
		FROM movements ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var typ string
		var from, to *string
		if err := rows.Scan(&m.ID, &typ, &m.ProductID, &from, &to, &m.Quantity, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Type = entity.MovementType(typ)
		if from != nil {
			m.WarehouseFromID = *from
		}
		if to != nil {
			m.WarehouseToID = *to
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *MovementRepo) scanOne(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var typ string
	var from, to *string
	err := row.Scan(&m.ID, &typ, &m.ProductID, &from, &to, &m.Quantity, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	m.Type = entity.MovementType(typ)
	if from != nil {
		m.WarehouseFromID = *from
	}
	if to != nil {
		m.WarehouseToID = *to
	}
	return &m, nil
}
