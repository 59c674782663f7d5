package repository

import "github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"

// MovementRepository define el puerto de persistencia para los asientos del libro de movimientos.
// Create, Update y Delete participan de la misma transacción que el ajuste de saldos.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// GetForUpdate bloquea el asiento para serializar ediciones concurrentes del mismo movimiento.
	GetForUpdate(id string) (*entity.Movement, error)
	Update(movement *entity.Movement) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Movement, error)
}
