package repository

import "github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(limit, offset int) ([]*entity.Category, error)
	// Delete elimina la categoría; los productos que la referencian quedan sin categoría (SET NULL).
	Delete(id string) error
}
