package entity

import "time"

// Category representa una categoría a la que puede pertenecer un producto.
type Category struct {
	ID          string
	Name        string
	Description string
	Status      string // ACTIVE, INACTIVE
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
