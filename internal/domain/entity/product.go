package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto almacenable en bodegas.
// CategoryID es opcional; al eliminar la categoría queda vacío (SET NULL en BD).
type Product struct {
	ID          string
	Name        string
	Description string
	CategoryID  string // vacío si no tiene categoría
	Status      string // ACTIVE, INACTIVE
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
