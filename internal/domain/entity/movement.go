package entity

import "time"

// MovementType tipo de movimiento de inventario. Todo despacho se hace
// sobre esta constante tipada, nunca sobre el string crudo del request.
type MovementType string

const (
	MovementTypeIn       MovementType = "IN"       // entrada a una bodega
	MovementTypeOut      MovementType = "OUT"      // salida de una bodega
	MovementTypeTransfer MovementType = "TRANSFER" // traslado entre bodegas
)

// Valid indica si el tipo es uno de los conocidos.
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeTransfer:
		return true
	}
	return false
}

// Movement representa un asiento del libro de movimientos.
// Ciclo de vida: creado → (actualizado)* → eliminado; cada transición se
// confirma junto con su efecto sobre el saldo, nunca por separado.
type Movement struct {
	ID              string
	Type            MovementType
	ProductID       string
	WarehouseFromID string // vacío para IN
	WarehouseToID   string // vacío para OUT
	Quantity        int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
