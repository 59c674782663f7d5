package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrInvalidMovementShape = errors.New("combinación de bodegas inválida para el tipo de movimiento")
	ErrInvalidQuantity      = errors.New("la cantidad debe ser un entero positivo")
	ErrInsufficientStock    = errors.New("stock insuficiente")
)

// ShapeError indica qué regla de forma violó un movimiento (warehouse_from/warehouse_to según el tipo).
type ShapeError struct {
	Rule string
}

func (e *ShapeError) Error() string { return e.Rule }

// Is permite comparar con errors.Is(err, ErrInvalidMovementShape).
func (e *ShapeError) Is(target error) bool { return target == ErrInvalidMovementShape }

// InsufficientStockError indica que un ajuste dejaría un saldo negativo.
// Incluye lo solicitado y lo disponible para informar al cliente.
type InsufficientStockError struct {
	ProductID   string
	WarehouseID string
	Requested   int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %s en la bodega %s: solicitado %d, disponible %d",
		e.ProductID, e.WarehouseID, e.Requested, e.Available)
}

// Is permite comparar con errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }
