package movement

import (
	"sort"

	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"
)

// Adjustment es un delta con signo sobre el saldo de un par (producto, bodega).
type Adjustment struct {
	ProductID   string
	WarehouseID string
	Delta       int64
}

// Effects devuelve los deltas que un movimiento aplica al confirmarse.
func Effects(m *entity.Movement) []Adjustment {
	switch m.Type {
	case entity.MovementTypeIn:
		return []Adjustment{{ProductID: m.ProductID, WarehouseID: m.WarehouseToID, Delta: m.Quantity}}
	case entity.MovementTypeOut:
		return []Adjustment{{ProductID: m.ProductID, WarehouseID: m.WarehouseFromID, Delta: -m.Quantity}}
	case entity.MovementTypeTransfer:
		return []Adjustment{
			{ProductID: m.ProductID, WarehouseID: m.WarehouseFromID, Delta: -m.Quantity},
			{ProductID: m.ProductID, WarehouseID: m.WarehouseToID, Delta: m.Quantity},
		}
	}
	return nil
}

// Reversal devuelve los deltas inversos de un movimiento: se aplican al
// eliminarlo, o antes de aplicar la versión nueva en una edición.
func Reversal(m *entity.Movement) []Adjustment {
	effects := Effects(m)
	for i := range effects {
		effects[i].Delta = -effects[i].Delta
	}
	return effects
}

// Coalesce suma los deltas por clave (producto, bodega), descarta los que
// quedan en cero y ordena por (bodega, producto). Así una edición que revierte
// el efecto viejo y aplica el nuevo toca cada saldo una sola vez con el delta
// neto, y los bloqueos de fila se adquieren siempre en el mismo orden.
func Coalesce(adjs []Adjustment) []Adjustment {
	type key struct{ productID, warehouseID string }
	totals := make(map[key]int64, len(adjs))
	for _, a := range adjs {
		totals[key{a.ProductID, a.WarehouseID}] += a.Delta
	}
	out := make([]Adjustment, 0, len(totals))
	for k, delta := range totals {
		if delta == 0 {
			continue
		}
		out = append(out, Adjustment{ProductID: k.productID, WarehouseID: k.warehouseID, Delta: delta})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WarehouseID != out[j].WarehouseID {
			return out[i].WarehouseID < out[j].WarehouseID
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out
}
