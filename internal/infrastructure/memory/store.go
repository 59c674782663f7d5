// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Respalda las pruebas del motor de movimientos sin PostgreSQL:
// el TxRunner serializa transacciones con un mutex (equivalente al bloqueo
// de fila) y restaura un snapshot cuando el callback falla (rollback).
package memory

import (
	"sync"

	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"
)

type pairKey struct {
	productID   string
	warehouseID string
}

// Store contiene el estado compartido por todos los repositorios en memoria.
type Store struct {
	mu   sync.Mutex // protege los mapas en operaciones individuales
	txMu sync.Mutex // serializa transacciones completas (ver TxRunner)

	warehouses  map[string]entity.Warehouse
	categories  map[string]entity.Category
	products    map[string]entity.Product
	inventories map[pairKey]entity.Inventory
	movements   map[string]entity.Movement
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		warehouses:  make(map[string]entity.Warehouse),
		categories:  make(map[string]entity.Category),
		products:    make(map[string]entity.Product),
		inventories: make(map[pairKey]entity.Inventory),
		movements:   make(map[string]entity.Movement),
	}
}

// snapshot copia el estado mutado por el motor de movimientos (saldos y asientos).
type snapshot struct {
	inventories map[pairKey]entity.Inventory
	movements   map[string]entity.Movement
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{
		inventories: make(map[pairKey]entity.Inventory, len(s.inventories)),
		movements:   make(map[string]entity.Movement, len(s.movements)),
	}
	for k, v := range s.inventories {
		snap.inventories[k] = v
	}
	for k, v := range s.movements {
		snap.movements[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventories = snap.inventories
	s.movements = snap.movements
}
