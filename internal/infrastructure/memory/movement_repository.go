package memory

import (
	"sort"

	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria del puerto MovementRepository.
type MovementRepo struct {
	store *Store
}

// NewMovementRepository construye el adaptador de movimientos en memoria.
func NewMovementRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

// Create persiste un asiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.movements[movement.ID] = *movement
	return nil
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if m, ok := r.store.movements[id]; ok {
		copied := m
		return &copied, nil
	}
	return nil, nil
}

// GetForUpdate obtiene un movimiento; la exclusión la aporta el TxRunner.
func (r *MovementRepo) GetForUpdate(id string) (*entity.Movement, error) {
	return r.GetByID(id)
}

// Update actualiza un asiento existente.
func (r *MovementRepo) Update(movement *entity.Movement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.movements[movement.ID] = *movement
	return nil
}

// Delete elimina un asiento por ID.
func (r *MovementRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.movements, id)
	return nil
}

// List lista movimientos del más reciente al más antiguo con paginación.
func (r *MovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := make([]*entity.Movement, 0, len(r.store.movements))
	for _, m := range r.store.movements {
		copied := m
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}
