package memory

import (
	"sort"

	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria del puerto CategoryRepository.
type CategoryRepo struct {
	store *Store
}

// NewCategoryRepository construye el adaptador de categorías en memoria.
func NewCategoryRepository(store *Store) *CategoryRepo {
	return &CategoryRepo{store: store}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.categories[category.ID] = *category
	return nil
}

// GetByID obtiene una categoría por ID; nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if c, ok := r.store.categories[id]; ok {
		copied := c
		return &copied, nil
	}
	return nil, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.categories[category.ID] = *category
	return nil
}

// List lista categorías con paginación.
func (r *CategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := make([]*entity.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		copied := c
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

// Delete elimina la categoría y desliga los productos que la referencian
// (equivalente al ON DELETE SET NULL del esquema PostgreSQL).
func (r *CategoryRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.categories, id)
	for pid, p := range r.store.products {
		if p.CategoryID == id {
			p.CategoryID = ""
			r.store.products[pid] = p
		}
	}
	return nil
}
