package usecase

import (
	"github.com/Acrobyux/cf-inventory-management-API/internal/application/dto"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/repository"
)

// InventoryUseCase proyección de solo lectura de los saldos. Los saldos son
// estado derivado del libro de movimientos; no existe caso de uso de escritura.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// GetByID obtiene un saldo por ID; nil si no existe.
func (uc *InventoryUseCase) GetByID(id string) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return toInventoryResponse(inv), nil
}

// List lista saldos con paginación.
func (uc *InventoryUseCase) List(limit, offset int) (*dto.InventoryListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInventoryResponse(inv))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:          inv.ID,
		ProductID:   inv.ProductID,
		WarehouseID: inv.WarehouseID,
		Quantity:    inv.Quantity,
		UpdatedAt:   inv.UpdatedAt,
	}
}
