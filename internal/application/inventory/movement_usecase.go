package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Acrobyux/cf-inventory-management-API/internal/application/dto"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/movement"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/repository"
)

// MovementUseCase orquesta el ciclo de vida de un movimiento (crear,
// actualizar, eliminar) contra el libro de saldos como una unidad atómica:
// el asiento y su efecto sobre los saldos se confirman o revierten juntos.
type MovementUseCase struct {
	txRunner      TxRunner
	movementRepo  repository.MovementRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:      txRunner,
		movementRepo:  movementRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create valida el movimiento, verifica que producto y bodega(s) existan y,
// en una transacción, aplica el efecto sobre los saldos y persiste el asiento.
// IN suma en warehouse_to; OUT resta de warehouse_from (falla con stock
// insuficiente); TRANSFER resta del origen y suma en el destino.
func (uc *MovementUseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	typ := entity.MovementType(strings.ToUpper(in.MovementType))
	if err := movement.Validate(typ, in.WarehouseFrom, in.WarehouseTo, in.Quantity); err != nil {
		return nil, err
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:              uuid.New().String(),
		Type:            typ,
		ProductID:       in.ProductID,
		WarehouseFromID: in.WarehouseFrom,
		WarehouseToID:   in.WarehouseTo,
		Quantity:        in.Quantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	movement.Normalize(mov)

	if err := uc.checkReferences(mov); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(
		movementRepo repository.MovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		ledger := NewLedger(inventoryRepo)
		if err := ledger.Apply(movement.Effects(mov)); err != nil {
			return err
		}
		return movementRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// Update edita un movimiento. Los campos ausentes conservan el valor
// almacenado. El asiento se bloquea, se revierte su efecto viejo y se aplica
// el nuevo como deltas coalescidos: una edición de solo cantidad ajusta el
// neto (nueva − vieja), y un cambio de bodegas en un TRANSFER restaura ambos
// saldos viejos antes de afectar los nuevos.
func (uc *MovementUseCase) Update(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	var resp *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		movementRepo repository.MovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		current, err := movementRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		updated := *current
		if in.MovementType != nil {
			updated.Type = entity.MovementType(strings.ToUpper(*in.MovementType))
		}
		if in.ProductID != nil {
			updated.ProductID = *in.ProductID
		}
		if in.Quantity != nil {
			updated.Quantity = *in.Quantity
		}
		if in.WarehouseFrom != nil {
			updated.WarehouseFromID = *in.WarehouseFrom
		}
		if in.WarehouseTo != nil {
			updated.WarehouseToID = *in.WarehouseTo
		}

		if err := movement.Validate(updated.Type, updated.WarehouseFromID, updated.WarehouseToID, updated.Quantity); err != nil {
			return err
		}
		movement.Normalize(&updated)
		if err := uc.checkReferences(&updated); err != nil {
			return err
		}
		updated.UpdatedAt = time.Now()

		ledger := NewLedger(inventoryRepo)
		if err := ledger.Apply(append(movement.Reversal(current), movement.Effects(&updated)...)); err != nil {
			return err
		}
		if err := movementRepo.Update(&updated); err != nil {
			return err
		}
		resp = toMovementResponse(&updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete revierte el efecto del movimiento sobre los saldos y elimina el
// asiento, en una transacción. Si el reverso dejaría un saldo negativo
// (el stock ya se consumió por otra vía) falla con stock insuficiente y el
// movimiento se conserva: eliminar nunca puede descuadrar un saldo.
func (uc *MovementUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		movementRepo repository.MovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		current, err := movementRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		ledger := NewLedger(inventoryRepo)
		if err := ledger.Apply(movement.Reversal(current)); err != nil {
			return err
		}
		return movementRepo.Delete(id)
	})
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (uc *MovementUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	mov, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, nil
	}
	return toMovementResponse(mov), nil
}

// List lista movimientos con paginación.
func (uc *MovementUseCase) List(limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// checkReferences verifica que el producto y las bodegas referenciadas existan.
func (uc *MovementUseCase) checkReferences(m *entity.Movement) error {
	product, err := uc.productRepo.GetByID(m.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	for _, warehouseID := range []string{m.WarehouseFromID, m.WarehouseToID} {
		if warehouseID == "" {
			continue
		}
		warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		MovementType:  string(m.Type),
		ProductID:     m.ProductID,
		Quantity:      m.Quantity,
		WarehouseFrom: m.WarehouseFromID,
		WarehouseTo:   m.WarehouseToID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
