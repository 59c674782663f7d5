package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Acrobyux/cf-inventory-management-API/internal/application/dto"
	"github.com/Acrobyux/cf-inventory-management-API/internal/application/inventory"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"
	"github.com/Acrobyux/cf-inventory-management-API/internal/infrastructure/memory"
)

const (
	productID  = "p-1"
	warehouse1 = "w-1"
	warehouse2 = "w-2"
	warehouse3 = "w-3"
)

func newTestUseCase(t *testing.T) (*inventory.MovementUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	now := time.Now()

	productRepo := memory.NewProductRepository(store)
	require.NoError(t, productRepo.Create(&entity.Product{
		ID: productID, Name: "Tornillo 3/8", Status: entity.StatusActive,
		CreatedAt: now, UpdatedAt: now,
	}))

	warehouseRepo := memory.NewWarehouseRepository(store)
	for _, id := range []string{warehouse1, warehouse2, warehouse3} {
		require.NoError(t, warehouseRepo.Create(&entity.Warehouse{
			ID: id, Name: "Bodega " + id, Status: entity.StatusActive,
			CreatedAt: now, UpdatedAt: now,
		}))
	}

	uc := inventory.NewMovementUseCase(
		memory.NewTxRunner(store),
		memory.NewMovementRepository(store),
		productRepo,
		warehouseRepo,
	)
	return uc, store
}

func balance(t *testing.T, store *memory.Store, warehouseID string) int64 {
	t.Helper()
	inv, err := memory.NewInventoryRepository(store).Get(productID, warehouseID)
	require.NoError(t, err)
	if inv == nil {
		return 0
	}
	return inv.Quantity
}

func strPtr(s string) *string { return &s }
func i64Ptr(n int64) *int64   { return &n }

func TestCreate_EntradaTrasladoYSalidaInsuficiente(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: productID, Quantity: 10, WarehouseTo: warehouse1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance(t, store, warehouse1))

	_, err = uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "TRANSFER", ProductID: productID, Quantity: 4,
		WarehouseFrom: warehouse1, WarehouseTo: warehouse2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), balance(t, store, warehouse1))
	assert.Equal(t, int64(4), balance(t, store, warehouse2))

	// Salida de 7 contra saldo 6: rechazada y nada cambia.
	_, err = uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "OUT", ProductID: productID, Quantity: 7, WarehouseFrom: warehouse1,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(7), stockErr.Requested)
	assert.Equal(t, int64(6), stockErr.Available)

	assert.Equal(t, int64(6), balance(t, store, warehouse1))
	assert.Equal(t, int64(4), balance(t, store, warehouse2))

	list, err := uc.List(50, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2, "el movimiento rechazado no queda en el libro")
}

func TestCreate_FormaInvalida(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	// IN no admite bodega de origen.
	_, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: productID, Quantity: 5,
		WarehouseFrom: warehouse1, WarehouseTo: warehouse2,
	})
	require.ErrorIs(t, err, domain.ErrInvalidMovementShape)

	// TRANSFER con origen y destino iguales.
	_, err = uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "TRANSFER", ProductID: productID, Quantity: 5,
		WarehouseFrom: warehouse1, WarehouseTo: warehouse1,
	})
	require.ErrorIs(t, err, domain.ErrInvalidMovementShape)

	// Cantidad no positiva.
	_, err = uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "OUT", ProductID: productID, Quantity: 0, WarehouseFrom: warehouse1,
	})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	assert.Equal(t, int64(0), balance(t, store, warehouse1))
}

func TestCreate_TipoSeNormalizaAMayusculas(t *testing.T) {
	uc, store := newTestUseCase(t)

	resp, err := uc.Create(context.Background(), dto.CreateMovementRequest{
		MovementType: "in", ProductID: productID, Quantity: 3, WarehouseTo: warehouse1,
	})
	require.NoError(t, err)
	assert.Equal(t, "IN", resp.MovementType)
	assert.Equal(t, int64(3), balance(t, store, warehouse1))
}

func TestCreate_ReferenciasInexistentes(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: "p-fantasma", Quantity: 5, WarehouseTo: warehouse1,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: productID, Quantity: 5, WarehouseTo: "w-fantasma",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_RevierteElEfecto(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: productID, Quantity: 5, WarehouseTo: warehouse1,
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), balance(t, store, warehouse1))

	require.NoError(t, uc.Delete(ctx, resp.ID))
	assert.Equal(t, int64(0), balance(t, store, warehouse1))

	got, err := uc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDelete_BloqueadoSiDejaSaldoNegativo(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	in, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: productID, Quantity: 5, WarehouseTo: warehouse1,
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "OUT", ProductID: productID, Quantity: 5, WarehouseFrom: warehouse1,
	})
	require.NoError(t, err)

	// El stock de la entrada ya salió: revertirla dejaría -5.
	err = uc.Delete(ctx, in.ID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, err := uc.GetByID(in.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "el movimiento se conserva cuando el reverso falla")
	assert.Equal(t, int64(0), balance(t, store, warehouse1))
}

func TestDelete_NoEncontrado(t *testing.T) {
	uc, _ := newTestUseCase(t)
	err := uc.Delete(context.Background(), "m-fantasma")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_SoloCantidadAjustaElNeto(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: productID, Quantity: 10, WarehouseTo: warehouse1,
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, resp.ID, dto.UpdateMovementRequest{Quantity: i64Ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated.Quantity)
	assert.Equal(t, int64(4), balance(t, store, warehouse1))
}

func TestUpdate_CambioDeDestinoEnTransfer(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: productID, Quantity: 10, WarehouseTo: warehouse1,
	})
	require.NoError(t, err)
	transfer, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "TRANSFER", ProductID: productID, Quantity: 4,
		WarehouseFrom: warehouse1, WarehouseTo: warehouse2,
	})
	require.NoError(t, err)

	// Mover el destino de w-2 a w-3: el crédito viejo se restaura y el
	// origen no se toca (el débito viejo y el nuevo se cancelan).
	_, err = uc.Update(ctx, transfer.ID, dto.UpdateMovementRequest{WarehouseTo: strPtr(warehouse3)})
	require.NoError(t, err)

	assert.Equal(t, int64(6), balance(t, store, warehouse1))
	assert.Equal(t, int64(0), balance(t, store, warehouse2))
	assert.Equal(t, int64(4), balance(t, store, warehouse3))
}

func TestUpdate_CambioDeTipo(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: productID, Quantity: 10, WarehouseTo: warehouse1,
	})
	require.NoError(t, err)
	in, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: productID, Quantity: 3, WarehouseTo: warehouse2,
	})
	require.NoError(t, err)

	// De IN en w-2 a OUT desde w-1: revierte el crédito en w-2 y debita w-1.
	updated, err := uc.Update(ctx, in.ID, dto.UpdateMovementRequest{
		MovementType:  strPtr("OUT"),
		WarehouseFrom: strPtr(warehouse1),
		WarehouseTo:   strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "OUT", updated.MovementType)
	assert.Empty(t, updated.WarehouseTo)

	assert.Equal(t, int64(7), balance(t, store, warehouse1))
	assert.Equal(t, int64(0), balance(t, store, warehouse2))
}

func TestUpdate_RechazadoNoTocaSaldos(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: productID, Quantity: 5, WarehouseTo: warehouse1,
	})
	require.NoError(t, err)
	out, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "OUT", ProductID: productID, Quantity: 2, WarehouseFrom: warehouse1,
	})
	require.NoError(t, err)

	// Subir la salida a 9 excede el saldo disponible (3 + las 2 revertidas).
	_, err = uc.Update(ctx, out.ID, dto.UpdateMovementRequest{Quantity: i64Ptr(9)})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Quantity, "el asiento conserva la cantidad original")
	assert.Equal(t, int64(3), balance(t, store, warehouse1))
}

func TestUpdate_DespuesDeEliminarEs404(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: productID, Quantity: 5, WarehouseTo: warehouse1,
	})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, resp.ID))

	_, err = uc.Update(ctx, resp.ID, dto.UpdateMovementRequest{Quantity: i64Ptr(3)})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_SalidasConcurrentesNoDejanSaldoNegativo(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateMovementRequest{
		MovementType: "IN", ProductID: productID, Quantity: 5, WarehouseTo: warehouse1,
	})
	require.NoError(t, err)

	// Dos salidas de 3 contra saldo 5: exactamente una debe pasar.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Create(ctx, dto.CreateMovementRequest{
				MovementType: "OUT", ProductID: productID, Quantity: 3, WarehouseFrom: warehouse1,
			})
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			failures++
		}
	}
	assert.Equal(t, 1, failures)
	assert.Equal(t, int64(2), balance(t, store, warehouse1))
}
