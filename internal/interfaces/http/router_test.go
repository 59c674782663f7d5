package http

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Acrobyux/cf-inventory-management-API/internal/application/dto"
	"github.com/Acrobyux/cf-inventory-management-API/internal/application/inventory"
	"github.com/Acrobyux/cf-inventory-management-API/internal/application/usecase"
	"github.com/Acrobyux/cf-inventory-management-API/internal/domain/entity"
	"github.com/Acrobyux/cf-inventory-management-API/internal/infrastructure/memory"
)

func newTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()

	warehouseRepo := memory.NewWarehouseRepository(store)
	categoryRepo := memory.NewCategoryRepository(store)
	productRepo := memory.NewProductRepository(store)

	app := fiber.New()
	Router(app, RouterDeps{
		WarehouseUC: usecase.NewWarehouseUseCase(warehouseRepo),
		CategoryUC:  usecase.NewCategoryUseCase(categoryRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo, categoryRepo),
		InventoryUC: usecase.NewInventoryUseCase(memory.NewInventoryRepository(store)),
		MovementUC: inventory.NewMovementUseCase(
			memory.NewTxRunner(store),
			memory.NewMovementRepository(store),
			productRepo,
			warehouseRepo,
		),
	})
	return app, store
}

func seedCatalog(t *testing.T, store *memory.Store, productID string, warehouseIDs ...string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, memory.NewProductRepository(store).Create(&entity.Product{
		ID: productID, Name: "Producto de prueba", Status: entity.StatusActive,
		CreatedAt: now, UpdatedAt: now,
	}))
	for _, id := range warehouseIDs {
		require.NoError(t, memory.NewWarehouseRepository(store).Create(&entity.Warehouse{
			ID: id, Name: "Bodega " + id, Status: entity.StatusActive,
			CreatedAt: now, UpdatedAt: now,
		}))
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *nethttp.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *nethttp.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestMovements_CicloCompleto(t *testing.T) {
	app, store := newTestApp(t)
	seedCatalog(t, store, "p-1", "w-1", "w-2")

	resp := doJSON(t, app, "POST", "/api/v1/movements", fiber.Map{
		"movement_type": "IN", "product": "p-1", "quantity": 10, "warehouse_to": "w-1",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	created := decode[dto.MovementResponse](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(10), created.Quantity)

	resp = doJSON(t, app, "POST", "/api/v1/movements", fiber.Map{
		"movement_type": "TRANSFER", "product": "p-1", "quantity": 4,
		"warehouse_from": "w-1", "warehouse_to": "w-2",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/v1/movements", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	list := decode[dto.MovementListResponse](t, resp)
	assert.Len(t, list.Items, 2)

	resp = doJSON(t, app, "GET", "/api/v1/movements/"+created.ID, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestMovements_StockInsuficienteTraeDetalle(t *testing.T) {
	app, store := newTestApp(t)
	seedCatalog(t, store, "p-1", "w-1")

	resp := doJSON(t, app, "POST", "/api/v1/movements", fiber.Map{
		"movement_type": "IN", "product": "p-1", "quantity": 6, "warehouse_to": "w-1",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "POST", "/api/v1/movements", fiber.Map{
		"movement_type": "OUT", "product": "p-1", "quantity": 7, "warehouse_from": "w-1",
	})
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	require.NotNil(t, body.Requested)
	require.NotNil(t, body.Available)
	assert.Equal(t, int64(7), *body.Requested)
	assert.Equal(t, int64(6), *body.Available)
}

func TestMovements_FormaInvalidaEs400(t *testing.T) {
	app, store := newTestApp(t)
	seedCatalog(t, store, "p-1", "w-1", "w-2")

	resp := doJSON(t, app, "POST", "/api/v1/movements", fiber.Map{
		"movement_type": "IN", "product": "p-1", "quantity": 5,
		"warehouse_from": "w-1", "warehouse_to": "w-2",
	})
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_MOVEMENT_SHAPE", body.Code)
}

func TestMovements_ReferenciaInexistenteEs404(t *testing.T) {
	app, store := newTestApp(t)
	seedCatalog(t, store, "p-1", "w-1")

	resp := doJSON(t, app, "POST", "/api/v1/movements", fiber.Map{
		"movement_type": "IN", "product": "p-fantasma", "quantity": 5, "warehouse_to": "w-1",
	})
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/v1/movements/m-fantasma", nil)
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestMovements_EliminarRevierteYResponde204(t *testing.T) {
	app, store := newTestApp(t)
	seedCatalog(t, store, "p-1", "w-1")

	resp := doJSON(t, app, "POST", "/api/v1/movements", fiber.Map{
		"movement_type": "IN", "product": "p-1", "quantity": 5, "warehouse_to": "w-1",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	created := decode[dto.MovementResponse](t, resp)

	resp = doJSON(t, app, "DELETE", "/api/v1/movements/"+created.ID, nil)
	require.Equal(t, nethttp.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	inv, err := memory.NewInventoryRepository(store).Get("p-1", "w-1")
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, int64(0), inv.Quantity)
}

func TestInventories_EscriturasResponden405(t *testing.T) {
	app, _ := newTestApp(t)

	for _, tc := range []struct{ method, path string }{
		{"POST", "/api/v1/inventories"},
		{"PUT", "/api/v1/inventories/inv-1"},
		{"PATCH", "/api/v1/inventories/inv-1"},
		{"DELETE", "/api/v1/inventories/inv-1"},
	} {
		resp := doJSON(t, app, tc.method, tc.path, fiber.Map{"quantity": 99})
		assert.Equal(t, nethttp.StatusMethodNotAllowed, resp.StatusCode, "%s %s", tc.method, tc.path)
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, "METHOD_NOT_ALLOWED", body.Code)
	}
}

func TestInventories_ListaDeSoloLectura(t *testing.T) {
	app, store := newTestApp(t)
	seedCatalog(t, store, "p-1", "w-1")

	resp := doJSON(t, app, "POST", "/api/v1/movements", fiber.Map{
		"movement_type": "IN", "product": "p-1", "quantity": 8, "warehouse_to": "w-1",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/v1/inventories", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	list := decode[dto.InventoryListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "p-1", list.Items[0].ProductID)
	assert.Equal(t, "w-1", list.Items[0].WarehouseID)
	assert.Equal(t, int64(8), list.Items[0].Quantity)

	resp = doJSON(t, app, "GET", "/api/v1/inventories/"+list.Items[0].ID, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestWarehouses_CRUD(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/warehouses", fiber.Map{
		"name": "Bodega Central", "address": "Calle 10 #4-21",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	created := decode[dto.WarehouseResponse](t, resp)
	assert.Equal(t, entity.StatusActive, created.Status)

	resp = doJSON(t, app, "PUT", "/api/v1/warehouses/"+created.ID, fiber.Map{
		"name": "Bodega Norte",
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	updated := decode[dto.WarehouseResponse](t, resp)
	assert.Equal(t, "Bodega Norte", updated.Name)
	assert.Equal(t, "Calle 10 #4-21", updated.Address, "los campos ausentes no cambian")

	resp = doJSON(t, app, "DELETE", "/api/v1/warehouses/"+created.ID, nil)
	require.Equal(t, nethttp.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/v1/warehouses/"+created.ID, nil)
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestWarehouses_NombreObligatorio(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, "POST", "/api/v1/warehouses", fiber.Map{"address": "sin nombre"})
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCategories_EliminarDesligaProductos(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/categories", fiber.Map{"name": "Ferretería"})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	category := decode[dto.CategoryResponse](t, resp)

	resp = doJSON(t, app, "POST", "/api/v1/products", fiber.Map{
		"name": "Martillo", "category": category.ID,
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	product := decode[dto.ProductResponse](t, resp)
	require.Equal(t, category.ID, product.CategoryID)

	resp = doJSON(t, app, "DELETE", "/api/v1/categories/"+category.ID, nil)
	require.Equal(t, nethttp.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/v1/products/"+product.ID, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	got := decode[dto.ProductResponse](t, resp)
	assert.Empty(t, got.CategoryID, "el producto queda sin categoría")
}

func TestProducts_CategoriaInexistenteEs404(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, "POST", "/api/v1/products", fiber.Map{
		"name": "Martillo", "category": "c-fantasma",
	})
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
