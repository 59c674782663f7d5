package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Acrobyux/cf-inventory-management-API/internal/application/inventory"
	"github.com/Acrobyux/cf-inventory-management-API/internal/application/usecase"
)

// RouterDeps casos de uso que el router necesita para montar las rutas.
type RouterDeps struct {
	WarehouseUC *usecase.WarehouseUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *usecase.InventoryUseCase
	MovementUC  *inventory.MovementUseCase
}

// Router registra todas las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses := api.Group("/warehouses")
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Patch("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/categories")
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Patch("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Saldos: solo lectura. Las escrituras responden 405 en vez de 404
	// para dejar claro que el recurso existe pero no se edita.
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventories := api.Group("/inventories")
	inventories.Get("/", inventoryHandler.List)
	inventories.Get("/:id", inventoryHandler.GetByID)
	inventories.Post("/", inventoryHandler.MethodNotAllowed)
	inventories.Put("/:id", inventoryHandler.MethodNotAllowed)
	inventories.Patch("/:id", inventoryHandler.MethodNotAllowed)
	inventories.Delete("/:id", inventoryHandler.MethodNotAllowed)

	movementHandler := NewMovementHandler(deps.MovementUC)
	movements := api.Group("/movements")
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Patch("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)
}
