package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Acrobyux/cf-inventory-management-API/internal/application/dto"
	"github.com/Acrobyux/cf-inventory-management-API/internal/application/usecase"
)

// InventoryHandler expone los saldos como proyección de solo lectura.
// Los saldos se derivan del libro de movimientos: cualquier escritura
// directa se rechaza con 405.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar saldos de inventario
// @Tags         inventories
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.InventoryListResponse
// @Router       /api/v1/inventories [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener saldo por ID
// @Tags         inventories
// @Produce      json
// @Param        id  path  string  true  "ID del saldo"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "saldo no encontrado"})
	}
	return c.JSON(out)
}

// MethodNotAllowed rechaza escrituras sobre los saldos (estado derivado).
func (h *InventoryHandler) MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{
		Code:    "METHOD_NOT_ALLOWED",
		Message: "los saldos se derivan de los movimientos y no se editan directamente",
	})
}
