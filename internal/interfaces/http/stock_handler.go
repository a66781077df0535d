package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/inventory"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// StockHandler maneja las peticiones HTTP para el stock por depósito.
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fila de stock (par depósito-insumo)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequest  true  "Fila de stock"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/stock-depositos [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	row, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err, "depósito o insumo no encontrado")
	}
	return created(c, dto.ToStockResponse(row))
}

// GetByID godoc
// @Summary      Obtener fila de stock (con nivel y porcentaje derivados)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la fila de stock"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/stock-depositos/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	row, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "stock no encontrado")
	}
	return ok(c, dto.ToStockResponse(row))
}

// List godoc
// @Summary      Listar stock por depósito y/o insumo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        deposito  query  string  false  "Depósito"
// @Param        insumo    query  string  false  "Insumo"
// @Success      200  {object}  dto.Response
// @Router       /api/stock-depositos [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	filter := repository.StockFilter{
		WarehouseID: c.Query("deposito"),
		SupplyID:    c.Query("insumo"),
	}
	rows, err := h.uc.List(filter)
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.StockResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToStockResponse(r))
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Actualizar umbrales de una fila de stock (no la cantidad)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la fila de stock"
// @Param        body  body  dto.UpdateStockRequest  true  "Umbrales"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/stock-depositos/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	row, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err, "stock no encontrado")
	}
	return ok(c, dto.ToStockResponse(row))
}

// Delete godoc
// @Summary      Eliminar fila de stock (y sus alertas asociadas)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la fila de stock"
// @Success      200  {object}  dto.Response
// @Router       /api/stock-depositos/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err, "stock no encontrado")
	}
	return okMessage(c, "Stock eliminado")
}
