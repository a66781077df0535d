package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/usecase"
)

// WarehouseHandler maneja las peticiones HTTP para depósitos.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear depósito
// @Tags         depositos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepositoRequest  true  "Depósito"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/depositos [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepositoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	wh, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "")
	}
	return created(c, dto.ToDepositoResponse(wh))
}

// GetByID obtiene un depósito por ID.
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	wh, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "depósito no encontrado")
	}
	return ok(c, dto.ToDepositoResponse(wh))
}

// List lista depósitos con paginación simple.
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
	page.Normalize()
	list, err := h.uc.List(page.Limit, page.Offset())
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.DepositoResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.ToDepositoResponse(w))
	}
	return ok(c, out)
}

// Update actualiza un depósito.
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDepositoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	wh, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err, "depósito no encontrado")
	}
	return ok(c, dto.ToDepositoResponse(wh))
}

// Delete elimina un depósito.
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "depósito no encontrado")
	}
	return okMessage(c, "Depósito eliminado")
}
