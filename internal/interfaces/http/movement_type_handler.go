package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/usecase"
)

// MovementTypeHandler maneja las peticiones HTTP para tipos de movimiento.
type MovementTypeHandler struct {
	uc *usecase.MovementTypeUseCase
}

// NewMovementTypeHandler construye el handler.
func NewMovementTypeHandler(uc *usecase.MovementTypeUseCase) *MovementTypeHandler {
	return &MovementTypeHandler{uc: uc}
}

// Create crea un tipo de movimiento (afecta_stock: POSITIVO, NEGATIVO o NEUTRO).
func (h *MovementTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTipoMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	mt, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "")
	}
	return created(c, dto.ToTipoMovimientoResponse(mt))
}

// GetByID obtiene un tipo de movimiento por ID.
func (h *MovementTypeHandler) GetByID(c *fiber.Ctx) error {
	mt, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "tipo de movimiento no encontrado")
	}
	return ok(c, dto.ToTipoMovimientoResponse(mt))
}

// List lista tipos de movimiento.
func (h *MovementTypeHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
	page.Normalize()
	list, err := h.uc.List(page.Limit, page.Offset())
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.TipoMovimientoResponse, 0, len(list))
	for _, mt := range list {
		out = append(out, dto.ToTipoMovimientoResponse(mt))
	}
	return ok(c, out)
}

// Update actualiza un tipo de movimiento.
func (h *MovementTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTipoMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	mt, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err, "tipo de movimiento no encontrado")
	}
	return ok(c, dto.ToTipoMovimientoResponse(mt))
}

// Delete elimina un tipo de movimiento sin razones asociadas.
func (h *MovementTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "tipo de movimiento no encontrado")
	}
	return okMessage(c, "Tipo de movimiento eliminado")
}

// MovementReasonHandler maneja las peticiones HTTP para razones de movimiento.
type MovementReasonHandler struct {
	uc *usecase.MovementReasonUseCase
}

// NewMovementReasonHandler construye el handler.
func NewMovementReasonHandler(uc *usecase.MovementReasonUseCase) *MovementReasonHandler {
	return &MovementReasonHandler{uc: uc}
}

// Create crea una razón asociada a un tipo de movimiento existente.
func (h *MovementReasonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRazonMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	r, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "tipo de movimiento no encontrado")
	}
	return created(c, dto.ToRazonMovimientoResponse(r))
}

// GetByID obtiene una razón por ID.
func (h *MovementReasonHandler) GetByID(c *fiber.Ctx) error {
	r, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "razón de movimiento no encontrada")
	}
	return ok(c, dto.ToRazonMovimientoResponse(r))
}

// List lista razones, filtrables por tipo (query tipo).
func (h *MovementReasonHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
	page.Normalize()
	list, err := h.uc.List(c.Query("tipo"), page.Limit, page.Offset())
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.RazonMovimientoResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.ToRazonMovimientoResponse(r))
	}
	return ok(c, out)
}

// Update renombra una razón.
func (h *MovementReasonHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRazonMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	r, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err, "razón de movimiento no encontrada")
	}
	return ok(c, dto.ToRazonMovimientoResponse(r))
}

// Delete elimina una razón.
func (h *MovementReasonHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "razón de movimiento no encontrada")
	}
	return okMessage(c, "Razón de movimiento eliminada")
}
