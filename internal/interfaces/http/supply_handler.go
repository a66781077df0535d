package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/usecase"
)

// SupplyHandler maneja las peticiones HTTP para insumos.
type SupplyHandler struct {
	uc *usecase.SupplyUseCase
}

// NewSupplyHandler construye el handler.
func NewSupplyHandler(uc *usecase.SupplyUseCase) *SupplyHandler {
	return &SupplyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear insumo
// @Tags         insumos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInsumoRequest  true  "Insumo"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/insumos [post]
func (h *SupplyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	supply, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "categoría o proveedor no encontrado")
	}
	return created(c, dto.ToInsumoResponse(supply))
}

// GetByID obtiene un insumo por ID.
func (h *SupplyHandler) GetByID(c *fiber.Ctx) error {
	supply, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "insumo no encontrado")
	}
	return ok(c, dto.ToInsumoResponse(supply))
}

// List godoc
// @Summary      Listar insumos
// @Tags         insumos
// @Security     Bearer
// @Produce      json
// @Param        activos  query  bool  false  "Solo insumos activos"
// @Param        page     query  int   false  "Página"  default(1)
// @Param        limit    query  int   false  "Límite"  default(10)
// @Success      200  {object}  dto.Response
// @Router       /api/insumos [get]
func (h *SupplyHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
	page.Normalize()
	list, err := h.uc.List(c.QueryBool("activos"), page.Limit, page.Offset())
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.InsumoResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToInsumoResponse(s))
	}
	return ok(c, out)
}

// ListCriticalStock godoc
// @Summary      Listar insumos activos con stock en nivel crítico
// @Tags         insumos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/insumos/stock_critico [get]
func (h *SupplyHandler) ListCriticalStock(c *fiber.Ctx) error {
	list, err := h.uc.ListWithCriticalStock()
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.InsumoResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToInsumoResponse(s))
	}
	return ok(c, out)
}

// Update actualiza un insumo.
func (h *SupplyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	supply, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err, "insumo no encontrado")
	}
	return ok(c, dto.ToInsumoResponse(supply))
}

// Delete desactiva un insumo (baja lógica).
func (h *SupplyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "insumo no encontrado")
	}
	return okMessage(c, "Insumo desactivado")
}
