package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/usecase"
)

// SupplierHandler maneja las peticiones HTTP para proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor (CUIT único)
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProveedorRequest  true  "Proveedor"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/proveedores [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	supplier, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "")
	}
	return created(c, dto.ToProveedorResponse(supplier))
}

// GetByID obtiene un proveedor por ID.
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	supplier, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "proveedor no encontrado")
	}
	return ok(c, dto.ToProveedorResponse(supplier))
}

// List lista proveedores con paginación simple.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
	page.Normalize()
	list, err := h.uc.List(page.Limit, page.Offset())
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProveedorResponse(p))
	}
	return ok(c, out)
}

// Update actualiza un proveedor (el CUIT no se modifica).
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	supplier, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err, "proveedor no encontrado")
	}
	return ok(c, dto.ToProveedorResponse(supplier))
}

// Delete elimina un proveedor.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "proveedor no encontrado")
	}
	return okMessage(c, "Proveedor eliminado")
}
