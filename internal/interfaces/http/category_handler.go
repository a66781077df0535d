package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para categorías de insumo.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoriaRequest  true  "Categoría"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/categorias [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	cat, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "")
	}
	return created(c, dto.ToCategoriaResponse(cat))
}

// GetByID obtiene una categoría por ID.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	cat, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "categoría no encontrada")
	}
	return ok(c, dto.ToCategoriaResponse(cat))
}

// List lista categorías con paginación simple.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
	page.Normalize()
	list, err := h.uc.List(page.Limit, page.Offset())
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.CategoriaResponse, 0, len(list))
	for _, cat := range list {
		out = append(out, dto.ToCategoriaResponse(cat))
	}
	return ok(c, out)
}

// Update actualiza una categoría.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	cat, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err, "categoría no encontrada")
	}
	return ok(c, dto.ToCategoriaResponse(cat))
}

// Delete elimina una categoría.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "categoría no encontrada")
	}
	return okMessage(c, "Categoría eliminada")
}
