package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP para usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario (email único, contraseña hasheada)
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUsuarioRequest  true  "Usuario"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/usuarios [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	user, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "rol no encontrado")
	}
	return created(c, dto.ToUsuarioResponse(user))
}

// GetByID obtiene un usuario por ID.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "usuario no encontrado")
	}
	return ok(c, dto.ToUsuarioResponse(user))
}

// List lista usuarios con paginación simple.
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
	page.Normalize()
	list, err := h.uc.List(page.Limit, page.Offset())
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.ToUsuarioResponse(u))
	}
	return ok(c, out)
}

// Update actualiza un usuario (re-hashea la contraseña si viene en el cuerpo).
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	user, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err, "usuario no encontrado")
	}
	return ok(c, dto.ToUsuarioResponse(user))
}

// Delete elimina un usuario.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "usuario no encontrado")
	}
	return okMessage(c, "Usuario eliminado")
}

// RoleHandler maneja las peticiones HTTP para roles.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Create crea un rol.
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRolRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	role, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "")
	}
	return created(c, dto.ToRolResponse(role))
}

// GetByID obtiene un rol por ID.
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
	role, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "rol no encontrado")
	}
	return ok(c, dto.ToRolResponse(role))
}

// List lista todos los roles.
func (h *RoleHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.RolResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.ToRolResponse(r))
	}
	return ok(c, out)
}

// Delete elimina un rol.
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "rol no encontrado")
	}
	return okMessage(c, "Rol eliminado")
}
