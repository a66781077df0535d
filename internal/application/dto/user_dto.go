package dto

import "github.com/tu-usuario/insumos-api/internal/domain/entity"

// CreateUsuarioRequest body para POST /usuarios.
type CreateUsuarioRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	IDRol    string `json:"id_rol" validate:"required"`
}

// UpdateUsuarioRequest body para PUT /usuarios/:id.
type UpdateUsuarioRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	IDRol    *string `json:"id_rol,omitempty"`
	Estado   *bool   `json:"estado,omitempty"`
}

// UsuarioResponse representación JSON de un usuario (nunca expone el hash).
type UsuarioResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	IDRol  string `json:"id_rol"`
	Estado bool   `json:"estado"`
}

// ToUsuarioResponse mapea un usuario.
func ToUsuarioResponse(u *entity.User) *UsuarioResponse {
	return &UsuarioResponse{ID: u.ID, Email: u.Email, IDRol: u.RoleID, Estado: u.Active}
}

// LoginRequest body para POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido + usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// CreateRolRequest body para POST /roles.
type CreateRolRequest struct {
	NombreRol string `json:"nombre_rol" validate:"required"`
}

// RolResponse representación JSON de un rol.
type RolResponse struct {
	IDRol     string `json:"id_rol"`
	NombreRol string `json:"nombre_rol"`
}

// ToRolResponse mapea un rol.
func ToRolResponse(r *entity.Role) *RolResponse {
	return &RolResponse{IDRol: r.ID, NombreRol: r.Name}
}
