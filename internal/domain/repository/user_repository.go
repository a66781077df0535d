package repository

import "github.com/tu-usuario/insumos-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByEmail devuelve nil, nil si el email no está registrado.
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}

// RoleRepository puerto de persistencia para roles.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	List() ([]*entity.Role, error)
	Update(role *entity.Role) error
	Delete(id string) error
}
