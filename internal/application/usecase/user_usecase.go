package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. Email único; el password se
// hashea con bcrypt y nunca sale del dominio.
type UserUseCase struct {
	repo  repository.UserRepository
	roles repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, roles repository.RoleRepository) *UserUseCase {
	return &UserUseCase{repo: repo, roles: roles}
}

// Create crea un usuario activo. Devuelve ErrEmailAlreadyExists si el email
// ya está registrado.
func (uc *UserUseCase) Create(in dto.CreateUsuarioRequest) (*entity.User, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role, err := uc.roles.GetByID(in.IDRol)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		RoleID:       in.IDRol,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// List lista usuarios paginados.
func (uc *UserUseCase) List(limit, offset int) ([]*entity.User, error) {
	return uc.repo.List(limit, offset)
}

// Update actualiza email, password, rol o estado.
func (uc *UserUseCase) Update(id string, in dto.UpdateUsuarioRequest) (*entity.User, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil && *in.Email != user.Email {
		existing, err := uc.repo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.IDRol != nil {
		role, err := uc.roles.GetByID(*in.IDRol)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrNotFound
		}
		user.RoleID = *in.IDRol
	}
	if in.Estado != nil {
		user.Active = *in.Estado
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// RoleUseCase casos de uso CRUD para roles.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create crea un rol.
func (uc *RoleUseCase) Create(in dto.CreateRolRequest) (*entity.Role, error) {
	role := &entity.Role{ID: uuid.New().String(), Name: in.NombreRol}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}

// GetByID obtiene un rol por ID.
func (uc *RoleUseCase) GetByID(id string) (*entity.Role, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return role, nil
}

// List lista todos los roles.
func (uc *RoleUseCase) List() ([]*entity.Role, error) {
	return uc.repo.List()
}

// Delete elimina un rol.
func (uc *RoleUseCase) Delete(id string) error {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
