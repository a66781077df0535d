package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías de insumos.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(in dto.CreateCategoriaRequest) (*entity.Category, error) {
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.NombreCategoria,
		Description: in.Descripcion,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*entity.Category, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// List lista categorías paginadas.
func (uc *CategoryUseCase) List(limit, offset int) ([]*entity.Category, error) {
	return uc.repo.List(limit, offset)
}

// Update actualiza nombre y descripción.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoriaRequest) (*entity.Category, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.NombreCategoria != nil {
		category.Name = *in.NombreCategoria
	}
	if in.Descripcion != nil {
		category.Description = *in.Descripcion
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete elimina una categoría.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
