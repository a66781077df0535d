package repository

import "github.com/tu-usuario/insumos-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías de insumos.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List(limit, offset int) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
