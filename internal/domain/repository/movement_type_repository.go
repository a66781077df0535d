package repository

import "github.com/tu-usuario/insumos-api/internal/domain/entity"

// MovementTypeRepository puerto de persistencia para tipos de movimiento.
type MovementTypeRepository interface {
	Create(mtype *entity.MovementType) error
	GetByID(id string) (*entity.MovementType, error)
	List(limit, offset int) ([]*entity.MovementType, error)
	Update(mtype *entity.MovementType) error
	Delete(id string) error
}

// MovementReasonRepository puerto de persistencia para razones de movimiento.
type MovementReasonRepository interface {
	Create(reason *entity.MovementReason) error
	GetByID(id string) (*entity.MovementReason, error)
	ListByType(typeID string) ([]*entity.MovementReason, error)
	List(limit, offset int) ([]*entity.MovementReason, error)
	Update(reason *entity.MovementReason) error
	Delete(id string) error
}
