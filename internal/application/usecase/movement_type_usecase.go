package usecase

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// MovementTypeUseCase casos de uso CRUD para tipos de movimiento.
type MovementTypeUseCase struct {
	repo repository.MovementTypeRepository
}

// NewMovementTypeUseCase construye el caso de uso.
func NewMovementTypeUseCase(repo repository.MovementTypeRepository) *MovementTypeUseCase {
	return &MovementTypeUseCase{repo: repo}
}

// Create crea un tipo de movimiento activo.
func (uc *MovementTypeUseCase) Create(in dto.CreateTipoMovimientoRequest) (*entity.MovementType, error) {
	switch in.AfectaStock {
	case entity.StockEffectPositive, entity.StockEffectNegative, entity.StockEffectNeutral:
	default:
		return nil, domain.ErrInvalidInput
	}
	mtype := &entity.MovementType{
		ID:          uuid.New().String(),
		Name:        in.NombreTipo,
		StockEffect: in.AfectaStock,
		Active:      true,
	}
	if err := uc.repo.Create(mtype); err != nil {
		return nil, err
	}
	return mtype, nil
}

// GetByID obtiene un tipo por ID.
func (uc *MovementTypeUseCase) GetByID(id string) (*entity.MovementType, error) {
	mtype, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mtype == nil {
		return nil, domain.ErrNotFound
	}
	return mtype, nil
}

// List lista tipos de movimiento.
func (uc *MovementTypeUseCase) List(limit, offset int) ([]*entity.MovementType, error) {
	return uc.repo.List(limit, offset)
}

// Update actualiza nombre, efecto o estado del tipo.
func (uc *MovementTypeUseCase) Update(id string, in dto.UpdateTipoMovimientoRequest) (*entity.MovementType, error) {
	mtype, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mtype == nil {
		return nil, domain.ErrNotFound
	}
	if in.NombreTipo != nil {
		mtype.Name = *in.NombreTipo
	}
	if in.AfectaStock != nil {
		switch *in.AfectaStock {
		case entity.StockEffectPositive, entity.StockEffectNegative, entity.StockEffectNeutral:
		default:
			return nil, domain.ErrInvalidInput
		}
		mtype.StockEffect = *in.AfectaStock
	}
	if in.Estado != nil {
		mtype.Active = *in.Estado
	}
	if err := uc.repo.Update(mtype); err != nil {
		return nil, err
	}
	return mtype, nil
}

// Delete elimina un tipo de movimiento.
func (uc *MovementTypeUseCase) Delete(id string) error {
	mtype, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if mtype == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// MovementReasonUseCase casos de uso CRUD para razones de movimiento.
// Cada razón pertenece a exactamente un tipo.
type MovementReasonUseCase struct {
	repo  repository.MovementReasonRepository
	types repository.MovementTypeRepository
}

// NewMovementReasonUseCase construye el caso de uso.
func NewMovementReasonUseCase(repo repository.MovementReasonRepository, types repository.MovementTypeRepository) *MovementReasonUseCase {
	return &MovementReasonUseCase{repo: repo, types: types}
}

// Create crea una razón. El tipo referenciado debe existir.
func (uc *MovementReasonUseCase) Create(in dto.CreateRazonMovimientoRequest) (*entity.MovementReason, error) {
	mtype, err := uc.types.GetByID(in.IDTipoMovimiento)
	if err != nil {
		return nil, err
	}
	if mtype == nil {
		return nil, domain.ErrNotFound
	}
	reason := &entity.MovementReason{
		ID:     uuid.New().String(),
		Name:   in.NombreRazon,
		TypeID: in.IDTipoMovimiento,
	}
	if err := uc.repo.Create(reason); err != nil {
		return nil, err
	}
	return reason, nil
}

// GetByID obtiene una razón por ID.
func (uc *MovementReasonUseCase) GetByID(id string) (*entity.MovementReason, error) {
	reason, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reason == nil {
		return nil, domain.ErrNotFound
	}
	return reason, nil
}

// List lista razones; con typeID filtra por tipo.
func (uc *MovementReasonUseCase) List(typeID string, limit, offset int) ([]*entity.MovementReason, error) {
	if typeID != "" {
		return uc.repo.ListByType(typeID)
	}
	return uc.repo.List(limit, offset)
}

// Update renombra una razón. El tipo no se reasigna.
func (uc *MovementReasonUseCase) Update(id string, in dto.UpdateRazonMovimientoRequest) (*entity.MovementReason, error) {
	reason, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reason == nil {
		return nil, domain.ErrNotFound
	}
	if in.NombreRazon != nil {
		reason.Name = *in.NombreRazon
	}
	if err := uc.repo.Update(reason); err != nil {
		return nil, err
	}
	return reason, nil
}

// Delete elimina una razón.
func (uc *MovementReasonUseCase) Delete(id string) error {
	reason, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if reason == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
