package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para depósitos.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea un depósito activo.
func (uc *WarehouseUseCase) Create(in dto.CreateDepositoRequest) (*entity.Warehouse, error) {
	warehouse := &entity.Warehouse{
		ID:          uuid.New().String(),
		Name:        in.NomDeposito,
		Address:     in.DirDeposito,
		Responsible: in.Responsable,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// GetByID obtiene un depósito por ID.
func (uc *WarehouseUseCase) GetByID(id string) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return warehouse, nil
}

// List lista depósitos paginados.
func (uc *WarehouseUseCase) List(limit, offset int) ([]*entity.Warehouse, error) {
	return uc.repo.List(limit, offset)
}

// Update actualiza un depósito.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateDepositoRequest) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.NomDeposito != nil {
		warehouse.Name = *in.NomDeposito
	}
	if in.DirDeposito != nil {
		warehouse.Address = *in.DirDeposito
	}
	if in.Responsable != nil {
		warehouse.Responsible = *in.Responsable
	}
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// Delete elimina un depósito.
func (uc *WarehouseUseCase) Delete(id string) error {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
