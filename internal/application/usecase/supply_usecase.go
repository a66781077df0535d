package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// SupplyUseCase casos de uso CRUD para insumos. La baja es lógica.
type SupplyUseCase struct {
	repo       repository.SupplyRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
}

// NewSupplyUseCase construye el caso de uso.
func NewSupplyUseCase(repo repository.SupplyRepository, categories repository.CategoryRepository, suppliers repository.SupplierRepository) *SupplyUseCase {
	return &SupplyUseCase{repo: repo, categories: categories, suppliers: suppliers}
}

// Create crea un insumo activo. Categoría y proveedor deben existir.
func (uc *SupplyUseCase) Create(in dto.CreateInsumoRequest) (*entity.Supply, error) {
	if in.CostoUnitario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categories.GetByID(in.IDCategoria)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.suppliers.GetByID(in.IDProveedor)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	supply := &entity.Supply{
		ID:          uuid.New().String(),
		Name:        in.NombreInsumo,
		Description: in.DescripcionInsumo,
		UnitCost:    in.CostoUnitario,
		ExpiryDate:  in.FechaExpiracion,
		CategoryID:  in.IDCategoria,
		SupplierID:  in.IDProveedor,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(supply); err != nil {
		return nil, err
	}
	return supply, nil
}

// GetByID obtiene un insumo por ID.
func (uc *SupplyUseCase) GetByID(id string) (*entity.Supply, error) {
	supply, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supply == nil {
		return nil, domain.ErrNotFound
	}
	return supply, nil
}

// List lista insumos; onlyActive filtra las bajas lógicas.
func (uc *SupplyUseCase) List(onlyActive bool, limit, offset int) ([]*entity.Supply, error) {
	return uc.repo.List(onlyActive, limit, offset)
}

// ListWithCriticalStock insumos con alguna fila de stock en o por debajo del
// umbral crítico.
func (uc *SupplyUseCase) ListWithCriticalStock() ([]*entity.Supply, error) {
	return uc.repo.ListWithCriticalStock()
}

// Update actualiza un insumo.
func (uc *SupplyUseCase) Update(id string, in dto.UpdateInsumoRequest) (*entity.Supply, error) {
	supply, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supply == nil {
		return nil, domain.ErrNotFound
	}
	if in.NombreInsumo != nil {
		supply.Name = *in.NombreInsumo
	}
	if in.DescripcionInsumo != nil {
		supply.Description = *in.DescripcionInsumo
	}
	if in.CostoUnitario != nil {
		if in.CostoUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		supply.UnitCost = *in.CostoUnitario
	}
	if in.FechaExpiracion != nil {
		supply.ExpiryDate = in.FechaExpiracion
	}
	if in.IDCategoria != nil {
		category, err := uc.categories.GetByID(*in.IDCategoria)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		supply.CategoryID = *in.IDCategoria
	}
	if in.IDProveedor != nil {
		supplier, err := uc.suppliers.GetByID(*in.IDProveedor)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		supply.SupplierID = *in.IDProveedor
	}
	supply.UpdatedAt = time.Now()
	if err := uc.repo.Update(supply); err != nil {
		return nil, err
	}
	return supply, nil
}

// Delete baja lógica: el insumo queda inactivo, el historial se conserva.
func (uc *SupplyUseCase) Delete(id string) error {
	supply, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supply == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}
