package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores. CUIT único.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. Rechaza CUIT repetido.
func (uc *SupplierUseCase) Create(in dto.CreateProveedorRequest) (*entity.Supplier, error) {
	existing, err := uc.repo.GetByCUIT(in.CUITProveedor)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.NombreProveedor,
		CUIT:      in.CUITProveedor,
		Address:   in.Direccion,
		Phone:     in.TelefonoProveedor,
		Email:     in.Email,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

// List lista proveedores paginados.
func (uc *SupplierUseCase) List(limit, offset int) ([]*entity.Supplier, error) {
	return uc.repo.List(limit, offset)
}

// Update actualiza datos de contacto. El CUIT no se modifica.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateProveedorRequest) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.NombreProveedor != nil {
		supplier.Name = *in.NombreProveedor
	}
	if in.Direccion != nil {
		supplier.Address = *in.Direccion
	}
	if in.TelefonoProveedor != nil {
		supplier.Phone = *in.TelefonoProveedor
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
