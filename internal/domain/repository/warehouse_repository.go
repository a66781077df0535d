package repository

import "github.com/tu-usuario/insumos-api/internal/domain/entity"

// WarehouseRepository puerto de persistencia para depósitos.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	Delete(id string) error
}
