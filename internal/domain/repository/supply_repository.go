package repository

import "github.com/tu-usuario/insumos-api/internal/domain/entity"

// SupplyRepository puerto de persistencia para insumos (DIP).
type SupplyRepository interface {
	Create(supply *entity.Supply) error
	GetByID(id string) (*entity.Supply, error)
	List(onlyActive bool, limit, offset int) ([]*entity.Supply, error)
	// ListWithCriticalStock insumos con al menos una fila de stock en o por
	// debajo de su umbral crítico.
	ListWithCriticalStock() ([]*entity.Supply, error)
	Update(supply *entity.Supply) error
	// Deactivate baja lógica: marca el insumo como inactivo sin eliminar la fila.
	Deactivate(id string) error
}
