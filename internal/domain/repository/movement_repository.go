package repository

import (
	"time"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// MovementFilter filtros de listado para movimientos.
// WarehouseID coincide contra depósito origen o destino.
type MovementFilter struct {
	WarehouseID string
	TypeID      string
	Status      string
	From        *time.Time
	To          *time.Time
}

// MovementRepository puerto de persistencia para cabeceras de movimiento.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List(filter MovementFilter, limit, offset int) ([]*entity.Movement, int, error)
	Update(movement *entity.Movement) error
	// Delete elimina la cabecera; los detalles caen en cascada (FK ON DELETE CASCADE).
	Delete(id string) error
}

// MovementDetailRepository puerto de persistencia para detalles de movimiento.
type MovementDetailRepository interface {
	Create(detail *entity.MovementDetail) error
	GetByID(id string) (*entity.MovementDetail, error)
	ListByMovement(movementID string) ([]*entity.MovementDetail, error)
	// FindByMovementSupplyLot resuelve la unicidad (movimiento, insumo, lote).
	// Devuelve nil, nil si no existe.
	FindByMovementSupplyLot(movementID, supplyID, lot string) (*entity.MovementDetail, error)
	Update(detail *entity.MovementDetail) error
	Delete(id string) error
}
