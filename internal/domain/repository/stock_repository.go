package repository

import (
	"time"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// StockFilter filtros de listado para filas de stock.
type StockFilter struct {
	WarehouseID string
	SupplyID    string
}

// StockRepository puerto de persistencia para filas de stock por depósito.
//
// AddQuantity y SubtractQuantity son mutaciones atómicas en SQL (upsert con
// incremento / decremento condicional) en lugar de leer-modificar-escribir,
// para que dos movimientos concurrentes sobre el mismo (deposito, insumo) no
// pierdan actualizaciones.
type StockRepository interface {
	Create(row *entity.StockRow) error
	GetByID(id string) (*entity.StockRow, error)
	// GetByWarehouseSupply devuelve nil, nil si el par no tiene fila.
	GetByWarehouseSupply(warehouseID, supplyID string) (*entity.StockRow, error)
	List(filter StockFilter) ([]*entity.StockRow, error)
	Update(row *entity.StockRow) error
	// AddQuantity crea la fila con cantidad qty si no existe, o la incrementa si
	// existe; siempre refresca fecha_ultimo_mov.
	AddQuantity(warehouseID, supplyID string, qty int64, at time.Time) error
	// SubtractQuantity decrementa la cantidad. Si no existe fila para el par es
	// un no-op silencioso (comportamiento heredado del sistema de referencia).
	SubtractQuantity(warehouseID, supplyID string, qty int64, at time.Time) error
	Delete(id string) error
}
