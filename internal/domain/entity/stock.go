package entity

import (
	"math"
	"time"
)

// Niveles derivados de una fila de stock respecto de sus umbrales.
const (
	StockLevelNormal   = "NORMAL"
	StockLevelLow      = "BAJO"
	StockLevelCritical = "CRITICO"
)

// StockRow cantidad actual de un insumo en un depósito (tabla stock_deposito).
// Única por (deposito, insumo). Invariante: CriticalStock <= MinimumStock.
type StockRow struct {
	ID            string
	WarehouseID   string
	SupplyID      string
	Quantity      int64
	MinimumStock  int64
	CriticalStock int64
	LastMovement  *time.Time
}

// Level deriva el nivel de alerta a partir de la cantidad y los umbrales.
// Se calcula en lectura, nunca se persiste.
func (s *StockRow) Level() string {
	switch {
	case s.Quantity <= s.CriticalStock:
		return StockLevelCritical
	case s.Quantity <= s.MinimumStock:
		return StockLevelLow
	default:
		return StockLevelNormal
	}
}

// NeedsRestock indica si la cantidad está en o por debajo del stock mínimo.
func (s *StockRow) NeedsRestock() bool {
	return s.Quantity <= s.MinimumStock
}

// Percent porcentaje de la cantidad actual sobre el mínimo (0 si el mínimo es 0).
func (s *StockRow) Percent() int {
	if s.MinimumStock <= 0 {
		return 0
	}
	return int(math.Round(float64(s.Quantity) / float64(s.MinimumStock) * 100))
}
