package dto

import (
	"time"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// CreateStockRequest body para POST /stock-depositos.
type CreateStockRequest struct {
	IDDeposito     string `json:"id_deposito" validate:"required"`
	IDInsumo       string `json:"id_insumo" validate:"required"`
	CantidadActual int64  `json:"cantidad_actual" validate:"min=0"`
	StockMinimo    int64  `json:"stock_minimo" validate:"min=0"`
	StockCritico   int64  `json:"stock_critico" validate:"min=0"`
}

// UpdateStockRequest body para PUT /stock-depositos/:id. Campos opcionales;
// los ausentes conservan su valor actual.
type UpdateStockRequest struct {
	CantidadActual *int64     `json:"cantidad_actual,omitempty" validate:"omitempty,min=0"`
	StockMinimo    *int64     `json:"stock_minimo,omitempty" validate:"omitempty,min=0"`
	StockCritico   *int64     `json:"stock_critico,omitempty" validate:"omitempty,min=0"`
	FechaUltimoMov *time.Time `json:"fecha_ultimo_mov,omitempty"`
}

// StockResponse representación JSON de una fila de stock, con los campos
// derivados calculados en lectura (nunca persistidos).
type StockResponse struct {
	IDStock         string     `json:"id_stock"`
	IDDeposito      string     `json:"id_deposito"`
	IDInsumo        string     `json:"id_insumo"`
	CantidadActual  int64      `json:"cantidad_actual"`
	StockMinimo     int64      `json:"stock_minimo"`
	StockCritico    int64      `json:"stock_critico"`
	FechaUltimoMov  *time.Time `json:"fecha_ultimo_mov,omitempty"`
	EstadoStock     string     `json:"estado_stock"`
	PorcentajeStock int        `json:"porcentaje_stock"`
	NecesitaRepo    bool       `json:"necesita_reposicion"`
}

// ToStockResponse mapea la fila y deriva estado_stock, porcentaje y reposición.
func ToStockResponse(s *entity.StockRow) *StockResponse {
	return &StockResponse{
		IDStock:         s.ID,
		IDDeposito:      s.WarehouseID,
		IDInsumo:        s.SupplyID,
		CantidadActual:  s.Quantity,
		StockMinimo:     s.MinimumStock,
		StockCritico:    s.CriticalStock,
		FechaUltimoMov:  s.LastMovement,
		EstadoStock:     s.Level(),
		PorcentajeStock: s.Percent(),
		NecesitaRepo:    s.NeedsRestock(),
	}
}
