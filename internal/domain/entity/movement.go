package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Efecto sobre el stock de un tipo de movimiento.
const (
	StockEffectPositive = "POSITIVO" // suma en depósito destino
	StockEffectNegative = "NEGATIVO" // resta en depósito origen
	StockEffectNeutral  = "NEUTRO"   // no toca stock (ej. reclasificación interna)
)

// Estados de un movimiento de inventario.
const (
	MovementPending   = "PENDIENTE"
	MovementCompleted = "COMPLETADO"
	MovementCancelled = "CANCELADO"
)

// MovementType clasifica los movimientos y define su efecto sobre el stock
// (tabla tipo_movimiento).
type MovementType struct {
	ID          string
	Name        string
	StockEffect string // POSITIVO | NEGATIVO | NEUTRO
	Active      bool
}

// MovementReason motivo de movimiento; pertenece a exactamente un tipo
// (tabla razon_movimiento).
type MovementReason struct {
	ID     string
	Name   string
	TypeID string
}

// Movement cabecera de un movimiento de inventario (tabla movimiento_inventario).
// Posee sus detalles; al eliminarse, los detalles se eliminan en cascada.
// Solo la transición a COMPLETADO aplica stock, y lo hace una única vez.
type Movement struct {
	ID            string
	Date          time.Time
	OriginID      *string
	DestinationID *string
	TypeID        string
	ReasonID      *string
	UserID        string
	OrderID       *string
	VoucherNumber string
	Observations  string
	Status        string
	CreatedAt     time.Time
}

// Completed indica si el movimiento ya aplicó su efecto sobre el stock.
func (m *Movement) Completed() bool {
	return m.Status == MovementCompleted
}

// MovementDetail línea de un movimiento: insumo + cantidad (+ lote opcional).
// Única por (movimiento, insumo, lote).
type MovementDetail struct {
	ID         string
	MovementID string
	SupplyID   string
	Quantity   int64
	UnitCost   *decimal.Decimal
	Lot        string
	ExpiryDate *time.Time
}
