package entity

import "time"

// Tipos de alerta de stock.
const (
	AlertTypeMinimum  = "STOCK_MINIMO"
	AlertTypeCritical = "STOCK_CRITICO"
	AlertTypeExpiry   = "VENCIMIENTO_PROXIMO"
)

// Estados de una alerta.
const (
	AlertActive   = "ACTIVA"
	AlertSeen     = "VISTA"
	AlertResolved = "RESUELTA"
)

// StockAlert notificación generada al cruzar un umbral de stock
// (tabla alerta_stock). A lo sumo una ACTIVA por (insumo, deposito, tipo).
type StockAlert struct {
	ID             string
	Type           string
	Message        string
	SupplyID       string
	WarehouseID    string
	AssignedUserID *string
	Status         string
	CreatedAt      time.Time
	ResolvedAt     *time.Time
}
