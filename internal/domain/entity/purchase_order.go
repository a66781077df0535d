package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	OrderPending         = "PENDIENTE"
	OrderSent            = "ENVIADA"
	OrderPartialReceived = "RECIBIDA_PARCIAL"
	OrderTotalReceived   = "RECIBIDA_TOTAL"
	OrderCancelled       = "CANCELADA"
)

// PurchaseOrder orden de compra a proveedor (tabla orden_compra).
// Total es derivado: suma de los subtotales de sus detalles, recalculado
// transaccionalmente en cada mutación de detalle.
type PurchaseOrder struct {
	ID                string
	Number            string
	SupplierID        string
	UserID            string
	OrderDate         time.Time
	EstimatedDelivery *time.Time
	Status            string
	Observations      string
	Total             decimal.Decimal
}

// Terminal indica si la orden ya no admite cambios en sus detalles.
func (o *PurchaseOrder) Terminal() bool {
	return o.Status == OrderTotalReceived || o.Status == OrderCancelled
}

// OrderDetail línea de una orden de compra (tabla detalle_orden_compra).
// Única por (orden, insumo). Invariante: Received <= Requested.
type OrderDetail struct {
	ID        string
	OrderID   string
	SupplyID  string
	Requested int64
	Received  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// ComputeSubtotal recalcula el subtotal = precio unitario × cantidad solicitada.
func (d *OrderDetail) ComputeSubtotal() {
	d.Subtotal = d.UnitPrice.Mul(decimal.NewFromInt(d.Requested))
}
