package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// DetalleOrdenInlineRequest línea enviada junto con la creación de la orden.
type DetalleOrdenInlineRequest struct {
	IDInsumo           string          `json:"id_insumo" validate:"required"`
	CantidadSolicitada int64           `json:"cantidad_solicitada" validate:"required,gt=0"`
	PrecioUnitario     decimal.Decimal `json:"precio_unitario" validate:"required"`
}

// CreateOrdenRequest body para POST /ordenes-compra.
type CreateOrdenRequest struct {
	NumeroOrden          string                      `json:"numero_orden" validate:"required"`
	IDProveedor          string                      `json:"id_proveedor" validate:"required"`
	IDUsuarioSolicita    string                      `json:"id_usuario_solicita" validate:"required"`
	FechaEntregaEstimada *time.Time                  `json:"fecha_entrega_estimada,omitempty"`
	EstadoOrden          string                      `json:"estado_orden,omitempty" validate:"omitempty,oneof=PENDIENTE ENVIADA RECIBIDA_PARCIAL RECIBIDA_TOTAL CANCELADA"`
	Observaciones        string                      `json:"observaciones,omitempty"`
	Detalles             []DetalleOrdenInlineRequest `json:"detalles" validate:"required,min=1,dive"`
}

// UpdateOrdenRequest body para PUT /ordenes-compra/:id (cabecera).
type UpdateOrdenRequest struct {
	FechaEntregaEstimada *time.Time `json:"fecha_entrega_estimada,omitempty"`
	EstadoOrden          *string    `json:"estado_orden,omitempty" validate:"omitempty,oneof=PENDIENTE ENVIADA RECIBIDA_PARCIAL RECIBIDA_TOTAL CANCELADA"`
	Observaciones        *string    `json:"observaciones,omitempty"`
}

// CreateDetalleOrdenRequest body para POST /detalles-orden-compra.
type CreateDetalleOrdenRequest struct {
	IDOrdenCompra      string          `json:"id_orden_compra" validate:"required"`
	IDInsumo           string          `json:"id_insumo" validate:"required"`
	CantidadSolicitada int64           `json:"cantidad_solicitada" validate:"required,gt=0"`
	CantidadRecibida   int64           `json:"cantidad_recibida" validate:"min=0"`
	PrecioUnitario     decimal.Decimal `json:"precio_unitario" validate:"required"`
}

// UpdateDetalleOrdenRequest body para PUT /detalles-orden-compra/:id.
type UpdateDetalleOrdenRequest struct {
	CantidadSolicitada *int64           `json:"cantidad_solicitada,omitempty" validate:"omitempty,gt=0"`
	CantidadRecibida   *int64           `json:"cantidad_recibida,omitempty" validate:"omitempty,min=0"`
	PrecioUnitario     *decimal.Decimal `json:"precio_unitario,omitempty"`
}

// OrdenResponse representación JSON de una orden de compra.
type OrdenResponse struct {
	IDOrdenCompra        string                 `json:"id_orden_compra"`
	NumeroOrden          string                 `json:"numero_orden"`
	IDProveedor          string                 `json:"id_proveedor"`
	IDUsuarioSolicita    string                 `json:"id_usuario_solicita"`
	FechaOrden           time.Time              `json:"fecha_orden"`
	FechaEntregaEstimada *time.Time             `json:"fecha_entrega_estimada,omitempty"`
	EstadoOrden          string                 `json:"estado_orden"`
	Observaciones        string                 `json:"observaciones,omitempty"`
	TotalOrden           decimal.Decimal        `json:"total_orden"`
	Detalles             []DetalleOrdenResponse `json:"detalles,omitempty"`
}

// DetalleOrdenResponse representación JSON de un detalle de orden.
type DetalleOrdenResponse struct {
	IDDetalleOrden     string          `json:"id_detalle_orden"`
	IDOrdenCompra      string          `json:"id_orden_compra"`
	IDInsumo           string          `json:"id_insumo"`
	CantidadSolicitada int64           `json:"cantidad_solicitada"`
	CantidadRecibida   int64           `json:"cantidad_recibida"`
	PrecioUnitario     decimal.Decimal `json:"precio_unitario"`
	Subtotal           decimal.Decimal `json:"subtotal"`
}

// ToOrdenResponse mapea la orden y, si se cargaron, sus detalles.
func ToOrdenResponse(o *entity.PurchaseOrder, details []*entity.OrderDetail) *OrdenResponse {
	resp := &OrdenResponse{
		IDOrdenCompra:        o.ID,
		NumeroOrden:          o.Number,
		IDProveedor:          o.SupplierID,
		IDUsuarioSolicita:    o.UserID,
		FechaOrden:           o.OrderDate,
		FechaEntregaEstimada: o.EstimatedDelivery,
		EstadoOrden:          o.Status,
		Observaciones:        o.Observations,
		TotalOrden:           o.Total,
	}
	for _, d := range details {
		resp.Detalles = append(resp.Detalles, ToDetalleOrdenResponse(d))
	}
	return resp
}

// ToDetalleOrdenResponse mapea un detalle de orden.
func ToDetalleOrdenResponse(d *entity.OrderDetail) DetalleOrdenResponse {
	return DetalleOrdenResponse{
		IDDetalleOrden:     d.ID,
		IDOrdenCompra:      d.OrderID,
		IDInsumo:           d.SupplyID,
		CantidadSolicitada: d.Requested,
		CantidadRecibida:   d.Received,
		PrecioUnitario:     d.UnitPrice,
		Subtotal:           d.Subtotal,
	}
}
