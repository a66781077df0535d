package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// DetalleMovimientoRequest línea de un movimiento en el body de creación.
type DetalleMovimientoRequest struct {
	IDInsumo         string           `json:"id_insumo" validate:"required"`
	Cantidad         int64            `json:"cantidad" validate:"required,gt=0"`
	CostoUnitario    *decimal.Decimal `json:"costo_unitario,omitempty"`
	Lote             string           `json:"lote,omitempty"`
	FechaVencimiento *time.Time       `json:"fecha_vencimiento,omitempty"`
}

// CreateMovimientoRequest body para POST /movimientos-inventario.
// detalles debe tener al menos una línea.
type CreateMovimientoRequest struct {
	IDDepositoOrigen  *string                    `json:"id_deposito_origen,omitempty"`
	IDDepositoDestino *string                    `json:"id_deposito_destino,omitempty"`
	IDTipoMovimiento  string                     `json:"id_tipo_movimiento" validate:"required"`
	IDRazonMovimiento *string                    `json:"id_razon_movimiento,omitempty"`
	IDUsuario         string                     `json:"id_usuario" validate:"required"`
	IDOrdenCompra     *string                    `json:"id_orden_compra,omitempty"`
	NumeroComprobante string                     `json:"numero_comprobante,omitempty"`
	Observaciones     string                     `json:"observaciones,omitempty"`
	EstadoMovimiento  string                     `json:"estado_movimiento,omitempty" validate:"omitempty,oneof=PENDIENTE COMPLETADO CANCELADO"`
	Detalles          []DetalleMovimientoRequest `json:"detalles" validate:"required,min=1,dive"`
}

// UpdateMovimientoRequest body para PUT /movimientos-inventario/:id.
type UpdateMovimientoRequest struct {
	NumeroComprobante *string `json:"numero_comprobante,omitempty"`
	Observaciones     *string `json:"observaciones,omitempty"`
	EstadoMovimiento  *string `json:"estado_movimiento,omitempty" validate:"omitempty,oneof=PENDIENTE COMPLETADO CANCELADO"`
}

// CreateDetalleMovimientoRequest body para POST /detalles-movimiento.
type CreateDetalleMovimientoRequest struct {
	IDMovimiento     string           `json:"id_movimiento" validate:"required"`
	IDInsumo         string           `json:"id_insumo" validate:"required"`
	Cantidad         int64            `json:"cantidad" validate:"required,gt=0"`
	CostoUnitario    *decimal.Decimal `json:"costo_unitario,omitempty"`
	Lote             string           `json:"lote,omitempty"`
	FechaVencimiento *time.Time       `json:"fecha_vencimiento,omitempty"`
}

// UpdateDetalleMovimientoRequest body para PUT /detalles-movimiento/:id.
type UpdateDetalleMovimientoRequest struct {
	Cantidad         *int64           `json:"cantidad,omitempty" validate:"omitempty,gt=0"`
	CostoUnitario    *decimal.Decimal `json:"costo_unitario,omitempty"`
	Lote             *string          `json:"lote,omitempty"`
	FechaVencimiento *time.Time       `json:"fecha_vencimiento,omitempty"`
}

// MovimientoResponse representación JSON de un movimiento.
type MovimientoResponse struct {
	IDMovimiento      string                      `json:"id_movimiento"`
	FechaMovimiento   time.Time                   `json:"fecha_movimiento"`
	IDDepositoOrigen  *string                     `json:"id_deposito_origen,omitempty"`
	IDDepositoDestino *string                     `json:"id_deposito_destino,omitempty"`
	IDTipoMovimiento  string                      `json:"id_tipo_movimiento"`
	IDRazonMovimiento *string                     `json:"id_razon_movimiento,omitempty"`
	IDUsuario         string                      `json:"id_usuario"`
	IDOrdenCompra     *string                     `json:"id_orden_compra,omitempty"`
	NumeroComprobante string                      `json:"numero_comprobante,omitempty"`
	Observaciones     string                      `json:"observaciones,omitempty"`
	EstadoMovimiento  string                      `json:"estado_movimiento"`
	Detalles          []DetalleMovimientoResponse `json:"detalles,omitempty"`
	// Derivados en lectura sobre los detalles cargados.
	TotalInsumos  int             `json:"total_insumos,omitempty"`
	TotalCantidad int64           `json:"total_cantidad,omitempty"`
	CostoTotal    decimal.Decimal `json:"costo_total,omitempty"`
}

// DetalleMovimientoResponse representación JSON de un detalle de movimiento.
type DetalleMovimientoResponse struct {
	IDDetalle        string           `json:"id_detalle"`
	IDMovimiento     string           `json:"id_movimiento"`
	IDInsumo         string           `json:"id_insumo"`
	Cantidad         int64            `json:"cantidad"`
	CostoUnitario    *decimal.Decimal `json:"costo_unitario,omitempty"`
	Lote             string           `json:"lote,omitempty"`
	FechaVencimiento *time.Time       `json:"fecha_vencimiento,omitempty"`
}

// ToMovimientoResponse mapea la cabecera y sus detalles, calculando los
// totales derivados (total_insumos, total_cantidad, costo_total).
func ToMovimientoResponse(m *entity.Movement, details []*entity.MovementDetail) *MovimientoResponse {
	resp := &MovimientoResponse{
		IDMovimiento:      m.ID,
		FechaMovimiento:   m.Date,
		IDDepositoOrigen:  m.OriginID,
		IDDepositoDestino: m.DestinationID,
		IDTipoMovimiento:  m.TypeID,
		IDRazonMovimiento: m.ReasonID,
		IDUsuario:         m.UserID,
		IDOrdenCompra:     m.OrderID,
		NumeroComprobante: m.VoucherNumber,
		Observaciones:     m.Observations,
		EstadoMovimiento:  m.Status,
	}
	costo := decimal.Zero
	for _, d := range details {
		resp.Detalles = append(resp.Detalles, ToDetalleMovimientoResponse(d))
		resp.TotalCantidad += d.Quantity
		if d.UnitCost != nil {
			costo = costo.Add(d.UnitCost.Mul(decimal.NewFromInt(d.Quantity)))
		}
	}
	resp.TotalInsumos = len(details)
	resp.CostoTotal = costo
	return resp
}

// ToDetalleMovimientoResponse mapea un detalle de movimiento.
func ToDetalleMovimientoResponse(d *entity.MovementDetail) DetalleMovimientoResponse {
	return DetalleMovimientoResponse{
		IDDetalle:        d.ID,
		IDMovimiento:     d.MovementID,
		IDInsumo:         d.SupplyID,
		Cantidad:         d.Quantity,
		CostoUnitario:    d.UnitCost,
		Lote:             d.Lot,
		FechaVencimiento: d.ExpiryDate,
	}
}
