package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// CreateFacturaRequest body para POST /facturas.
type CreateFacturaRequest struct {
	NumeroFactura    string          `json:"numero_factura" validate:"required"`
	FechaEmision     time.Time       `json:"fecha_emision" validate:"required"`
	FechaVencimiento time.Time       `json:"fecha_vencimiento" validate:"required"`
	MontoTotal       decimal.Decimal `json:"monto_total" validate:"required"`
	IDProveedor      string          `json:"id_proveedor" validate:"required"`
	IDOrdenCompra    *string         `json:"id_orden_compra,omitempty"`
	EstadoFactura    string          `json:"estado_factura,omitempty" validate:"omitempty,oneof=PENDIENTE PAGADA VENCIDA ANULADA"`
	Observaciones    string          `json:"observaciones,omitempty"`
}

// UpdateFacturaRequest body para PUT /facturas/:id.
type UpdateFacturaRequest struct {
	FechaVencimiento *time.Time       `json:"fecha_vencimiento,omitempty"`
	MontoTotal       *decimal.Decimal `json:"monto_total,omitempty"`
	EstadoFactura    *string          `json:"estado_factura,omitempty" validate:"omitempty,oneof=PENDIENTE PAGADA VENCIDA ANULADA"`
	Observaciones    *string          `json:"observaciones,omitempty"`
}

// FacturaResponse representación JSON de una factura, con los campos
// derivados de vencimiento calculados en lectura.
type FacturaResponse struct {
	IDFactura           string          `json:"id_factura"`
	NumeroFactura       string          `json:"numero_factura"`
	FechaEmision        time.Time       `json:"fecha_emision"`
	FechaVencimiento    time.Time       `json:"fecha_vencimiento"`
	MontoTotal          decimal.Decimal `json:"monto_total"`
	IDProveedor         string          `json:"id_proveedor"`
	IDOrdenCompra       *string         `json:"id_orden_compra,omitempty"`
	EstadoFactura       string          `json:"estado_factura"`
	Observaciones       string          `json:"observaciones,omitempty"`
	DiasParaVencimiento int             `json:"dias_para_vencimiento"`
	EstaVencida         bool            `json:"esta_vencida"`
	EstaPorVencer       bool            `json:"esta_por_vencer"`
}

// ToFacturaResponse mapea la factura derivando los campos de vencimiento
// respecto de now.
func ToFacturaResponse(f *entity.Invoice, now time.Time) *FacturaResponse {
	return &FacturaResponse{
		IDFactura:           f.ID,
		NumeroFactura:       f.Number,
		FechaEmision:        f.IssueDate,
		FechaVencimiento:    f.DueDate,
		MontoTotal:          f.Total,
		IDProveedor:         f.SupplierID,
		IDOrdenCompra:       f.OrderID,
		EstadoFactura:       f.Status,
		Observaciones:       f.Observations,
		DiasParaVencimiento: f.DaysToDue(now),
		EstaVencida:         f.IsOverdue(now),
		EstaPorVencer:       f.IsDueSoon(now),
	}
}
