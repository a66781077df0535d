package dto

import (
	"time"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// CreateAlertaRequest body para POST /alertas-stock (alta manual).
type CreateAlertaRequest struct {
	TipoAlerta        string  `json:"tipo_alerta" validate:"required,oneof=STOCK_MINIMO STOCK_CRITICO VENCIMIENTO_PROXIMO"`
	Mensaje           string  `json:"mensaje" validate:"required"`
	IDInsumo          string  `json:"id_insumo" validate:"required"`
	IDDeposito        string  `json:"id_deposito" validate:"required"`
	IDUsuarioAsignado *string `json:"id_usuario_asignado,omitempty"`
	EstadoAlerta      string  `json:"estado_alerta,omitempty" validate:"omitempty,oneof=ACTIVA VISTA RESUELTA"`
}

// UpdateAlertaRequest body para PUT /alertas-stock/:id. Al pasar a RESUELTA sin
// fecha_resolucion, el sistema la estampa automáticamente.
type UpdateAlertaRequest struct {
	EstadoAlerta      *string    `json:"estado_alerta,omitempty" validate:"omitempty,oneof=ACTIVA VISTA RESUELTA"`
	IDUsuarioAsignado *string    `json:"id_usuario_asignado,omitempty"`
	FechaResolucion   *time.Time `json:"fecha_resolucion,omitempty"`
}

// AlertaResponse representación JSON de una alerta de stock.
type AlertaResponse struct {
	IDAlerta          string     `json:"id_alerta"`
	TipoAlerta        string     `json:"tipo_alerta"`
	Mensaje           string     `json:"mensaje"`
	IDInsumo          string     `json:"id_insumo"`
	IDDeposito        string     `json:"id_deposito"`
	IDUsuarioAsignado *string    `json:"id_usuario_asignado,omitempty"`
	EstadoAlerta      string     `json:"estado_alerta"`
	FechaAlerta       time.Time  `json:"fecha_alerta"`
	FechaResolucion   *time.Time `json:"fecha_resolucion,omitempty"`
}

// ToAlertaResponse mapea una alerta.
func ToAlertaResponse(a *entity.StockAlert) *AlertaResponse {
	return &AlertaResponse{
		IDAlerta:          a.ID,
		TipoAlerta:        a.Type,
		Mensaje:           a.Message,
		IDInsumo:          a.SupplyID,
		IDDeposito:        a.WarehouseID,
		IDUsuarioAsignado: a.AssignedUserID,
		EstadoAlerta:      a.Status,
		FechaAlerta:       a.CreatedAt,
		FechaResolucion:   a.ResolvedAt,
	}
}
