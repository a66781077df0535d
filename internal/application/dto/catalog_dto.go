package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategoriaRequest body para POST /categorias.
type CreateCategoriaRequest struct {
	NombreCategoria string `json:"nombre_categoria" validate:"required"`
	Descripcion     string `json:"descripcion,omitempty"`
}

// UpdateCategoriaRequest body para PUT /categorias/:id.
type UpdateCategoriaRequest struct {
	NombreCategoria *string `json:"nombre_categoria,omitempty"`
	Descripcion     *string `json:"descripcion,omitempty"`
}

// CategoriaResponse representación JSON de una categoría.
type CategoriaResponse struct {
	IDCategoria     string `json:"id_categoria"`
	NombreCategoria string `json:"nombre_categoria"`
	Descripcion     string `json:"descripcion,omitempty"`
}

// ToCategoriaResponse mapea una categoría.
func ToCategoriaResponse(c *entity.Category) *CategoriaResponse {
	return &CategoriaResponse{IDCategoria: c.ID, NombreCategoria: c.Name, Descripcion: c.Description}
}

// ── Insumos ───────────────────────────────────────────────────────────────────

// CreateInsumoRequest body para POST /insumos.
type CreateInsumoRequest struct {
	NombreInsumo      string          `json:"nombre_insumo" validate:"required"`
	DescripcionInsumo string          `json:"descripcion_insumo,omitempty"`
	CostoUnitario     decimal.Decimal `json:"costo_unitario"`
	FechaExpiracion   *time.Time      `json:"fecha_expiracion,omitempty"`
	IDCategoria       string          `json:"id_categoria" validate:"required"`
	IDProveedor       string          `json:"id_proveedor" validate:"required"`
}

// UpdateInsumoRequest body para PUT /insumos/:id.
type UpdateInsumoRequest struct {
	NombreInsumo      *string          `json:"nombre_insumo,omitempty"`
	DescripcionInsumo *string          `json:"descripcion_insumo,omitempty"`
	CostoUnitario     *decimal.Decimal `json:"costo_unitario,omitempty"`
	FechaExpiracion   *time.Time       `json:"fecha_expiracion,omitempty"`
	IDCategoria       *string          `json:"id_categoria,omitempty"`
	IDProveedor       *string          `json:"id_proveedor,omitempty"`
}

// InsumoResponse representación JSON de un insumo.
type InsumoResponse struct {
	IDInsumo          string          `json:"id_insumo"`
	NombreInsumo      string          `json:"nombre_insumo"`
	DescripcionInsumo string          `json:"descripcion_insumo,omitempty"`
	CostoUnitario     decimal.Decimal `json:"costo_unitario"`
	FechaExpiracion   *time.Time      `json:"fecha_expiracion,omitempty"`
	IDCategoria       string          `json:"id_categoria"`
	IDProveedor       string          `json:"id_proveedor"`
	EstadoInsumo      bool            `json:"estado_insumo"`
}

// ToInsumoResponse mapea un insumo.
func ToInsumoResponse(s *entity.Supply) *InsumoResponse {
	return &InsumoResponse{
		IDInsumo:          s.ID,
		NombreInsumo:      s.Name,
		DescripcionInsumo: s.Description,
		CostoUnitario:     s.UnitCost,
		FechaExpiracion:   s.ExpiryDate,
		IDCategoria:       s.CategoryID,
		IDProveedor:       s.SupplierID,
		EstadoInsumo:      s.Active,
	}
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateProveedorRequest body para POST /proveedores.
type CreateProveedorRequest struct {
	NombreProveedor   string `json:"nombre_proveedor" validate:"required"`
	CUITProveedor     string `json:"cuit_proveedor" validate:"required"`
	Direccion         string `json:"direccion,omitempty"`
	TelefonoProveedor string `json:"telefono_proveedor,omitempty"`
	Email             string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateProveedorRequest body para PUT /proveedores/:id.
type UpdateProveedorRequest struct {
	NombreProveedor   *string `json:"nombre_proveedor,omitempty"`
	Direccion         *string `json:"direccion,omitempty"`
	TelefonoProveedor *string `json:"telefono_proveedor,omitempty"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
}

// ProveedorResponse representación JSON de un proveedor.
type ProveedorResponse struct {
	IDProveedor       string `json:"id_proveedor"`
	NombreProveedor   string `json:"nombre_proveedor"`
	CUITProveedor     string `json:"cuit_proveedor"`
	Direccion         string `json:"direccion,omitempty"`
	TelefonoProveedor string `json:"telefono_proveedor,omitempty"`
	Email             string `json:"email,omitempty"`
}

// ToProveedorResponse mapea un proveedor.
func ToProveedorResponse(p *entity.Supplier) *ProveedorResponse {
	return &ProveedorResponse{
		IDProveedor:       p.ID,
		NombreProveedor:   p.Name,
		CUITProveedor:     p.CUIT,
		Direccion:         p.Address,
		TelefonoProveedor: p.Phone,
		Email:             p.Email,
	}
}

// ── Depósitos ─────────────────────────────────────────────────────────────────

// CreateDepositoRequest body para POST /depositos.
type CreateDepositoRequest struct {
	NomDeposito string `json:"nom_deposito" validate:"required"`
	DirDeposito string `json:"dir_deposito,omitempty"`
	Responsable string `json:"responsable,omitempty"`
}

// UpdateDepositoRequest body para PUT /depositos/:id.
type UpdateDepositoRequest struct {
	NomDeposito *string `json:"nom_deposito,omitempty"`
	DirDeposito *string `json:"dir_deposito,omitempty"`
	Responsable *string `json:"responsable,omitempty"`
}

// DepositoResponse representación JSON de un depósito.
type DepositoResponse struct {
	IDDeposito     string `json:"id_deposito"`
	NomDeposito    string `json:"nom_deposito"`
	DirDeposito    string `json:"dir_deposito,omitempty"`
	Responsable    string `json:"responsable,omitempty"`
	EstadoDeposito bool   `json:"estado_deposito"`
}

// ToDepositoResponse mapea un depósito.
func ToDepositoResponse(w *entity.Warehouse) *DepositoResponse {
	return &DepositoResponse{
		IDDeposito:     w.ID,
		NomDeposito:    w.Name,
		DirDeposito:    w.Address,
		Responsable:    w.Responsible,
		EstadoDeposito: w.Active,
	}
}

// ── Tipos y razones de movimiento ────────────────────────────────────────────

// CreateTipoMovimientoRequest body para POST /tipos-movimiento.
type CreateTipoMovimientoRequest struct {
	NombreTipo  string `json:"nombre_tipo" validate:"required"`
	AfectaStock string `json:"afecta_stock" validate:"required,oneof=POSITIVO NEGATIVO NEUTRO"`
}

// UpdateTipoMovimientoRequest body para PUT /tipos-movimiento/:id.
type UpdateTipoMovimientoRequest struct {
	NombreTipo  *string `json:"nombre_tipo,omitempty"`
	AfectaStock *string `json:"afecta_stock,omitempty" validate:"omitempty,oneof=POSITIVO NEGATIVO NEUTRO"`
	Estado      *bool   `json:"estado,omitempty"`
}

// TipoMovimientoResponse representación JSON de un tipo de movimiento.
type TipoMovimientoResponse struct {
	IDTipoMovimiento string `json:"id_tipo_movimiento"`
	NombreTipo       string `json:"nombre_tipo"`
	AfectaStock      string `json:"afecta_stock"`
	Estado           bool   `json:"estado"`
}

// ToTipoMovimientoResponse mapea un tipo de movimiento.
func ToTipoMovimientoResponse(t *entity.MovementType) *TipoMovimientoResponse {
	return &TipoMovimientoResponse{
		IDTipoMovimiento: t.ID,
		NombreTipo:       t.Name,
		AfectaStock:      t.StockEffect,
		Estado:           t.Active,
	}
}

// CreateRazonMovimientoRequest body para POST /razones-movimiento.
type CreateRazonMovimientoRequest struct {
	NombreRazon      string `json:"nombre_razon" validate:"required"`
	IDTipoMovimiento string `json:"id_tipo_movimiento" validate:"required"`
}

// UpdateRazonMovimientoRequest body para PUT /razones-movimiento/:id.
type UpdateRazonMovimientoRequest struct {
	NombreRazon *string `json:"nombre_razon,omitempty"`
}

// RazonMovimientoResponse representación JSON de una razón de movimiento.
type RazonMovimientoResponse struct {
	IDRazonMovimiento string `json:"id_razon_movimiento"`
	NombreRazon       string `json:"nombre_razon"`
	IDTipoMovimiento  string `json:"id_tipo_movimiento"`
}

// ToRazonMovimientoResponse mapea una razón de movimiento.
func ToRazonMovimientoResponse(r *entity.MovementReason) *RazonMovimientoResponse {
	return &RazonMovimientoResponse{
		IDRazonMovimiento: r.ID,
		NombreRazon:       r.Name,
		IDTipoMovimiento:  r.TypeID,
	}
}
