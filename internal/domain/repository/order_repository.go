package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// OrderFilter filtros de listado para órdenes de compra.
type OrderFilter struct {
	Status     string
	SupplierID string
	From       *time.Time
	To         *time.Time
}

// OrderRepository puerto de persistencia para órdenes de compra.
type OrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	// GetByNumber devuelve nil, nil si no existe (chequeo de unicidad).
	GetByNumber(number string) (*entity.PurchaseOrder, error)
	List(filter OrderFilter, limit, offset int) ([]*entity.PurchaseOrder, int, error)
	Update(order *entity.PurchaseOrder) error
	// UpdateTotal escribe el total recalculado de la orden.
	UpdateTotal(orderID string, total decimal.Decimal) error
	Delete(id string) error
}

// OrderDetailRepository puerto de persistencia para detalles de orden de compra.
type OrderDetailRepository interface {
	Create(detail *entity.OrderDetail) error
	GetByID(id string) (*entity.OrderDetail, error)
	ListByOrder(orderID string) ([]*entity.OrderDetail, error)
	// FindByOrderSupply resuelve la unicidad (orden, insumo). nil, nil si no existe.
	FindByOrderSupply(orderID, supplyID string) (*entity.OrderDetail, error)
	Update(detail *entity.OrderDetail) error
	Delete(id string) error
	// SumSubtotals suma los subtotales vigentes de la orden (0 si no hay detalles).
	SumSubtotals(orderID string) (decimal.Decimal, error)
}
