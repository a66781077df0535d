package repository

import (
	"time"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// InvoiceFilter filtros de listado para facturas de proveedor.
// OnlyOverdue limita a pendientes con vencimiento anterior a Now.
type InvoiceFilter struct {
	Status      string
	SupplierID  string
	From        *time.Time
	To          *time.Time
	OnlyOverdue bool
	Now         time.Time
}

// InvoiceRepository puerto de persistencia para facturas de proveedor.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// FindByNumberSupplier resuelve la unicidad (numero_factura, proveedor).
	// Devuelve nil, nil si no existe.
	FindByNumberSupplier(number, supplierID string) (*entity.Invoice, error)
	List(filter InvoiceFilter, limit, offset int) ([]*entity.Invoice, int, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) error
}
