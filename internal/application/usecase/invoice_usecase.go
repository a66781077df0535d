package usecase

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso para facturas de proveedor. El número de
// factura es único por proveedor; los campos de vencimiento se derivan en
// lectura y nunca se persisten.
type InvoiceUseCase struct {
	repo      repository.InvoiceRepository
	suppliers repository.SupplierRepository
	orders    repository.OrderRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, suppliers repository.SupplierRepository, orders repository.OrderRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, suppliers: suppliers, orders: orders}
}

// Create crea una factura. Rechaza (numero, proveedor) repetido.
func (uc *InvoiceUseCase) Create(in dto.CreateFacturaRequest) (*entity.Invoice, error) {
	if in.MontoTotal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.FechaVencimiento.Before(in.FechaEmision) {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.suppliers.GetByID(in.IDProveedor)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.IDOrdenCompra != nil {
		order, err := uc.orders.GetByID(*in.IDOrdenCompra)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, domain.ErrNotFound
		}
	}
	existing, err := uc.repo.FindByNumberSupplier(in.NumeroFactura, in.IDProveedor)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	status := in.EstadoFactura
	if status == "" {
		status = entity.InvoicePending
	}
	invoice := &entity.Invoice{
		ID:           uuid.New().String(),
		Number:       in.NumeroFactura,
		IssueDate:    in.FechaEmision,
		DueDate:      in.FechaVencimiento,
		Total:        in.MontoTotal,
		SupplierID:   in.IDProveedor,
		OrderID:      in.IDOrdenCompra,
		Status:       status,
		Observations: in.Observaciones,
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetByID obtiene una factura por ID.
func (uc *InvoiceUseCase) GetByID(id string) (*entity.Invoice, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

// List lista facturas con filtros y paginación; devuelve el total de filas.
func (uc *InvoiceUseCase) List(filter repository.InvoiceFilter, limit, offset int) ([]*entity.Invoice, int, error) {
	return uc.repo.List(filter, limit, offset)
}

// Update actualiza monto, vencimiento, estado u observaciones.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateFacturaRequest) (*entity.Invoice, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if in.FechaVencimiento != nil {
		if in.FechaVencimiento.Before(invoice.IssueDate) {
			return nil, domain.ErrInvalidInput
		}
		invoice.DueDate = *in.FechaVencimiento
	}
	if in.MontoTotal != nil {
		if in.MontoTotal.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		invoice.Total = *in.MontoTotal
	}
	if in.EstadoFactura != nil {
		invoice.Status = *in.EstadoFactura
	}
	if in.Observaciones != nil {
		invoice.Observations = *in.Observaciones
	}
	if err := uc.repo.Update(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Delete elimina una factura. Una factura PAGADA es inmutable.
func (uc *InvoiceUseCase) Delete(id string) error {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	if invoice.Status == entity.InvoicePaid {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}
