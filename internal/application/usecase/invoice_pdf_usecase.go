package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// InvoiceLineForPDF línea del comprobante: detalle de orden enriquecido con el
// nombre del insumo.
type InvoiceLineForPDF struct {
	SupplyName string
	Quantity   int64
	UnitPrice  decimal.Decimal
	Subtotal   decimal.Decimal
}

// InvoicePDFGenerator puerto de render del comprobante de factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, supplier *entity.Supplier, lines []InvoiceLineForPDF) ([]byte, error)
}

// InvoicePDFUseCase genera el comprobante PDF de una factura de proveedor.
// Si la factura referencia una orden de compra, sus líneas se vuelcan a la tabla
// del comprobante con los nombres de insumo resueltos.
type InvoicePDFUseCase struct {
	invoices     repository.InvoiceRepository
	suppliers    repository.SupplierRepository
	orderDetails repository.OrderDetailRepository
	supplies     repository.SupplyRepository
	generator    InvoicePDFGenerator
}

// NewInvoicePDFUseCase construye el caso de uso inyectando sus dependencias.
func NewInvoicePDFUseCase(
	invoices repository.InvoiceRepository,
	suppliers repository.SupplierRepository,
	orderDetails repository.OrderDetailRepository,
	supplies repository.SupplyRepository,
	generator InvoicePDFGenerator,
) *InvoicePDFUseCase {
	return &InvoicePDFUseCase{
		invoices:     invoices,
		suppliers:    suppliers,
		orderDetails: orderDetails,
		supplies:     supplies,
		generator:    generator,
	}
}

// DownloadInvoicePDF recupera factura, proveedor y líneas, y genera el PDF.
// Retorna (pdfBytes, filename, nil) o domain.ErrNotFound si la factura no existe.
func (uc *InvoicePDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoices.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	supplier, err := uc.suppliers.GetByID(inv.SupplierID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener proveedor: %w", err)
	}
	if supplier == nil {
		return nil, "", domain.ErrNotFound
	}

	var lines []InvoiceLineForPDF
	if inv.OrderID != nil {
		details, err := uc.orderDetails.ListByOrder(*inv.OrderID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener detalles de orden: %w", err)
		}
		for _, d := range details {
			name := "Insumo " + d.SupplyID // fallback
			if supply, sErr := uc.supplies.GetByID(d.SupplyID); sErr == nil && supply != nil {
				name = supply.Name
			}
			lines = append(lines, InvoiceLineForPDF{
				SupplyName: name,
				Quantity:   d.Requested,
				UnitPrice:  d.UnitPrice,
				Subtotal:   d.Subtotal,
			})
		}
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, supplier, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%s.pdf", inv.Number)
	return pdfBytes, filename, nil
}
