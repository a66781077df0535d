package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de proveedor.
const (
	InvoicePending = "PENDIENTE"
	InvoicePaid    = "PAGADA"
	InvoiceOverdue = "VENCIDA"
	InvoiceVoided  = "ANULADA"
)

// Invoice factura emitida por un proveedor (tabla factura_proveedor).
// Número único por proveedor.
type Invoice struct {
	ID           string
	Number       string
	IssueDate    time.Time
	DueDate      time.Time
	Total        decimal.Decimal
	SupplierID   string
	OrderID      *string
	Status       string
	Observations string
}

// DaysToDue días hasta el vencimiento respecto de now (negativo si ya venció).
// Derivado en lectura, nunca se persiste.
func (f *Invoice) DaysToDue(now time.Time) int {
	return int(math.Ceil(f.DueDate.Sub(now).Hours() / 24))
}

// IsOverdue factura pendiente con fecha de vencimiento pasada.
func (f *Invoice) IsOverdue(now time.Time) bool {
	return f.Status == InvoicePending && f.DaysToDue(now) < 0
}

// IsDueSoon factura pendiente que vence dentro de los próximos 7 días.
func (f *Invoice) IsDueSoon(now time.Time) bool {
	days := f.DaysToDue(now)
	return f.Status == InvoicePending && days >= 0 && days <= 7
}
