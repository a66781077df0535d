package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

var ahora = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func factura(due time.Time, status string) *entity.Invoice {
	return &entity.Invoice{
		Number:    "FC-A-0001",
		IssueDate: ahora.AddDate(0, -1, 0),
		DueDate:   due,
		Status:    status,
	}
}

func TestInvoice_DaysToDue(t *testing.T) {
	f := factura(ahora.AddDate(0, 0, 10), entity.InvoicePending)
	assert.Equal(t, 10, f.DaysToDue(ahora))

	vencida := factura(ahora.AddDate(0, 0, -3), entity.InvoicePending)
	assert.Equal(t, -3, vencida.DaysToDue(ahora))
}

// Vencida = pendiente con fecha de vencimiento pasada; una PAGADA nunca vence.
func TestInvoice_IsOverdue(t *testing.T) {
	assert.True(t, factura(ahora.AddDate(0, 0, -1), entity.InvoicePending).IsOverdue(ahora))
	assert.False(t, factura(ahora.AddDate(0, 0, 1), entity.InvoicePending).IsOverdue(ahora))
	assert.False(t, factura(ahora.AddDate(0, 0, -30), entity.InvoicePaid).IsOverdue(ahora))
}

// Por vencer = pendiente con vencimiento dentro de los próximos 7 días.
func TestInvoice_IsDueSoon(t *testing.T) {
	assert.True(t, factura(ahora, entity.InvoicePending).IsDueSoon(ahora))
	assert.True(t, factura(ahora.AddDate(0, 0, 7), entity.InvoicePending).IsDueSoon(ahora))
	assert.False(t, factura(ahora.AddDate(0, 0, 8), entity.InvoicePending).IsDueSoon(ahora))
	assert.False(t, factura(ahora.AddDate(0, 0, -1), entity.InvoicePending).IsDueSoon(ahora))
	assert.False(t, factura(ahora.AddDate(0, 0, 3), entity.InvoiceVoided).IsDueSoon(ahora))
}

func TestPurchaseOrder_Terminal(t *testing.T) {
	assert.False(t, (&entity.PurchaseOrder{Status: entity.OrderPending}).Terminal())
	assert.False(t, (&entity.PurchaseOrder{Status: entity.OrderPartialReceived}).Terminal())
	assert.True(t, (&entity.PurchaseOrder{Status: entity.OrderTotalReceived}).Terminal())
	assert.True(t, (&entity.PurchaseOrder{Status: entity.OrderCancelled}).Terminal())
}
