package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supply representa un insumo del catálogo (tabla insumo).
// La baja es lógica: Active pasa a false, la fila no se elimina.
type Supply struct {
	ID          string
	Name        string
	Description string
	UnitCost    decimal.Decimal
	ExpiryDate  *time.Time
	CategoryID  string
	SupplierID  string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
