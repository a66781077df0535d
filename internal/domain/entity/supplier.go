package entity

import "time"

// Supplier representa un proveedor de insumos (tabla proveedor). CUIT único.
type Supplier struct {
	ID        string
	Name      string
	CUIT      string
	Address   string
	Phone     string
	Email     string
	Active    bool
	CreatedAt time.Time
}
