package entity

import "time"

// Warehouse representa un depósito físico donde se almacenan insumos (tabla deposito).
type Warehouse struct {
	ID          string
	Name        string
	Address     string
	Responsible string
	Active      bool
	CreatedAt   time.Time
}
