package entity

import "time"

// Category agrupa insumos por rubro (tabla categoria).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
