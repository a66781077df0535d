package entity

import "time"

// User usuario del back office (tabla usuario). Email único.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	RoleID       string
	Active       bool
	CreatedAt    time.Time
}

// Role rol de acceso (tabla rol).
type Role struct {
	ID   string
	Name string
}
