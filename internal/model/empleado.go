package model

import "time"

// Empleado stores store staff with bcrypt-hashed credentials.
// The ID is assigned by the administrator at creation (badge number),
// not auto-generated.
type Empleado struct {
	ID             uint   `gorm:"primaryKey"`
	NombreCompleto string `gorm:"not null"`
	Usuario        string `gorm:"uniqueIndex;not null"`
	Contrasena     string `gorm:"not null"` // bcrypt hash
	Telefono       string
	Cargo          string `gorm:"type:varchar(30);not null"`
	Activo         bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
