package model

import "time"

// Recepcion records one goods-receipt event, either for an existing
// product or the initial stock of a newly created one. Immutable.
type Recepcion struct {
	ID               uint      `gorm:"primaryKey"`
	ProductoID       uint      `gorm:"not null;index"`
	EmpleadoID       uint      `gorm:"not null;index"`
	CantidadRecibida int       `gorm:"not null"`
	FechaRecepcion   time.Time `gorm:"not null"`
	Observaciones    *string
	CreatedAt        time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
	Empleado *Empleado `gorm:"foreignKey:EmpleadoID"`
}

func (Recepcion) TableName() string { return "recepcion_productos" }
