package model

import "time"

// ReporteProducto is an incident report an employee files against a product
// (damaged goods, expired lot, count mismatch). Created in estado "Pendiente".
type ReporteProducto struct {
	ID          uint   `gorm:"primaryKey"`
	ProductoID  uint   `gorm:"not null;index"`
	EmpleadoID  uint   `gorm:"not null;index"`
	TipoReporte string `gorm:"type:varchar(30);not null"`
	Descripcion string `gorm:"not null"`
	Estado      string `gorm:"type:varchar(20);not null;default:'Pendiente'"`
	CreatedAt   time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
	Empleado *Empleado `gorm:"foreignKey:EmpleadoID"`
}

func (ReporteProducto) TableName() string { return "reportes_productos" }
