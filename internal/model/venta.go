package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaCompletada is the only terminal state the sale engine produces.
const VentaCompletada = "Completada"

// Venta is the sale header. It owns its Detalles; both are created in the
// same transaction or not at all.
type Venta struct {
	ID          uint            `gorm:"primaryKey"`
	EmpleadoID  uint            `gorm:"not null;index"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PagoCliente decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Cambio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Estado      string          `gorm:"type:varchar(20);not null;default:'Completada'"`
	CreatedAt   time.Time

	Detalles []DetalleVenta `gorm:"foreignKey:VentaID"`
	Empleado *Empleado      `gorm:"foreignKey:EmpleadoID"`
}

// DetalleVenta is one sale line. PrecioUnitario captures the catalog price
// at sale time; Subtotal = Cantidad * PrecioUnitario.
type DetalleVenta struct {
	ID             uint            `gorm:"primaryKey"`
	VentaID        uint            `gorm:"not null;index"`
	ProductoID     uint            `gorm:"not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleVenta) TableName() string { return "detalle_ventas" }
