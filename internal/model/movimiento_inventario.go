package model

import "time"

// Movement kinds. Cantidad always holds the magnitude of the change;
// the sign lives in TipoMovimiento.
const (
	MovimientoEntrada = "Entrada"
	MovimientoSalida  = "Salida"
)

// MovimientoInventario is the audit ledger: every accepted stock mutation
// writes exactly one row whose Cantidad equals |stock nuevo - stock anterior|.
// Rows are immutable once created.
type MovimientoInventario struct {
	ID             uint   `gorm:"primaryKey"`
	ProductoID     uint   `gorm:"not null;index"`
	EmpleadoID     uint   `gorm:"not null;index"`
	TipoMovimiento string `gorm:"type:varchar(10);not null"`
	Cantidad       int    `gorm:"not null"`
	Motivo         string
	CreatedAt      time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
	Empleado *Empleado `gorm:"foreignKey:EmpleadoID"`
}

func (MovimientoInventario) TableName() string { return "movimientos_inventario" }
