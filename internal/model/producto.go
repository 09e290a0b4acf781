package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is the single source of truth for current stock.
// Codigo is stored uppercased; the unique index is the authoritative
// guard against duplicate codes (the code suggestion endpoint is advisory).
type Producto struct {
	ID           uint            `gorm:"primaryKey"`
	Codigo       string          `gorm:"uniqueIndex;not null"`
	Nombre       string          `gorm:"index;not null"`
	Precio       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockActual  int             `gorm:"not null;default:0"`
	StockMinimo  int             `gorm:"not null;default:5"`
	UnidadMedida string          `gorm:"not null;default:'unidad'"`
	TipoProducto string          `gorm:"not null"`
	Activo       bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	EstadoStockBajo   = "Bajo stock"
	EstadoStockNormal = "Stock normal"
)

// EstadoStock is derived, never stored.
func (p *Producto) EstadoStock() string {
	if p.StockActual <= p.StockMinimo {
		return EstadoStockBajo
	}
	return EstadoStockNormal
}
