package repository

import (
	"context"

	"tiendapos/internal/model"

	"gorm.io/gorm"
)

// MovimientoFilter narrows the movement history listing.
type MovimientoFilter struct {
	ProductoID      uint
	TipoMovimiento  string
	SoloAjustes     bool // exclude sale and receiving movements
	Limite          int
}

type MovimientoRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error
	List(ctx context.Context, filter MovimientoFilter) ([]model.MovimientoInventario, error)
}

type movimientoRepo struct{ db *gorm.DB }

func NewMovimientoRepository(db *gorm.DB) MovimientoRepository {
	return &movimientoRepo{db: db}
}

func (r *movimientoRepo) CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error {
	return tx.Create(m).Error
}

func (r *movimientoRepo) List(ctx context.Context, filter MovimientoFilter) ([]model.MovimientoInventario, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimientoInventario{}).
		Preload("Producto").
		Preload("Empleado")

	if filter.ProductoID != 0 {
		q = q.Where("producto_id = ?", filter.ProductoID)
	}
	if filter.TipoMovimiento != "" {
		q = q.Where("tipo_movimiento = ?", filter.TipoMovimiento)
	}
	if filter.SoloAjustes {
		q = q.Where("motivo NOT ILIKE '%Venta%' AND motivo NOT ILIKE '%Recepción%'")
	}

	limite := filter.Limite
	if limite < 1 || limite > 500 {
		limite = 50
	}

	var movimientos []model.MovimientoInventario
	err := q.Order("created_at DESC").Limit(limite).Find(&movimientos).Error
	return movimientos, err
}
