package repository

import (
	"context"

	"tiendapos/internal/model"

	"gorm.io/gorm"
)

type VentaRepository interface {
	// CreateTx inserts the header together with its Detalles.
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uint) (*model.Venta, error)
	List(ctx context.Context, estado string) ([]model.Venta, error)
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uint) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles").
		Preload("Detalles.Producto").
		Preload("Empleado").
		First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) List(ctx context.Context, estado string) ([]model.Venta, error) {
	q := r.db.WithContext(ctx).
		Preload("Detalles").
		Preload("Detalles.Producto").
		Preload("Empleado")
	if estado != "" {
		q = q.Where("estado = ?", estado)
	}
	var ventas []model.Venta
	err := q.Order("created_at DESC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) DB() *gorm.DB { return r.db }
