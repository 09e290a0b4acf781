package repository

import (
	"context"

	"tiendapos/internal/model"

	"gorm.io/gorm"
)

type RecepcionRepository interface {
	CreateTx(tx *gorm.DB, r *model.Recepcion) error
	List(ctx context.Context, limite int) ([]model.Recepcion, error)
}

type recepcionRepo struct{ db *gorm.DB }

func NewRecepcionRepository(db *gorm.DB) RecepcionRepository {
	return &recepcionRepo{db: db}
}

func (r *recepcionRepo) CreateTx(tx *gorm.DB, rec *model.Recepcion) error {
	return tx.Create(rec).Error
}

func (r *recepcionRepo) List(ctx context.Context, limite int) ([]model.Recepcion, error) {
	if limite < 1 || limite > 500 {
		limite = 50
	}
	var recepciones []model.Recepcion
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Preload("Empleado").
		Order("created_at DESC").
		Limit(limite).
		Find(&recepciones).Error
	return recepciones, err
}
