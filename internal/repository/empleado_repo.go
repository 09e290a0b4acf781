package repository

import (
	"context"

	"tiendapos/internal/model"

	"gorm.io/gorm"
)

type EmpleadoRepository interface {
	Create(ctx context.Context, e *model.Empleado) error
	FindByID(ctx context.Context, id uint) (*model.Empleado, error)
	FindByUsuario(ctx context.Context, usuario string) (*model.Empleado, error)
	List(ctx context.Context) ([]model.Empleado, error)
	Buscar(ctx context.Context, termino string) ([]model.Empleado, error)
	FiltrarPorCargo(ctx context.Context, cargo string) ([]model.Empleado, error)
	Update(ctx context.Context, e *model.Empleado) error
	SoftDelete(ctx context.Context, id uint) error
	// UsuarioExiste checks username uniqueness, optionally excluding one
	// employee id (for edits).
	UsuarioExiste(ctx context.Context, usuario string, excluirID uint) (bool, error)
}

type empleadoRepo struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository { return &empleadoRepo{db: db} }

func (r *empleadoRepo) Create(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empleadoRepo) FindByID(ctx context.Context, id uint) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empleadoRepo) FindByUsuario(ctx context.Context, usuario string) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).
		Where("usuario = ? AND activo = true", usuario).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empleadoRepo) List(ctx context.Context) ([]model.Empleado, error) {
	var empleados []model.Empleado
	err := r.db.WithContext(ctx).
		Where("activo = true").
		Order("created_at DESC").
		Find(&empleados).Error
	return empleados, err
}

func (r *empleadoRepo) Buscar(ctx context.Context, termino string) ([]model.Empleado, error) {
	var empleados []model.Empleado
	contiene := "%" + termino + "%"
	err := r.db.WithContext(ctx).
		Where("(nombre_completo ILIKE ? OR usuario ILIKE ?) AND activo = true", contiene, contiene).
		Order("nombre_completo ASC").
		Find(&empleados).Error
	return empleados, err
}

func (r *empleadoRepo) FiltrarPorCargo(ctx context.Context, cargo string) ([]model.Empleado, error) {
	var empleados []model.Empleado
	err := r.db.WithContext(ctx).
		Where("cargo = ? AND activo = true", cargo).
		Order("nombre_completo ASC").
		Find(&empleados).Error
	return empleados, err
}

func (r *empleadoRepo) Update(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *empleadoRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Empleado{}).
		Where("id = ?", id).Update("activo", false).Error
}

func (r *empleadoRepo) UsuarioExiste(ctx context.Context, usuario string, excluirID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Empleado{}).Where("usuario = ?", usuario)
	if excluirID != 0 {
		q = q.Where("id != ?", excluirID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}
