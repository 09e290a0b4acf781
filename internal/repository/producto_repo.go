package repository

import (
	"context"

	"tiendapos/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Producto) error
	FindByID(ctx context.Context, id uint) (*model.Producto, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Producto, error)
	CodigoExiste(ctx context.Context, codigo string) (bool, error)
	// UltimoCodigoPRD returns the highest existing code matching PRD + 3 digits,
	// or "" when none matches.
	UltimoCodigoPRD(ctx context.Context) (string, error)
	List(ctx context.Context) ([]model.Producto, error)
	Buscar(ctx context.Context, termino string, limit int) ([]model.Producto, error)

	// Used inside transactions — callers must pass the tx instance.
	// FindByIDForUpdateTx takes a row lock held until the tx commits.
	FindByIDForUpdateTx(tx *gorm.DB, id uint) (*model.Producto, error)
	FindByCodigoForUpdateTx(tx *gorm.DB, codigo string) (*model.Producto, error)
	SetStockTx(tx *gorm.DB, id uint, stock int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) CreateTx(tx *gorm.DB, p *model.Producto) error {
	return tx.Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("id = ? AND activo = true", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("codigo = ? AND activo = true", codigo).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) CodigoExiste(ctx context.Context, codigo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("codigo = ?", codigo).Count(&count).Error
	return count > 0, err
}

func (r *productoRepo) UltimoCodigoPRD(ctx context.Context) (string, error) {
	var codigo string
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where(`codigo ~ '^PRD[0-9]{3}$'`).
		Order("CAST(SUBSTRING(codigo FROM 4) AS INTEGER) DESC").
		Limit(1).
		Pluck("codigo", &codigo).Error
	return codigo, err
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("activo = true").
		Order("nombre ASC").
		Find(&productos).Error
	return productos, err
}

// Buscar matches by name or code, ranking code-prefix hits first, then
// name-prefix hits, then everything else.
func (r *productoRepo) Buscar(ctx context.Context, termino string, limit int) ([]model.Producto, error) {
	var productos []model.Producto
	contiene := "%" + termino + "%"
	prefijo := termino + "%"
	err := r.db.WithContext(ctx).
		Where("(nombre ILIKE ? OR codigo ILIKE ?) AND activo = true", contiene, contiene).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN codigo ILIKE ? THEN 1 WHEN nombre ILIKE ? THEN 2 ELSE 3 END, nombre ASC",
			Vars:               []interface{}{prefijo, prefijo},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByIDForUpdateTx(tx *gorm.DB, id uint) (*model.Producto, error) {
	var p model.Producto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND activo = true", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) FindByCodigoForUpdateTx(tx *gorm.DB, codigo string) (*model.Producto, error) {
	var p model.Producto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("codigo = ? AND activo = true", codigo).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) SetStockTx(tx *gorm.DB, id uint, stock int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock_actual", stock).Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
