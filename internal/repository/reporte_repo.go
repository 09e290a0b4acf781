package repository

import (
	"context"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"

	"gorm.io/gorm"
)

// ReporteRepository serves the read-only sales aggregations and the product
// incident reports. Aggregations are raw SQL projections — no business logic.
type ReporteRepository interface {
	VentasPorDia(ctx context.Context, desde, hasta string) ([]dto.VentasPorDiaItem, error)
	IngresosPorDia(ctx context.Context, desde, hasta string) ([]dto.VentasPorDiaItem, error)
	ProductosMasVendidos(ctx context.Context, desde, hasta string, limite int) ([]dto.ProductoMasVendidoItem, error)
	ProductosMasVendidosGeneral(ctx context.Context, limite int) ([]dto.ProductoMasVendidoItem, error)
	RendimientoPorEmpleado(ctx context.Context, desde, hasta string) ([]dto.RendimientoEmpleadoItem, error)

	CreateReporteProducto(ctx context.Context, r *model.ReporteProducto) error
	ListReportesProductos(ctx context.Context) ([]model.ReporteProducto, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) VentasPorDia(ctx context.Context, desde, hasta string) ([]dto.VentasPorDiaItem, error) {
	var items []dto.VentasPorDiaItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT TO_CHAR(created_at, 'YYYY-MM-DD') AS fecha, SUM(total) AS total_ventas
		FROM ventas
		WHERE created_at BETWEEN ? AND ?
		GROUP BY TO_CHAR(created_at, 'YYYY-MM-DD')
		ORDER BY fecha DESC`, desde, hasta).Scan(&items).Error
	return items, err
}

func (r *reporteRepo) IngresosPorDia(ctx context.Context, desde, hasta string) ([]dto.VentasPorDiaItem, error) {
	// Same projection as VentasPorDia today; kept separate because the
	// original report distinguishes gross sales from income once refunds land.
	return r.VentasPorDia(ctx, desde, hasta)
}

func (r *reporteRepo) ProductosMasVendidos(ctx context.Context, desde, hasta string, limite int) ([]dto.ProductoMasVendidoItem, error) {
	var items []dto.ProductoMasVendidoItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.nombre, SUM(dv.cantidad) AS cantidad_vendida
		FROM detalle_ventas dv
		JOIN productos p ON dv.producto_id = p.id
		JOIN ventas v ON dv.venta_id = v.id
		WHERE v.created_at BETWEEN ? AND ?
		GROUP BY p.id, p.nombre
		ORDER BY cantidad_vendida DESC
		LIMIT ?`, desde, hasta, limite).Scan(&items).Error
	return items, err
}

func (r *reporteRepo) ProductosMasVendidosGeneral(ctx context.Context, limite int) ([]dto.ProductoMasVendidoItem, error) {
	var items []dto.ProductoMasVendidoItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.nombre, SUM(dv.cantidad) AS cantidad_vendida
		FROM detalle_ventas dv
		JOIN productos p ON dv.producto_id = p.id
		JOIN ventas v ON dv.venta_id = v.id
		WHERE v.estado = ?
		GROUP BY p.id, p.nombre
		ORDER BY cantidad_vendida DESC
		LIMIT ?`, model.VentaCompletada, limite).Scan(&items).Error
	return items, err
}

func (r *reporteRepo) RendimientoPorEmpleado(ctx context.Context, desde, hasta string) ([]dto.RendimientoEmpleadoItem, error) {
	var items []dto.RendimientoEmpleadoItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT e.nombre_completo, COUNT(v.id) AS ventas_realizadas, SUM(v.total) AS total_vendido
		FROM ventas v
		JOIN empleados e ON v.empleado_id = e.id
		WHERE v.created_at BETWEEN ? AND ?
		GROUP BY e.id, e.nombre_completo
		ORDER BY total_vendido DESC`, desde, hasta).Scan(&items).Error
	return items, err
}

func (r *reporteRepo) CreateReporteProducto(ctx context.Context, rep *model.ReporteProducto) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *reporteRepo) ListReportesProductos(ctx context.Context) ([]model.ReporteProducto, error) {
	var reportes []model.ReporteProducto
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Preload("Empleado").
		Order("created_at DESC").
		Find(&reportes).Error
	return reportes, err
}
