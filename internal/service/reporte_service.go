package service

import (
	"context"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"
)

// ReporteService is a thin pass-through over the read-only aggregations
// plus the product incident reports.
type ReporteService interface {
	VentasPorDia(ctx context.Context, desde, hasta string) ([]dto.VentasPorDiaItem, error)
	IngresosPorDia(ctx context.Context, desde, hasta string) ([]dto.VentasPorDiaItem, error)
	ProductosMasVendidos(ctx context.Context, desde, hasta string) ([]dto.ProductoMasVendidoItem, error)
	ProductosMasVendidosGeneral(ctx context.Context) ([]dto.ProductoMasVendidoItem, error)
	RendimientoPorEmpleado(ctx context.Context, desde, hasta string) ([]dto.RendimientoEmpleadoItem, error)

	CrearReporteProducto(ctx context.Context, req dto.CrearReporteProductoRequest) (*dto.ReporteProductoResponse, error)
	ListarReportesProductos(ctx context.Context) ([]dto.ReporteProductoResponse, error)
}

const topProductosLimite = 10

type reporteService struct {
	repo      repository.ReporteRepository
	productos repository.ProductoRepository
}

func NewReporteService(repo repository.ReporteRepository, productos repository.ProductoRepository) ReporteService {
	return &reporteService{repo: repo, productos: productos}
}

func (s *reporteService) VentasPorDia(ctx context.Context, desde, hasta string) ([]dto.VentasPorDiaItem, error) {
	return s.repo.VentasPorDia(ctx, desde, hasta)
}

func (s *reporteService) IngresosPorDia(ctx context.Context, desde, hasta string) ([]dto.VentasPorDiaItem, error) {
	return s.repo.IngresosPorDia(ctx, desde, hasta)
}

func (s *reporteService) ProductosMasVendidos(ctx context.Context, desde, hasta string) ([]dto.ProductoMasVendidoItem, error) {
	return s.repo.ProductosMasVendidos(ctx, desde, hasta, topProductosLimite)
}

func (s *reporteService) ProductosMasVendidosGeneral(ctx context.Context) ([]dto.ProductoMasVendidoItem, error) {
	return s.repo.ProductosMasVendidosGeneral(ctx, topProductosLimite)
}

func (s *reporteService) RendimientoPorEmpleado(ctx context.Context, desde, hasta string) ([]dto.RendimientoEmpleadoItem, error) {
	return s.repo.RendimientoPorEmpleado(ctx, desde, hasta)
}

func (s *reporteService) CrearReporteProducto(ctx context.Context, req dto.CrearReporteProductoRequest) (*dto.ReporteProductoResponse, error) {
	p, err := s.productos.FindByID(ctx, req.ProductoID)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}
	rep := &model.ReporteProducto{
		ProductoID:  req.ProductoID,
		EmpleadoID:  req.EmpleadoID,
		TipoReporte: req.TipoReporte,
		Descripcion: req.Descripcion,
		Estado:      "Pendiente",
	}
	if err := s.repo.CreateReporteProducto(ctx, rep); err != nil {
		return nil, err
	}
	return &dto.ReporteProductoResponse{
		ID:           rep.ID,
		Codigo:       p.Codigo,
		Producto:     p.Nombre,
		TipoProducto: p.TipoProducto,
		TipoReporte:  rep.TipoReporte,
		Descripcion:  rep.Descripcion,
		FechaReporte: rep.CreatedAt.Format("2006-01-02"),
		Estado:       rep.Estado,
	}, nil
}

func (s *reporteService) ListarReportesProductos(ctx context.Context) ([]dto.ReporteProductoResponse, error) {
	reportes, err := s.repo.ListReportesProductos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ReporteProductoResponse, 0, len(reportes))
	for _, r := range reportes {
		item := dto.ReporteProductoResponse{
			ID:           r.ID,
			TipoReporte:  r.TipoReporte,
			Descripcion:  r.Descripcion,
			FechaReporte: r.CreatedAt.Format("2006-01-02"),
			Estado:       r.Estado,
		}
		if r.Producto != nil {
			item.Codigo = r.Producto.Codigo
			item.Producto = r.Producto.Nombre
			item.TipoProducto = r.Producto.TipoProducto
		}
		if r.Empleado != nil {
			item.Empleado = r.Empleado.NombreCompleto
		}
		resp = append(resp, item)
	}
	return resp, nil
}
