package dto

import "github.com/shopspring/decimal"

// ─── Sales report projections (read-only aggregations) ──────────────────────

type VentasPorDiaItem struct {
	Fecha       string          `json:"fecha"`
	TotalVentas decimal.Decimal `json:"total_ventas"`
}

type ProductoMasVendidoItem struct {
	Nombre          string `json:"nombre"`
	CantidadVendida int    `json:"cantidad_vendida"`
}

type RendimientoEmpleadoItem struct {
	NombreCompleto   string          `json:"nombre_completo"`
	VentasRealizadas int             `json:"ventas_realizadas"`
	TotalVendido     decimal.Decimal `json:"total_vendido"`
}

// ─── Product incident reports ────────────────────────────────────────────────

type CrearReporteProductoRequest struct {
	ProductoID  uint   `json:"id_producto"  validate:"required"`
	EmpleadoID  uint   `json:"id_empleado"  validate:"required"`
	TipoReporte string `json:"tipo_reporte" validate:"required"`
	Descripcion string `json:"descripcion"  validate:"required"`
}

type ReporteProductoResponse struct {
	ID           uint   `json:"id_reporte"`
	Codigo       string `json:"codigo"`
	Producto     string `json:"nombre_producto"`
	TipoProducto string `json:"tipo_producto"`
	TipoReporte  string `json:"tipo_reporte"`
	Descripcion  string `json:"descripcion"`
	Empleado     string `json:"empleado_reporta"`
	FechaReporte string `json:"fecha_reporte"`
	Estado       string `json:"estado"`
}
