package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

// AjusteStockRequest is bound from POST /v1/inventario/ajustes.
// Cantidad is a delta for aumentar/reducir and the absolute target value
// for establecer.
type AjusteStockRequest struct {
	ProductoID    uint   `json:"id_producto"   validate:"required"`
	TipoAjuste    string `json:"tipo_ajuste"   validate:"required"`
	Cantidad      int    `json:"cantidad"`
	Motivo        string `json:"motivo"        validate:"required"`
	Observaciones string `json:"observaciones"`
	EmpleadoID    uint   `json:"id_empleado"   validate:"required"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID           uint            `json:"id_producto"`
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	Precio       decimal.Decimal `json:"precio"`
	StockActual  int             `json:"stock_actual"`
	StockMinimo  int             `json:"stock_minimo"`
	UnidadMedida string          `json:"unidad_medida"`
	TipoProducto string          `json:"tipo_producto"`
	EstadoStock  string          `json:"estado_stock"`
	Activo       bool            `json:"activo"`
}

// AjusteStockResponse reports the applied change. Diferencia is signed;
// a clamped "reducir" shows a smaller |Diferencia| than the requested amount.
type AjusteStockResponse struct {
	Codigo        string `json:"codigo"`
	Nombre        string `json:"nombre"`
	TipoAjuste    string `json:"tipo_ajuste"`
	StockAnterior int    `json:"stock_anterior"`
	StockNuevo    int    `json:"stock_nuevo"`
	Diferencia    int    `json:"diferencia"`
	Mensaje       string `json:"mensaje"`
}

type MovimientoResponse struct {
	ID             uint   `json:"id_movimiento"`
	Codigo         string `json:"codigo"`
	Producto       string `json:"producto_nombre"`
	TipoProducto   string `json:"tipo_producto"`
	UnidadMedida   string `json:"unidad_medida"`
	TipoMovimiento string `json:"tipo_movimiento"`
	Cantidad       int    `json:"cantidad"`
	Motivo         string `json:"motivo"`
	Empleado       string `json:"empleado_nombre"`
	Fecha          string `json:"fecha_movimiento"`
}
