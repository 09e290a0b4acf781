package dto

import "github.com/shopspring/decimal"

// RecibirExistenteRequest is bound from POST /v1/recepciones/existente.
type RecibirExistenteRequest struct {
	Codigo           string  `json:"codigo"            validate:"required"`
	CantidadRecibida int     `json:"cantidad_recibida" validate:"required,min=1"`
	FechaRecepcion   string  `json:"fecha_recepcion"   validate:"required"` // YYYY-MM-DD
	Observaciones    *string `json:"observaciones"`
	EmpleadoID       uint    `json:"id_empleado"       validate:"required"`
}

// CrearProductoRequest is bound from POST /v1/recepciones/nuevo.
// StockMinimo defaults to 5 when omitted.
type CrearProductoRequest struct {
	Codigo          string          `json:"codigo"           validate:"required"`
	Nombre          string          `json:"nombre"           validate:"required"`
	Precio          decimal.Decimal `json:"precio"           validate:"required,gt=0"`
	CantidadInicial int             `json:"cantidad_inicial" validate:"required,min=1"`
	StockMinimo     *int            `json:"stock_minimo"     validate:"omitempty,min=0"`
	UnidadMedida    string          `json:"unidad_medida"    validate:"required"`
	TipoProducto    string          `json:"tipo_producto"    validate:"required"`
	FechaRecepcion  string          `json:"fecha_recepcion"  validate:"required"`
	Observaciones   *string         `json:"observaciones"`
	EmpleadoID      uint            `json:"id_empleado"      validate:"required"`
}

type RecepcionResponse struct {
	RecepcionID      uint   `json:"id_recepcion"`
	ProductoID       uint   `json:"id_producto"`
	Producto         string `json:"producto"`
	Codigo           string `json:"codigo"`
	CantidadAnterior int    `json:"cantidad_anterior"`
	CantidadRecibida int    `json:"cantidad_recibida"`
	CantidadNueva    int    `json:"cantidad_nueva"`
	Mensaje          string `json:"mensaje"`
}

// VerificarCodigoResponse carries the advisory code suggestion. The unique
// index on productos.codigo remains the authoritative uniqueness guard.
type VerificarCodigoResponse struct {
	Existe         bool   `json:"existe"`
	CodigoSugerido string `json:"codigo_sugerido"`
}

type RecepcionHistorialItem struct {
	ID               uint    `json:"id_recepcion"`
	Codigo           string  `json:"codigo"`
	Producto         string  `json:"producto_nombre"`
	UnidadMedida     string  `json:"unidad_medida"`
	TipoProducto     string  `json:"tipo_producto"`
	CantidadRecibida int     `json:"cantidad_recibida"`
	FechaRecepcion   string  `json:"fecha_recepcion"`
	Observaciones    *string `json:"observaciones"`
	Empleado         string  `json:"empleado_nombre"`
	FechaRegistro    string  `json:"fecha_registro"`
}
