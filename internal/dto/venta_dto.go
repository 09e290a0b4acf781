package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

// ItemVentaRequest is one cart line. Precio is the price the register showed
// the cashier; it is a display hint only — the engine re-reads the catalog
// price inside the transaction and uses that for every subtotal.
type ItemVentaRequest struct {
	ProductoID uint            `json:"id_producto" validate:"required"`
	Cantidad   int             `json:"cantidad"    validate:"required,min=1"`
	Precio     decimal.Decimal `json:"precio"`
}

type RegistrarVentaRequest struct {
	EmpleadoID  uint               `json:"empleado_id"  validate:"required"`
	Productos   []ItemVentaRequest `json:"productos"    validate:"required,min=1,dive"`
	PagoCliente decimal.Decimal    `json:"pago_cliente" validate:"required"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	Producto       string          `json:"producto"`
	Codigo         string          `json:"codigo"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID                uint   `json:"id_venta"`
	Total             string `json:"total"`  // two-decimal formatted
	Cambio            string `json:"cambio"` // two-decimal formatted
	ProductosVendidos int    `json:"productos_vendidos"`
	Mensaje           string `json:"mensaje"`
}

type VentaListItem struct {
	ID          uint                   `json:"id_venta"`
	FechaVenta  string                 `json:"fecha_venta"`
	Total       decimal.Decimal        `json:"total"`
	PagoCliente decimal.Decimal        `json:"pago_cliente"`
	Cambio      decimal.Decimal        `json:"cambio"`
	Estado      string                 `json:"estado"`
	Empleado    string                 `json:"empleado_nombre"`
	Detalles    []DetalleVentaResponse `json:"detalles"`
}
