package service

import (
	"errors"
	"fmt"
)

// Error kinds every engine can surface. Handlers map them to HTTP status
// codes; the services themselves never touch HTTP.
var (
	ErrProductoNoEncontrado  = errors.New("producto no encontrado")
	ErrEmpleadoNoEncontrado  = errors.New("empleado no encontrado")
	ErrVentaNoEncontrada     = errors.New("venta no encontrada")
	ErrTipoAjusteInvalido    = errors.New("tipo de ajuste no válido")
	ErrCantidadInvalida      = errors.New("la cantidad no puede ser negativa")
	ErrCodigoDuplicado       = errors.New("el código de producto ya existe")
	ErrUsuarioDuplicado      = errors.New("el usuario ya existe")
	ErrPagoInsuficiente      = errors.New("el pago del cliente es insuficiente")
	ErrVentaVacia            = errors.New("la venta debe incluir al menos un producto")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
)

// StockInsuficienteError names the offending product and both quantities so
// the register can render a precise message.
type StockInsuficienteError struct {
	Producto   string
	Disponible int
	Solicitado int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s. Disponible: %d, Solicitado: %d",
		e.Producto, e.Disponible, e.Solicitado)
}
