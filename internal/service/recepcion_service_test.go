package service

import (
	"context"
	"testing"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoRecepcionService() (RecepcionService, *stubProductoRepo, *stubRecepcionRepo, *stubMovimientoRepo) {
	productos := newStubProductoRepo()
	recepciones := newStubRecepcionRepo()
	movimientos := newStubMovimientoRepo()
	svc := NewRecepcionService(productos, recepciones, movimientos)
	return svc, productos, recepciones, movimientos
}

func TestRecibirExistente(t *testing.T) {
	svc, productos, recepciones, movimientos := nuevoRecepcionService()
	productos.agregar(productoDePrueba(1, "PRD001", 4, 5))

	resp, err := svc.RecibirExistente(context.Background(), dto.RecibirExistenteRequest{
		Codigo:           "prd001", // lowercased on purpose
		CantidadRecibida: 6,
		FechaRecepcion:   "2026-08-29",
		EmpleadoID:       3,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.CantidadAnterior)
	assert.Equal(t, 10, resp.CantidadNueva)
	assert.Equal(t, "PRD001", resp.Codigo)
	assert.Equal(t, 10, productos.productos[1].StockActual)

	require.Len(t, recepciones.recepciones, 1)
	assert.Equal(t, 6, recepciones.recepciones[0].CantidadRecibida)

	require.Len(t, movimientos.movimientos, 1)
	mov := movimientos.movimientos[0]
	assert.Equal(t, model.MovimientoEntrada, mov.TipoMovimiento)
	assert.Equal(t, 6, mov.Cantidad)
	assert.Equal(t, "Recepción de productos", mov.Motivo)
}

func TestRecibirExistenteCodigoInexistente(t *testing.T) {
	svc, _, recepciones, movimientos := nuevoRecepcionService()

	_, err := svc.RecibirExistente(context.Background(), dto.RecibirExistenteRequest{
		Codigo:           "PRD999",
		CantidadRecibida: 6,
		FechaRecepcion:   "2026-08-29",
		EmpleadoID:       3,
	})
	assert.ErrorIs(t, err, ErrProductoNoEncontrado)
	assert.Empty(t, recepciones.recepciones)
	assert.Empty(t, movimientos.movimientos)
}

func TestRecibirExistenteCantidadInvalida(t *testing.T) {
	svc, productos, _, _ := nuevoRecepcionService()
	productos.agregar(productoDePrueba(1, "PRD001", 4, 5))

	_, err := svc.RecibirExistente(context.Background(), dto.RecibirExistenteRequest{
		Codigo:           "PRD001",
		CantidadRecibida: 0,
		FechaRecepcion:   "2026-08-29",
		EmpleadoID:       3,
	})
	assert.ErrorIs(t, err, ErrCantidadInvalida)
}

func TestCrearProductoNuevo(t *testing.T) {
	svc, productos, recepciones, movimientos := nuevoRecepcionService()

	resp, err := svc.CrearProductoNuevo(context.Background(), dto.CrearProductoRequest{
		Codigo:          "abc123",
		Nombre:          "Aceite 1L",
		Precio:          decimal.RequireFromString("25.90"),
		CantidadInicial: 12,
		UnidadMedida:    "unidad",
		TipoProducto:    "Abarrotes",
		FechaRecepcion:  "2026-08-29",
		EmpleadoID:      3,
	})
	require.NoError(t, err)

	// Code is stored uppercase.
	assert.Equal(t, "ABC123", resp.Codigo)
	assert.Equal(t, 0, resp.CantidadAnterior)
	assert.Equal(t, 12, resp.CantidadNueva)

	p, err := productos.FindByCodigo(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, 12, p.StockActual)
	assert.Equal(t, 5, p.StockMinimo) // default when omitted
	assert.True(t, p.Activo)

	require.Len(t, recepciones.recepciones, 1)
	require.Len(t, movimientos.movimientos, 1)
	assert.Equal(t, model.MovimientoEntrada, movimientos.movimientos[0].TipoMovimiento)
	assert.Equal(t, 12, movimientos.movimientos[0].Cantidad)
}

func TestCrearProductoNuevoStockMinimoExplicito(t *testing.T) {
	svc, productos, _, _ := nuevoRecepcionService()

	minimo := 20
	_, err := svc.CrearProductoNuevo(context.Background(), dto.CrearProductoRequest{
		Codigo:          "PRD010",
		Nombre:          "Leche 1L",
		Precio:          decimal.RequireFromString("12.00"),
		CantidadInicial: 30,
		StockMinimo:     &minimo,
		UnidadMedida:    "unidad",
		TipoProducto:    "Lácteos",
		FechaRecepcion:  "2026-08-29",
		EmpleadoID:      3,
	})
	require.NoError(t, err)

	p, err := productos.FindByCodigo(context.Background(), "PRD010")
	require.NoError(t, err)
	assert.Equal(t, 20, p.StockMinimo)
}

func TestCrearProductoNuevoCodigoDuplicado(t *testing.T) {
	svc, productos, recepciones, _ := nuevoRecepcionService()
	productos.agregar(productoDePrueba(1, "PRD001", 4, 5))

	_, err := svc.CrearProductoNuevo(context.Background(), dto.CrearProductoRequest{
		Codigo:          "prd001", // same code, different case
		Nombre:          "Otro producto",
		Precio:          decimal.RequireFromString("5.00"),
		CantidadInicial: 1,
		UnidadMedida:    "unidad",
		TipoProducto:    "Abarrotes",
		FechaRecepcion:  "2026-08-29",
		EmpleadoID:      3,
	})
	assert.ErrorIs(t, err, ErrCodigoDuplicado)
	assert.Empty(t, recepciones.recepciones)
}

func TestCrearProductoNuevoFechaInvalida(t *testing.T) {
	svc, _, _, _ := nuevoRecepcionService()

	_, err := svc.CrearProductoNuevo(context.Background(), dto.CrearProductoRequest{
		Codigo:          "PRD050",
		Nombre:          "Pan",
		Precio:          decimal.RequireFromString("2.00"),
		CantidadInicial: 3,
		UnidadMedida:    "unidad",
		TipoProducto:    "Panadería",
		FechaRecepcion:  "29/08/2026",
		EmpleadoID:      3,
	})
	assert.Error(t, err)
}

func TestVerificarCodigoLibre(t *testing.T) {
	svc, _, _, _ := nuevoRecepcionService()

	resp, err := svc.VerificarCodigo(context.Background(), "prd123")
	require.NoError(t, err)
	assert.False(t, resp.Existe)
	assert.Equal(t, "PRD123", resp.CodigoSugerido)
}

func TestVerificarCodigoOcupadoSugiereSiguiente(t *testing.T) {
	svc, productos, _, _ := nuevoRecepcionService()
	productos.agregar(productoDePrueba(1, "PRD003", 4, 5))
	productos.agregar(productoDePrueba(2, "PRD010", 4, 5))
	productos.agregar(productoDePrueba(3, "XYZ999", 4, 5))

	resp, err := svc.VerificarCodigo(context.Background(), "PRD003")
	require.NoError(t, err)
	assert.True(t, resp.Existe)
	assert.Equal(t, "PRD011", resp.CodigoSugerido)
}

func TestVerificarCodigoOcupadoSinSerie(t *testing.T) {
	svc, productos, _, _ := nuevoRecepcionService()
	productos.agregar(productoDePrueba(1, "XYZ999", 4, 5))

	resp, err := svc.VerificarCodigo(context.Background(), "XYZ999")
	require.NoError(t, err)
	assert.True(t, resp.Existe)
	assert.Equal(t, "PRD001", resp.CodigoSugerido)
}

func TestVerificarProducto(t *testing.T) {
	svc, productos, _, _ := nuevoRecepcionService()
	productos.agregar(productoDePrueba(1, "PRD001", 4, 5))

	resp, err := svc.VerificarProducto(context.Background(), " prd001 ")
	require.NoError(t, err)
	assert.Equal(t, "PRD001", resp.Codigo)

	_, err = svc.VerificarProducto(context.Background(), "PRD999")
	assert.ErrorIs(t, err, ErrProductoNoEncontrado)
}
