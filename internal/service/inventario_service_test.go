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

func productoDePrueba(id uint, codigo string, stock, minimo int) *model.Producto {
	return &model.Producto{
		ID:           id,
		Codigo:       codigo,
		Nombre:       "Arroz 1kg",
		Precio:       decimal.NewFromFloat(10.50),
		StockActual:  stock,
		StockMinimo:  minimo,
		UnidadMedida: "unidad",
		TipoProducto: "Abarrotes",
		Activo:       true,
	}
}

func nuevoInventarioService() (InventarioService, *stubProductoRepo, *stubMovimientoRepo) {
	productos := newStubProductoRepo()
	movimientos := newStubMovimientoRepo()
	svc := NewInventarioService(productos, movimientos, nil)
	return svc, productos, movimientos
}

func TestAjustarStockAumentar(t *testing.T) {
	svc, productos, movimientos := nuevoInventarioService()
	productos.agregar(productoDePrueba(1, "PRD001", 10, 5))

	resp, err := svc.AjustarStock(context.Background(), dto.AjusteStockRequest{
		ProductoID: 1,
		TipoAjuste: AjusteAumentar,
		Cantidad:   7,
		Motivo:     "Conteo físico",
		EmpleadoID: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, resp.StockAnterior)
	assert.Equal(t, 17, resp.StockNuevo)
	assert.Equal(t, 7, resp.Diferencia)
	assert.Equal(t, 17, productos.productos[1].StockActual)

	require.Len(t, movimientos.movimientos, 1)
	mov := movimientos.movimientos[0]
	assert.Equal(t, model.MovimientoEntrada, mov.TipoMovimiento)
	assert.Equal(t, 7, mov.Cantidad)
	assert.Equal(t, uint(3), mov.EmpleadoID)
}

func TestAjustarStockReducirConClamp(t *testing.T) {
	svc, productos, movimientos := nuevoInventarioService()
	productos.agregar(productoDePrueba(1, "PRD001", 10, 5))

	resp, err := svc.AjustarStock(context.Background(), dto.AjusteStockRequest{
		ProductoID: 1,
		TipoAjuste: AjusteReducir,
		Cantidad:   15,
		Motivo:     "Merma",
		EmpleadoID: 3,
	})
	require.NoError(t, err)

	// Reducing below zero clamps at zero; the ledger records the effective
	// change (10), not the requested amount (15).
	assert.Equal(t, 0, resp.StockNuevo)
	assert.Equal(t, -10, resp.Diferencia)
	assert.Equal(t, 0, productos.productos[1].StockActual)

	require.Len(t, movimientos.movimientos, 1)
	assert.Equal(t, model.MovimientoSalida, movimientos.movimientos[0].TipoMovimiento)
	assert.Equal(t, 10, movimientos.movimientos[0].Cantidad)
}

func TestAjustarStockEstablecer(t *testing.T) {
	casos := []struct {
		nombre   string
		objetivo int
		tipoEsp  string
		cantidad int
	}{
		{"por encima del actual", 25, model.MovimientoEntrada, 15},
		{"por debajo del actual", 4, model.MovimientoSalida, 6},
		{"igual al actual", 10, model.MovimientoSalida, 0},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			svc, productos, movimientos := nuevoInventarioService()
			productos.agregar(productoDePrueba(1, "PRD001", 10, 5))

			resp, err := svc.AjustarStock(context.Background(), dto.AjusteStockRequest{
				ProductoID: 1,
				TipoAjuste: AjusteEstablecer,
				Cantidad:   tc.objetivo,
				Motivo:     "Inventario anual",
				EmpleadoID: 3,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.objetivo, resp.StockNuevo)

			// Every accepted mutation writes exactly one ledger row, even a
			// zero-magnitude establecer.
			require.Len(t, movimientos.movimientos, 1)
			assert.Equal(t, tc.tipoEsp, movimientos.movimientos[0].TipoMovimiento)
			assert.Equal(t, tc.cantidad, movimientos.movimientos[0].Cantidad)
		})
	}
}

func TestAjustarStockTipoInvalido(t *testing.T) {
	svc, productos, movimientos := nuevoInventarioService()
	productos.agregar(productoDePrueba(1, "PRD001", 10, 5))

	_, err := svc.AjustarStock(context.Background(), dto.AjusteStockRequest{
		ProductoID: 1,
		TipoAjuste: "duplicar",
		Cantidad:   5,
		Motivo:     "x",
		EmpleadoID: 3,
	})
	assert.ErrorIs(t, err, ErrTipoAjusteInvalido)
	assert.Equal(t, 10, productos.productos[1].StockActual)
	assert.Empty(t, movimientos.movimientos)
}

func TestAjustarStockCantidadNegativa(t *testing.T) {
	svc, productos, _ := nuevoInventarioService()
	productos.agregar(productoDePrueba(1, "PRD001", 10, 5))

	_, err := svc.AjustarStock(context.Background(), dto.AjusteStockRequest{
		ProductoID: 1,
		TipoAjuste: AjusteAumentar,
		Cantidad:   -5,
		Motivo:     "x",
		EmpleadoID: 3,
	})
	assert.ErrorIs(t, err, ErrCantidadInvalida)
}

func TestAjustarStockProductoInexistente(t *testing.T) {
	svc, _, movimientos := nuevoInventarioService()

	_, err := svc.AjustarStock(context.Background(), dto.AjusteStockRequest{
		ProductoID: 99,
		TipoAjuste: AjusteAumentar,
		Cantidad:   5,
		Motivo:     "x",
		EmpleadoID: 3,
	})
	assert.ErrorIs(t, err, ErrProductoNoEncontrado)
	assert.Empty(t, movimientos.movimientos)
}

func TestAjustarStockMotivoConObservaciones(t *testing.T) {
	svc, productos, movimientos := nuevoInventarioService()
	productos.agregar(productoDePrueba(1, "PRD001", 10, 5))

	_, err := svc.AjustarStock(context.Background(), dto.AjusteStockRequest{
		ProductoID:    1,
		TipoAjuste:    AjusteReducir,
		Cantidad:      2,
		Motivo:        "Merma",
		Observaciones: "envase roto",
		EmpleadoID:    3,
	})
	require.NoError(t, err)
	require.Len(t, movimientos.movimientos, 1)
	assert.Equal(t, "Merma - envase roto", movimientos.movimientos[0].Motivo)
}

func TestBuscarProductosTerminoCorto(t *testing.T) {
	svc, productos, _ := nuevoInventarioService()
	productos.agregar(productoDePrueba(1, "PRD001", 10, 5))

	resp, err := svc.BuscarProductos(context.Background(), "a")
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestObtenerProductoEstadoStock(t *testing.T) {
	svc, productos, _ := nuevoInventarioService()
	productos.agregar(productoDePrueba(1, "PRD001", 3, 5))
	productos.agregar(productoDePrueba(2, "PRD002", 20, 5))

	bajo, err := svc.ObtenerProducto(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoStockBajo, bajo.EstadoStock)

	normal, err := svc.ObtenerProducto(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoStockNormal, normal.EstadoStock)
}
