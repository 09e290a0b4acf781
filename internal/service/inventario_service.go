package service

import (
	"context"
	"fmt"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"
	"tiendapos/internal/worker"

	"gorm.io/gorm"
)

// Adjustment policies accepted by AjustarStock.
const (
	AjusteAumentar   = "aumentar"
	AjusteReducir    = "reducir"
	AjusteEstablecer = "establecer"
)

// InventarioService owns every direct stock mutation outside sales and
// receiving. Each mutation and its ledger row commit as one atomic unit.
type InventarioService interface {
	AjustarStock(ctx context.Context, req dto.AjusteStockRequest) (*dto.AjusteStockResponse, error)
	ListarProductos(ctx context.Context) ([]dto.ProductoResponse, error)
	BuscarProductos(ctx context.Context, termino string) ([]dto.ProductoResponse, error)
	ObtenerProducto(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	HistorialAjustes(ctx context.Context, limite int) ([]dto.MovimientoResponse, error)
}

type inventarioService struct {
	productos   repository.ProductoRepository
	movimientos repository.MovimientoRepository
	dispatcher  *worker.Dispatcher
}

func NewInventarioService(
	productos repository.ProductoRepository,
	movimientos repository.MovimientoRepository,
	dispatcher *worker.Dispatcher,
) InventarioService {
	return &inventarioService{productos: productos, movimientos: movimientos, dispatcher: dispatcher}
}

// AjustarStock applies one adjustment policy to one product and writes the
// corresponding ledger row, all inside a single transaction holding a row
// lock on the product:
//
//	aumentar:   nuevo = anterior + cantidad
//	reducir:    nuevo = max(0, anterior - cantidad)  — clamps, never negative
//	establecer: nuevo = cantidad                      (absolute target)
//
// The ledger row records |nuevo - anterior|, the effective change, which for
// a clamped "reducir" is smaller than the requested amount.
func (s *inventarioService) AjustarStock(ctx context.Context, req dto.AjusteStockRequest) (*dto.AjusteStockResponse, error) {
	if req.Cantidad < 0 {
		return nil, ErrCantidadInvalida
	}
	switch req.TipoAjuste {
	case AjusteAumentar, AjusteReducir, AjusteEstablecer:
	default:
		return nil, ErrTipoAjusteInvalido
	}

	var resp dto.AjusteStockResponse
	var producto *model.Producto

	txErr := runTx(ctx, s.productos.DB(), func(tx *gorm.DB) error {
		p, err := s.productos.FindByIDForUpdateTx(tx, req.ProductoID)
		if err != nil {
			return ErrProductoNoEncontrado
		}

		anterior := p.StockActual
		var nuevo int
		var tipoMovimiento string
		switch req.TipoAjuste {
		case AjusteAumentar:
			nuevo = anterior + req.Cantidad
			tipoMovimiento = model.MovimientoEntrada
		case AjusteReducir:
			nuevo = anterior - req.Cantidad
			if nuevo < 0 {
				nuevo = 0
			}
			tipoMovimiento = model.MovimientoSalida
		case AjusteEstablecer:
			nuevo = req.Cantidad
			if nuevo > anterior {
				tipoMovimiento = model.MovimientoEntrada
			} else {
				tipoMovimiento = model.MovimientoSalida
			}
		}

		if err := s.productos.SetStockTx(tx, p.ID, nuevo); err != nil {
			return err
		}

		cantidadMovimiento := nuevo - anterior
		if cantidadMovimiento < 0 {
			cantidadMovimiento = -cantidadMovimiento
		}
		motivo := req.Motivo
		if req.Observaciones != "" {
			motivo = fmt.Sprintf("%s - %s", req.Motivo, req.Observaciones)
		}
		mov := &model.MovimientoInventario{
			ProductoID:     p.ID,
			EmpleadoID:     req.EmpleadoID,
			TipoMovimiento: tipoMovimiento,
			Cantidad:       cantidadMovimiento,
			Motivo:         motivo,
		}
		if err := s.movimientos.CreateTx(tx, mov); err != nil {
			return err
		}

		producto = p
		resp = dto.AjusteStockResponse{
			Codigo:        p.Codigo,
			Nombre:        p.Nombre,
			TipoAjuste:    req.TipoAjuste,
			StockAnterior: anterior,
			StockNuevo:    nuevo,
			Diferencia:    nuevo - anterior,
			Mensaje:       "Existencias actualizadas exitosamente",
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.alertarStockBajo(ctx, producto, resp.StockNuevo)
	return &resp, nil
}

// alertarStockBajo enqueues a low-stock alert after a committed mutation.
// Best effort — never fails the operation that triggered it.
func (s *inventarioService) alertarStockBajo(ctx context.Context, p *model.Producto, stockNuevo int) {
	if s.dispatcher == nil || p == nil || stockNuevo > p.StockMinimo {
		return
	}
	_ = s.dispatcher.EnqueueAlertaStock(ctx, worker.AlertaStockPayload{
		ProductoID:  p.ID,
		Codigo:      p.Codigo,
		Nombre:      p.Nombre,
		StockActual: stockNuevo,
		StockMinimo: p.StockMinimo,
	})
}

func (s *inventarioService) ListarProductos(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.productos.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		resp[i] = productoToResponse(&productos[i])
	}
	return resp, nil
}

// BuscarProductos returns an empty slice for terms shorter than two
// characters instead of querying.
func (s *inventarioService) BuscarProductos(ctx context.Context, termino string) ([]dto.ProductoResponse, error) {
	if len(termino) < 2 {
		return []dto.ProductoResponse{}, nil
	}
	productos, err := s.productos.Buscar(ctx, termino, 10)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		resp[i] = productoToResponse(&productos[i])
	}
	return resp, nil
}

func (s *inventarioService) ObtenerProducto(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.productos.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}
	resp := productoToResponse(p)
	return &resp, nil
}

// HistorialAjustes lists manual adjustments only; sale and receiving
// movements have their own histories.
func (s *inventarioService) HistorialAjustes(ctx context.Context, limite int) ([]dto.MovimientoResponse, error) {
	movimientos, err := s.movimientos.List(ctx, repository.MovimientoFilter{
		SoloAjustes: true,
		Limite:      limite,
	})
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		item := dto.MovimientoResponse{
			ID:             m.ID,
			TipoMovimiento: m.TipoMovimiento,
			Cantidad:       m.Cantidad,
			Motivo:         m.Motivo,
			Fecha:          m.CreatedAt.Format("2006-01-02"),
		}
		if m.Producto != nil {
			item.Codigo = m.Producto.Codigo
			item.Producto = m.Producto.Nombre
			item.TipoProducto = m.Producto.TipoProducto
			item.UnidadMedida = m.Producto.UnidadMedida
		}
		if m.Empleado != nil {
			item.Empleado = m.Empleado.NombreCompleto
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:           p.ID,
		Codigo:       p.Codigo,
		Nombre:       p.Nombre,
		Precio:       p.Precio,
		StockActual:  p.StockActual,
		StockMinimo:  p.StockMinimo,
		UnidadMedida: p.UnidadMedida,
		TipoProducto: p.TipoProducto,
		EstadoStock:  p.EstadoStock(),
		Activo:       p.Activo,
	}
}
