package service

import (
	"context"
	"fmt"

	"tiendapos/internal/dto"
	"tiendapos/internal/infra"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"
	"tiendapos/internal/worker"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentaService commits multi-line sales: header, lines, stock decrements and
// ledger rows land in one transaction or not at all.
type VentaService interface {
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	ListarVentas(ctx context.Context) ([]dto.VentaListItem, error)
	ObtenerVenta(ctx context.Context, id uint) (*dto.VentaListItem, error)
	GenerarTicket(ctx context.Context, id uint) (string, error)
}

type ventaService struct {
	ventas      repository.VentaRepository
	productos   repository.ProductoRepository
	movimientos repository.MovimientoRepository
	dispatcher  *worker.Dispatcher
	pdfPath     string
}

func NewVentaService(
	ventas repository.VentaRepository,
	productos repository.ProductoRepository,
	movimientos repository.MovimientoRepository,
	dispatcher *worker.Dispatcher,
	pdfPath string,
) VentaService {
	return &ventaService{
		ventas:      ventas,
		productos:   productos,
		movimientos: movimientos,
		dispatcher:  dispatcher,
		pdfPath:     pdfPath,
	}
}

// RegistrarVenta runs the whole sale as one atomic unit:
//
//  1. In caller order, lock each product FOR UPDATE and validate it is
//     active and has enough stock for the cart's cumulative quantity.
//     The catalog price read under the lock is authoritative — the price
//     in the request is a display hint and never enters a subtotal.
//  2. Reject with ErrPagoInsuficiente before any write when the tendered
//     amount does not cover the total.
//  3. Insert the header with its lines, decrement stock per line, and write
//     one Salida ledger row per line.
//
// The first failing line aborts the transaction with nothing written.
func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if len(req.Productos) == 0 {
		return nil, ErrVentaVacia
	}
	for _, item := range req.Productos {
		if item.Cantidad <= 0 {
			return nil, ErrCantidadInvalida
		}
	}

	type lineaResuelta struct {
		producto *model.Producto
		cantidad int
		precio   decimal.Decimal
		subtotal decimal.Decimal
	}

	var venta model.Venta
	var lineas int
	var total, cambio decimal.Decimal
	var alertar []*model.Producto

	txErr := runTx(ctx, s.ventas.DB(), func(tx *gorm.DB) error {
		// Pass 1: lock + validate every line before writing anything.
		// acumulado guards carts that repeat a product across lines.
		resueltas := make([]lineaResuelta, 0, len(req.Productos))
		resueltos := make(map[uint]*model.Producto)
		acumulado := make(map[uint]int)
		total = decimal.Zero

		for _, item := range req.Productos {
			p, ok := resueltos[item.ProductoID]
			if !ok {
				var err error
				p, err = s.productos.FindByIDForUpdateTx(tx, item.ProductoID)
				if err != nil {
					return ErrProductoNoEncontrado
				}
				resueltos[item.ProductoID] = p
			}
			acumulado[p.ID] += item.Cantidad
			if p.StockActual < acumulado[p.ID] {
				return &StockInsuficienteError{
					Producto:   p.Nombre,
					Disponible: p.StockActual,
					Solicitado: acumulado[p.ID],
				}
			}
			subtotal := p.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
			total = total.Add(subtotal)
			resueltas = append(resueltas, lineaResuelta{
				producto: p,
				cantidad: item.Cantidad,
				precio:   p.Precio,
				subtotal: subtotal,
			})
		}

		cambio = req.PagoCliente.Sub(total)
		if cambio.IsNegative() {
			return ErrPagoInsuficiente
		}

		// Pass 2: header + lines, stock decrements, ledger rows.
		venta = model.Venta{
			EmpleadoID:  req.EmpleadoID,
			Total:       total,
			PagoCliente: req.PagoCliente,
			Cambio:      cambio,
			Estado:      model.VentaCompletada,
		}
		for _, l := range resueltas {
			venta.Detalles = append(venta.Detalles, model.DetalleVenta{
				ProductoID:     l.producto.ID,
				Cantidad:       l.cantidad,
				PrecioUnitario: l.precio,
				Subtotal:       l.subtotal,
			})
		}
		if err := s.ventas.CreateTx(tx, &venta); err != nil {
			return err
		}

		for _, l := range resueltas {
			nuevo := l.producto.StockActual - l.cantidad
			l.producto.StockActual = nuevo
			if err := s.productos.SetStockTx(tx, l.producto.ID, nuevo); err != nil {
				return err
			}
			mov := &model.MovimientoInventario{
				ProductoID:     l.producto.ID,
				EmpleadoID:     req.EmpleadoID,
				TipoMovimiento: model.MovimientoSalida,
				Cantidad:       l.cantidad,
				Motivo:         fmt.Sprintf("Venta #%d", venta.ID),
			}
			if err := s.movimientos.CreateTx(tx, mov); err != nil {
				return err
			}
		}

		for _, p := range resueltos {
			if p.StockActual <= p.StockMinimo {
				alertar = append(alertar, p)
			}
		}
		lineas = len(resueltas)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.dispatcher != nil {
		for _, p := range alertar {
			_ = s.dispatcher.EnqueueAlertaStock(ctx, worker.AlertaStockPayload{
				ProductoID:  p.ID,
				Codigo:      p.Codigo,
				Nombre:      p.Nombre,
				StockActual: p.StockActual,
				StockMinimo: p.StockMinimo,
			})
		}
	}

	return &dto.VentaResponse{
		ID:                venta.ID,
		Total:             total.StringFixed(2),
		Cambio:            cambio.StringFixed(2),
		ProductosVendidos: lineas,
		Mensaje:           "Venta registrada exitosamente",
	}, nil
}

func (s *ventaService) ListarVentas(ctx context.Context) ([]dto.VentaListItem, error) {
	ventas, err := s.ventas.List(ctx, model.VentaCompletada)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaListItem, 0, len(ventas))
	for i := range ventas {
		items = append(items, *ventaToListItem(&ventas[i]))
	}
	return items, nil
}

func (s *ventaService) ObtenerVenta(ctx context.Context, id uint) (*dto.VentaListItem, error) {
	venta, err := s.ventas.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVentaNoEncontrada
	}
	return ventaToListItem(venta), nil
}

// GenerarTicket renders the receipt PDF for a committed sale and returns
// the file path.
func (s *ventaService) GenerarTicket(ctx context.Context, id uint) (string, error) {
	venta, err := s.ventas.FindByID(ctx, id)
	if err != nil {
		return "", ErrVentaNoEncontrada
	}
	return infra.GenerateTicketPDF(venta, s.pdfPath)
}

func ventaToListItem(v *model.Venta) *dto.VentaListItem {
	detalles := make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		item := dto.DetalleVentaResponse{
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		}
		if d.Producto != nil {
			item.Producto = d.Producto.Nombre
			item.Codigo = d.Producto.Codigo
		}
		detalles = append(detalles, item)
	}
	empleado := ""
	if v.Empleado != nil {
		empleado = v.Empleado.NombreCompleto
	}
	return &dto.VentaListItem{
		ID:          v.ID,
		FechaVenta:  v.CreatedAt.Format("2006-01-02 15:04:05"),
		Total:       v.Total,
		PagoCliente: v.PagoCliente,
		Cambio:      v.Cambio,
		Estado:      v.Estado,
		Empleado:    empleado,
		Detalles:    detalles,
	}
}
