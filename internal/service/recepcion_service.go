package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"gorm.io/gorm"
)

const observacionProductoNuevo = "Producto nuevo - stock inicial"

// RecepcionService registers goods arriving into stock: topping up an
// existing product or creating a new one seeded with initial stock.
type RecepcionService interface {
	RecibirExistente(ctx context.Context, req dto.RecibirExistenteRequest) (*dto.RecepcionResponse, error)
	CrearProductoNuevo(ctx context.Context, req dto.CrearProductoRequest) (*dto.RecepcionResponse, error)
	VerificarProducto(ctx context.Context, codigo string) (*dto.ProductoResponse, error)
	VerificarCodigo(ctx context.Context, codigo string) (*dto.VerificarCodigoResponse, error)
	HistorialRecepciones(ctx context.Context, limite int) ([]dto.RecepcionHistorialItem, error)
}

type recepcionService struct {
	productos   repository.ProductoRepository
	recepciones repository.RecepcionRepository
	movimientos repository.MovimientoRepository
}

func NewRecepcionService(
	productos repository.ProductoRepository,
	recepciones repository.RecepcionRepository,
	movimientos repository.MovimientoRepository,
) RecepcionService {
	return &recepcionService{productos: productos, recepciones: recepciones, movimientos: movimientos}
}

// RecibirExistente increments stock of the product resolved by code and
// records the receipt plus its ledger row, all in one transaction.
func (s *recepcionService) RecibirExistente(ctx context.Context, req dto.RecibirExistenteRequest) (*dto.RecepcionResponse, error) {
	if req.CantidadRecibida <= 0 {
		return nil, ErrCantidadInvalida
	}
	fecha, err := parseFecha(req.FechaRecepcion)
	if err != nil {
		return nil, err
	}
	codigo := strings.ToUpper(strings.TrimSpace(req.Codigo))

	var resp dto.RecepcionResponse
	txErr := runTx(ctx, s.productos.DB(), func(tx *gorm.DB) error {
		p, err := s.productos.FindByCodigoForUpdateTx(tx, codigo)
		if err != nil {
			return ErrProductoNoEncontrado
		}

		anterior := p.StockActual
		nuevo := anterior + req.CantidadRecibida
		if err := s.productos.SetStockTx(tx, p.ID, nuevo); err != nil {
			return err
		}

		rec := &model.Recepcion{
			ProductoID:       p.ID,
			EmpleadoID:       req.EmpleadoID,
			CantidadRecibida: req.CantidadRecibida,
			FechaRecepcion:   fecha,
			Observaciones:    req.Observaciones,
		}
		if err := s.recepciones.CreateTx(tx, rec); err != nil {
			return err
		}

		mov := &model.MovimientoInventario{
			ProductoID:     p.ID,
			EmpleadoID:     req.EmpleadoID,
			TipoMovimiento: model.MovimientoEntrada,
			Cantidad:       req.CantidadRecibida,
			Motivo:         "Recepción de productos",
		}
		if err := s.movimientos.CreateTx(tx, mov); err != nil {
			return err
		}

		resp = dto.RecepcionResponse{
			RecepcionID:      rec.ID,
			ProductoID:       p.ID,
			Producto:         p.Nombre,
			Codigo:           p.Codigo,
			CantidadAnterior: anterior,
			CantidadRecibida: req.CantidadRecibida,
			CantidadNueva:    nuevo,
			Mensaje:          "Producto recibido exitosamente",
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &resp, nil
}

// CrearProductoNuevo inserts the product (active, stock = initial quantity)
// together with its first receipt and ledger row. The code is uppercased
// before the uniqueness check; the unique index backs that check under
// concurrent submissions.
func (s *recepcionService) CrearProductoNuevo(ctx context.Context, req dto.CrearProductoRequest) (*dto.RecepcionResponse, error) {
	if req.CantidadInicial <= 0 || !req.Precio.IsPositive() {
		return nil, ErrCantidadInvalida
	}
	fecha, err := parseFecha(req.FechaRecepcion)
	if err != nil {
		return nil, err
	}
	codigo := strings.ToUpper(strings.TrimSpace(req.Codigo))

	stockMinimo := 5
	if req.StockMinimo != nil {
		stockMinimo = *req.StockMinimo
	}
	observaciones := req.Observaciones
	if observaciones == nil || *observaciones == "" {
		def := observacionProductoNuevo
		observaciones = &def
	}

	var resp dto.RecepcionResponse
	txErr := runTx(ctx, s.productos.DB(), func(tx *gorm.DB) error {
		existe, err := s.productos.CodigoExiste(ctx, codigo)
		if err != nil {
			return err
		}
		if existe {
			return ErrCodigoDuplicado
		}

		p := &model.Producto{
			Codigo:       codigo,
			Nombre:       req.Nombre,
			Precio:       req.Precio,
			StockActual:  req.CantidadInicial,
			StockMinimo:  stockMinimo,
			UnidadMedida: req.UnidadMedida,
			TipoProducto: req.TipoProducto,
			Activo:       true,
		}
		if err := s.productos.CreateTx(tx, p); err != nil {
			// A concurrent insert can win the race between the existence
			// check and this insert; the unique index reports it here.
			if isUniqueViolation(err) {
				return ErrCodigoDuplicado
			}
			return err
		}

		rec := &model.Recepcion{
			ProductoID:       p.ID,
			EmpleadoID:       req.EmpleadoID,
			CantidadRecibida: req.CantidadInicial,
			FechaRecepcion:   fecha,
			Observaciones:    observaciones,
		}
		if err := s.recepciones.CreateTx(tx, rec); err != nil {
			return err
		}

		mov := &model.MovimientoInventario{
			ProductoID:     p.ID,
			EmpleadoID:     req.EmpleadoID,
			TipoMovimiento: model.MovimientoEntrada,
			Cantidad:       req.CantidadInicial,
			Motivo:         observacionProductoNuevo,
		}
		if err := s.movimientos.CreateTx(tx, mov); err != nil {
			return err
		}

		resp = dto.RecepcionResponse{
			RecepcionID:      rec.ID,
			ProductoID:       p.ID,
			Producto:         p.Nombre,
			Codigo:           p.Codigo,
			CantidadAnterior: 0,
			CantidadRecibida: req.CantidadInicial,
			CantidadNueva:    req.CantidadInicial,
			Mensaje:          "Producto creado exitosamente",
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &resp, nil
}

func (s *recepcionService) VerificarProducto(ctx context.Context, codigo string) (*dto.ProductoResponse, error) {
	p, err := s.productos.FindByCodigo(ctx, strings.ToUpper(strings.TrimSpace(codigo)))
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}
	resp := productoToResponse(p)
	return &resp, nil
}

// VerificarCodigo is advisory: the suggested code can be taken by a
// concurrent submission between this call and the insert, which the unique
// index then rejects. Free codes come back unchanged; taken ones yield the
// next PRD-prefixed code (max numeric suffix + 1, zero-padded to 3 digits).
func (s *recepcionService) VerificarCodigo(ctx context.Context, codigo string) (*dto.VerificarCodigoResponse, error) {
	codigo = strings.ToUpper(strings.TrimSpace(codigo))
	existe, err := s.productos.CodigoExiste(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if !existe {
		return &dto.VerificarCodigoResponse{Existe: false, CodigoSugerido: codigo}, nil
	}

	ultimo, err := s.productos.UltimoCodigoPRD(ctx)
	if err != nil {
		return nil, err
	}
	siguiente := 1
	if len(ultimo) == 6 && strings.HasPrefix(ultimo, "PRD") {
		if n, convErr := strconv.Atoi(ultimo[3:]); convErr == nil {
			siguiente = n + 1
		}
	}
	return &dto.VerificarCodigoResponse{
		Existe:         true,
		CodigoSugerido: fmt.Sprintf("PRD%03d", siguiente),
	}, nil
}

func (s *recepcionService) HistorialRecepciones(ctx context.Context, limite int) ([]dto.RecepcionHistorialItem, error) {
	recepciones, err := s.recepciones.List(ctx, limite)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RecepcionHistorialItem, 0, len(recepciones))
	for _, r := range recepciones {
		item := dto.RecepcionHistorialItem{
			ID:               r.ID,
			CantidadRecibida: r.CantidadRecibida,
			FechaRecepcion:   r.FechaRecepcion.Format("2006-01-02"),
			Observaciones:    r.Observaciones,
			FechaRegistro:    r.CreatedAt.Format("2006-01-02 15:04"),
		}
		if r.Producto != nil {
			item.Codigo = r.Producto.Codigo
			item.Producto = r.Producto.Nombre
			item.UnidadMedida = r.Producto.UnidadMedida
			item.TipoProducto = r.Producto.TipoProducto
		}
		if r.Empleado != nil {
			item.Empleado = r.Empleado.NombreCompleto
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func parseFecha(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return t, nil
}

// isUniqueViolation reports whether err is a Postgres duplicate-key error.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
