package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil so runTx calls the closure
// directly, without a real transaction.

// ── ProductoRepository ───────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uint]*model.Producto
	nextID    uint
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uint]*model.Producto)}
}

func (r *stubProductoRepo) agregar(p *model.Producto) *model.Producto {
	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
	} else if p.ID > r.nextID {
		r.nextID = p.ID
	}
	r.productos[p.ID] = p
	return p
}

func (r *stubProductoRepo) CreateTx(_ *gorm.DB, p *model.Producto) error {
	for _, existente := range r.productos {
		if existente.Codigo == p.Codigo {
			return errors.New(`duplicate key value violates unique constraint "idx_productos_codigo"`)
		}
	}
	r.agregar(p)
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok || !p.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.Codigo == codigo && p.Activo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) CodigoExiste(_ context.Context, codigo string) (bool, error) {
	for _, p := range r.productos {
		if p.Codigo == codigo {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProductoRepo) UltimoCodigoPRD(_ context.Context) (string, error) {
	max := -1
	for _, p := range r.productos {
		if len(p.Codigo) != 6 || !strings.HasPrefix(p.Codigo, "PRD") {
			continue
		}
		n, err := strconv.Atoi(p.Codigo[3:])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	if max < 0 {
		return "", nil
	}
	return fmt.Sprintf("PRD%03d", max), nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	var result []model.Producto
	for _, p := range r.productos {
		if p.Activo {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubProductoRepo) Buscar(_ context.Context, termino string, limit int) ([]model.Producto, error) {
	termino = strings.ToLower(termino)
	var result []model.Producto
	for _, p := range r.productos {
		if !p.Activo {
			continue
		}
		if strings.Contains(strings.ToLower(p.Nombre), termino) ||
			strings.Contains(strings.ToLower(p.Codigo), termino) {
			result = append(result, *p)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *stubProductoRepo) FindByIDForUpdateTx(_ *gorm.DB, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok || !p.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindByCodigoForUpdateTx(_ *gorm.DB, codigo string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.Codigo == codigo && p.Activo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) SetStockTx(_ *gorm.DB, id uint, stock int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockActual = stock
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

// ── MovimientoRepository ─────────────────────────────────────────────────────

type stubMovimientoRepo struct {
	movimientos []*model.MovimientoInventario
}

func newStubMovimientoRepo() *stubMovimientoRepo { return &stubMovimientoRepo{} }

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoInventario) error {
	m.ID = uint(len(r.movimientos) + 1)
	r.movimientos = append(r.movimientos, m)
	return nil
}

func (r *stubMovimientoRepo) List(_ context.Context, filter repository.MovimientoFilter) ([]model.MovimientoInventario, error) {
	var result []model.MovimientoInventario
	for _, m := range r.movimientos {
		if filter.ProductoID != 0 && m.ProductoID != filter.ProductoID {
			continue
		}
		if filter.TipoMovimiento != "" && m.TipoMovimiento != filter.TipoMovimiento {
			continue
		}
		result = append(result, *m)
	}
	return result, nil
}

// ── RecepcionRepository ──────────────────────────────────────────────────────

type stubRecepcionRepo struct {
	recepciones []*model.Recepcion
}

func newStubRecepcionRepo() *stubRecepcionRepo { return &stubRecepcionRepo{} }

func (r *stubRecepcionRepo) CreateTx(_ *gorm.DB, rec *model.Recepcion) error {
	rec.ID = uint(len(r.recepciones) + 1)
	r.recepciones = append(r.recepciones, rec)
	return nil
}

func (r *stubRecepcionRepo) List(_ context.Context, limite int) ([]model.Recepcion, error) {
	var result []model.Recepcion
	for _, rec := range r.recepciones {
		result = append(result, *rec)
	}
	return result, nil
}

// ── VentaRepository ──────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uint]*model.Venta
	nextID uint
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uint]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	r.nextID++
	v.ID = r.nextID
	for i := range v.Detalles {
		v.Detalles[i].VentaID = v.ID
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uint) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context, estado string) ([]model.Venta, error) {
	var result []model.Venta
	for _, v := range r.ventas {
		if estado == "" || v.Estado == estado {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

// ── EmpleadoRepository ───────────────────────────────────────────────────────

type stubEmpleadoRepo struct {
	empleados map[uint]*model.Empleado
}

func newStubEmpleadoRepo() *stubEmpleadoRepo {
	return &stubEmpleadoRepo{empleados: make(map[uint]*model.Empleado)}
}

func (r *stubEmpleadoRepo) Create(_ context.Context, e *model.Empleado) error {
	r.empleados[e.ID] = e
	return nil
}

func (r *stubEmpleadoRepo) FindByID(_ context.Context, id uint) (*model.Empleado, error) {
	e, ok := r.empleados[id]
	if !ok || !e.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEmpleadoRepo) FindByUsuario(_ context.Context, usuario string) (*model.Empleado, error) {
	for _, e := range r.empleados {
		if e.Usuario == usuario && e.Activo {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEmpleadoRepo) List(_ context.Context) ([]model.Empleado, error) {
	var result []model.Empleado
	for _, e := range r.empleados {
		if e.Activo {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (r *stubEmpleadoRepo) Buscar(_ context.Context, termino string) ([]model.Empleado, error) {
	termino = strings.ToLower(termino)
	var result []model.Empleado
	for _, e := range r.empleados {
		if !e.Activo {
			continue
		}
		if strings.Contains(strings.ToLower(e.NombreCompleto), termino) ||
			strings.Contains(strings.ToLower(e.Usuario), termino) {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (r *stubEmpleadoRepo) FiltrarPorCargo(_ context.Context, cargo string) ([]model.Empleado, error) {
	var result []model.Empleado
	for _, e := range r.empleados {
		if e.Activo && e.Cargo == cargo {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (r *stubEmpleadoRepo) Update(_ context.Context, e *model.Empleado) error {
	r.empleados[e.ID] = e
	return nil
}

func (r *stubEmpleadoRepo) SoftDelete(_ context.Context, id uint) error {
	e, ok := r.empleados[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.Activo = false
	return nil
}

func (r *stubEmpleadoRepo) UsuarioExiste(_ context.Context, usuario string, excluirID uint) (bool, error) {
	for _, e := range r.empleados {
		if e.Usuario == usuario && e.ID != excluirID {
			return true, nil
		}
	}
	return false, nil
}
