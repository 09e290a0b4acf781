package service

import (
	"context"
	"strings"
	"time"

	"tiendapos/internal/config"
	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// EmpleadoService handles staff accounts and login. It never touches stock.
type EmpleadoService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error)
	Listar(ctx context.Context) ([]dto.EmpleadoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.EmpleadoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error)
	Desactivar(ctx context.Context, id uint) error
	Buscar(ctx context.Context, termino string) ([]dto.EmpleadoResponse, error)
	FiltrarPorCargo(ctx context.Context, cargo string) ([]dto.EmpleadoResponse, error)
}

type empleadoService struct {
	repo repository.EmpleadoRepository
	cfg  *config.Config
}

func NewEmpleadoService(repo repository.EmpleadoRepository, cfg *config.Config) EmpleadoService {
	return &empleadoService{repo: repo, cfg: cfg}
}

func (s *empleadoService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	empleado, err := s.repo.FindByUsuario(ctx, req.Usuario)
	if err != nil {
		return nil, ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(empleado.Contrasena), []byte(req.Contrasena)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, err := s.generateToken(empleado)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Empleado: empleadoToResponse(empleado),
	}, nil
}

func (s *empleadoService) Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	existe, err := s.repo.UsuarioExiste(ctx, req.Usuario, 0)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, ErrUsuarioDuplicado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), 10)
	if err != nil {
		return nil, err
	}
	empleado := &model.Empleado{
		ID:             req.ID,
		NombreCompleto: req.NombreCompleto,
		Usuario:        req.Usuario,
		Contrasena:     string(hash),
		Telefono:       req.Telefono,
		Cargo:          capitalizar(req.Cargo),
		Activo:         true,
	}
	if err := s.repo.Create(ctx, empleado); err != nil {
		return nil, err
	}
	resp := empleadoToResponse(empleado)
	return &resp, nil
}

func (s *empleadoService) Listar(ctx context.Context) ([]dto.EmpleadoResponse, error) {
	empleados, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return empleadosToResponse(empleados), nil
}

func (s *empleadoService) Obtener(ctx context.Context, id uint) (*dto.EmpleadoResponse, error) {
	empleado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEmpleadoNoEncontrado
	}
	resp := empleadoToResponse(empleado)
	return &resp, nil
}

func (s *empleadoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	empleado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEmpleadoNoEncontrado
	}
	if req.Usuario != "" && req.Usuario != empleado.Usuario {
		existe, err := s.repo.UsuarioExiste(ctx, req.Usuario, id)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, ErrUsuarioDuplicado
		}
		empleado.Usuario = req.Usuario
	}
	if req.NombreCompleto != "" {
		empleado.NombreCompleto = req.NombreCompleto
	}
	if req.Telefono != "" {
		empleado.Telefono = req.Telefono
	}
	if req.Cargo != "" {
		empleado.Cargo = capitalizar(req.Cargo)
	}
	if err := s.repo.Update(ctx, empleado); err != nil {
		return nil, err
	}
	resp := empleadoToResponse(empleado)
	return &resp, nil
}

// Desactivar soft-deletes: movement, receipt and sale rows keep their
// employee reference for the audit trail.
func (s *empleadoService) Desactivar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrEmpleadoNoEncontrado
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *empleadoService) Buscar(ctx context.Context, termino string) ([]dto.EmpleadoResponse, error) {
	if len(termino) < 2 {
		return []dto.EmpleadoResponse{}, nil
	}
	empleados, err := s.repo.Buscar(ctx, termino)
	if err != nil {
		return nil, err
	}
	return empleadosToResponse(empleados), nil
}

func (s *empleadoService) FiltrarPorCargo(ctx context.Context, cargo string) ([]dto.EmpleadoResponse, error) {
	empleados, err := s.repo.FiltrarPorCargo(ctx, capitalizar(cargo))
	if err != nil {
		return nil, err
	}
	return empleadosToResponse(empleados), nil
}

func (s *empleadoService) generateToken(e *model.Empleado) (string, error) {
	claims := jwt.MapClaims{
		"empleado_id": e.ID,
		"usuario":     e.Usuario,
		"cargo":       e.Cargo,
		"exp":         time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func capitalizar(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func empleadoToResponse(e *model.Empleado) dto.EmpleadoResponse {
	return dto.EmpleadoResponse{
		ID:             e.ID,
		NombreCompleto: e.NombreCompleto,
		Usuario:        e.Usuario,
		Telefono:       e.Telefono,
		Cargo:          e.Cargo,
		Activo:         e.Activo,
		FechaCreacion:  e.CreatedAt.Format("2006-01-02"),
	}
}

func empleadosToResponse(empleados []model.Empleado) []dto.EmpleadoResponse {
	resp := make([]dto.EmpleadoResponse, len(empleados))
	for i := range empleados {
		resp[i] = empleadoToResponse(&empleados[i])
	}
	return resp
}
