package service

import (
	"context"
	"testing"

	"tiendapos/internal/config"
	"tiendapos/internal/dto"
	"tiendapos/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func nuevoEmpleadoService() (EmpleadoService, *stubEmpleadoRepo) {
	repo := newStubEmpleadoRepo()
	cfg := &config.Config{JWTSecret: "secreto-de-prueba", JWTExpirationHours: 8}
	return NewEmpleadoService(repo, cfg), repo
}

func empleadoDePrueba(id uint, usuario, password string) *model.Empleado {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &model.Empleado{
		ID:             id,
		NombreCompleto: "Ana Torres",
		Usuario:        usuario,
		Contrasena:     string(hash),
		Cargo:          "Cajero",
		Activo:         true,
	}
}

func TestLogin(t *testing.T) {
	svc, repo := nuevoEmpleadoService()
	repo.empleados[1] = empleadoDePrueba(1, "ana", "clave123")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Usuario:    "ana",
		Contrasena: "clave123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana", resp.Empleado.Usuario)

	token, err := jwt.Parse(resp.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secreto-de-prueba"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "ana", claims["usuario"])
	assert.Equal(t, "Cajero", claims["cargo"])
}

func TestLoginContrasenaIncorrecta(t *testing.T) {
	svc, repo := nuevoEmpleadoService()
	repo.empleados[1] = empleadoDePrueba(1, "ana", "clave123")

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Usuario:    "ana",
		Contrasena: "otra",
	})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLoginEmpleadoInactivo(t *testing.T) {
	svc, repo := nuevoEmpleadoService()
	e := empleadoDePrueba(1, "ana", "clave123")
	e.Activo = false
	repo.empleados[1] = e

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Usuario:    "ana",
		Contrasena: "clave123",
	})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestCrearEmpleado(t *testing.T) {
	svc, repo := nuevoEmpleadoService()

	resp, err := svc.Crear(context.Background(), dto.CrearEmpleadoRequest{
		ID:             7,
		NombreCompleto: "Luis Pérez",
		Usuario:        "luis",
		Contrasena:     "clave123",
		Cargo:          "almacenista",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "Almacenista", resp.Cargo)

	guardado := repo.empleados[7]
	require.NotNil(t, guardado)
	assert.True(t, guardado.Activo)
	// The password is stored hashed, never in clear.
	assert.NotEqual(t, "clave123", guardado.Contrasena)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.Contrasena), []byte("clave123")))
}

func TestCrearEmpleadoUsuarioDuplicado(t *testing.T) {
	svc, repo := nuevoEmpleadoService()
	repo.empleados[1] = empleadoDePrueba(1, "ana", "clave123")

	_, err := svc.Crear(context.Background(), dto.CrearEmpleadoRequest{
		ID:             2,
		NombreCompleto: "Ana Dos",
		Usuario:        "ana",
		Contrasena:     "x12345",
		Cargo:          "Cajero",
	})
	assert.ErrorIs(t, err, ErrUsuarioDuplicado)
}

func TestActualizarEmpleado(t *testing.T) {
	svc, repo := nuevoEmpleadoService()
	repo.empleados[1] = empleadoDePrueba(1, "ana", "clave123")

	resp, err := svc.Actualizar(context.Background(), 1, dto.ActualizarEmpleadoRequest{
		Telefono: "555-0101",
		Cargo:    "supervisor",
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0101", resp.Telefono)
	assert.Equal(t, "Supervisor", resp.Cargo)
	assert.Equal(t, "ana", resp.Usuario) // unchanged
}

func TestActualizarEmpleadoUsuarioTomado(t *testing.T) {
	svc, repo := nuevoEmpleadoService()
	repo.empleados[1] = empleadoDePrueba(1, "ana", "clave123")
	repo.empleados[2] = empleadoDePrueba(2, "luis", "clave123")

	_, err := svc.Actualizar(context.Background(), 2, dto.ActualizarEmpleadoRequest{
		Usuario: "ana",
	})
	assert.ErrorIs(t, err, ErrUsuarioDuplicado)
}

func TestDesactivarEmpleado(t *testing.T) {
	svc, repo := nuevoEmpleadoService()
	repo.empleados[1] = empleadoDePrueba(1, "ana", "clave123")

	require.NoError(t, svc.Desactivar(context.Background(), 1))
	assert.False(t, repo.empleados[1].Activo)

	// Deactivated employees cannot log in.
	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Usuario:    "ana",
		Contrasena: "clave123",
	})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestDesactivarEmpleadoInexistente(t *testing.T) {
	svc, _ := nuevoEmpleadoService()
	assert.ErrorIs(t, svc.Desactivar(context.Background(), 42), ErrEmpleadoNoEncontrado)
}

func TestBuscarEmpleadoTerminoCorto(t *testing.T) {
	svc, repo := nuevoEmpleadoService()
	repo.empleados[1] = empleadoDePrueba(1, "ana", "clave123")

	resp, err := svc.Buscar(context.Background(), "a")
	require.NoError(t, err)
	assert.Empty(t, resp)
}
