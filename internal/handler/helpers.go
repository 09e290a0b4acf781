package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"tiendapos/internal/apierror"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return uint(id), true
}

// respondError maps service error kinds to HTTP status codes. Unknown errors
// are attached to the context so ErrorHandler logs them with request context.
func respondError(c *gin.Context, err error) {
	var stockErr *service.StockInsuficienteError
	switch {
	case errors.Is(err, service.ErrProductoNoEncontrado),
		errors.Is(err, service.ErrEmpleadoNoEncontrado),
		errors.Is(err, service.ErrVentaNoEncontrada):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &stockErr),
		errors.Is(err, service.ErrTipoAjusteInvalido),
		errors.Is(err, service.ErrCantidadInvalida),
		errors.Is(err, service.ErrCodigoDuplicado),
		errors.Is(err, service.ErrUsuarioDuplicado),
		errors.Is(err, service.ErrPagoInsuficiente),
		errors.Is(err, service.ErrVentaVacia):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCredencialesInvalidas):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
