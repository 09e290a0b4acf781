package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"tiendapos/internal/apierror"
	"tiendapos/internal/dto"
	"tiendapos/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const consultaCacheTTL = 10 * time.Minute

// ConsultaHandler serves the price-check lookup used at the register.
// Read-only, no side effects on stock or the movement ledger.
type ConsultaHandler struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewConsultaHandler(repo repository.ProductoRepository, rdb *redis.Client) *ConsultaHandler {
	return &ConsultaHandler{repo: repo, rdb: rdb}
}

func (h *ConsultaHandler) PorCodigo(c *gin.Context) {
	codigo := strings.ToUpper(strings.TrimSpace(c.Param("codigo")))
	ctx := c.Request.Context()
	cacheKey := "producto:" + codigo

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ProductoResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	producto, err := h.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}

	resp := dto.ProductoResponse{
		ID:           producto.ID,
		Codigo:       producto.Codigo,
		Nombre:       producto.Nombre,
		Precio:       producto.Precio,
		StockActual:  producto.StockActual,
		StockMinimo:  producto.StockMinimo,
		UnidadMedida: producto.UnidadMedida,
		TipoProducto: producto.TipoProducto,
		EstadoStock:  producto.EstadoStock(),
		Activo:       producto.Activo,
	}

	// Best effort: a stale price entry only survives until the TTL expires.
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, consultaCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
