package handler

import (
	"net/http"

	"tiendapos/internal/dto"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

func (h *ReportesHandler) VentasPorDia(c *gin.Context) {
	resp, err := h.svc.VentasPorDia(c.Request.Context(), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) IngresosPorDia(c *gin.Context) {
	resp, err := h.svc.IngresosPorDia(c.Request.Context(), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) ProductosMasVendidos(c *gin.Context) {
	desde, hasta := c.Query("desde"), c.Query("hasta")
	if desde == "" && hasta == "" {
		resp, err := h.svc.ProductosMasVendidosGeneral(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}
	resp, err := h.svc.ProductosMasVendidos(c.Request.Context(), desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) RendimientoEmpleados(c *gin.Context) {
	resp, err := h.svc.RendimientoPorEmpleado(c.Request.Context(), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CrearReporteProducto registers a product incident (damaged, expired, mispriced).
func (h *ReportesHandler) CrearReporteProducto(c *gin.Context) {
	var req dto.CrearReporteProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearReporteProducto(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReportesHandler) ListarReportesProductos(c *gin.Context) {
	resp, err := h.svc.ListarReportesProductos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
