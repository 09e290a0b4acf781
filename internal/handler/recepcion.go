package handler

import (
	"net/http"
	"strconv"

	"tiendapos/internal/dto"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
)

type RecepcionHandler struct{ svc service.RecepcionService }

func NewRecepcionHandler(svc service.RecepcionService) *RecepcionHandler {
	return &RecepcionHandler{svc: svc}
}

func (h *RecepcionHandler) RecibirExistente(c *gin.Context) {
	var req dto.RecibirExistenteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecibirExistente(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecepcionHandler) CrearProductoNuevo(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearProductoNuevo(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// VerificarProducto looks a product up by code before receiving stock for it.
func (h *RecepcionHandler) VerificarProducto(c *gin.Context) {
	resp, err := h.svc.VerificarProducto(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerificarCodigo reports whether a code is taken and suggests the next free
// PRD code for new products.
func (h *RecepcionHandler) VerificarCodigo(c *gin.Context) {
	resp, err := h.svc.VerificarCodigo(c.Request.Context(), c.Query("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecepcionHandler) Historial(c *gin.Context) {
	limite, _ := strconv.Atoi(c.DefaultQuery("limite", "50"))
	resp, err := h.svc.HistorialRecepciones(c.Request.Context(), limite)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
