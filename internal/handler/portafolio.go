package handler

import (
	"net/http"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/apierror"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/service"

	"github.com/gin-gonic/gin"
)

type PortafolioHandler struct{ svc service.PortafolioService }

func NewPortafolioHandler(svc service.PortafolioService) *PortafolioHandler {
	return &PortafolioHandler{svc: svc}
}

// Crear POST /admin/portafolio (multipart: fields + optional "imagen")
func (h *PortafolioHandler) Crear(c *gin.Context) {
	var req dto.CrearPortafolioRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req, formFile(c, "imagen"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /admin/portafolio
func (h *PortafolioHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar portafolio"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /admin/portafolio/:id (multipart)
func (h *PortafolioHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarPortafolioRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req, formFile(c, "imagen"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /admin/portafolio/:id
func (h *PortafolioHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
