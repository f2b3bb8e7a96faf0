package handler

import (
	"net/http"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/apierror"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactosHandler struct{ svc service.ContactoService }

func NewContactosHandler(svc service.ContactoService) *ContactosHandler {
	return &ContactosHandler{svc: svc}
}

// Crear POST /api/contacto — public contact form.
func (h *ContactosHandler) Crear(c *gin.Context) {
	var req dto.CrearContactoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /admin/contactos?estado=&page=
func (h *ContactosHandler) Listar(c *gin.Context) {
	var filter dto.ContactoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar contactos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /admin/contactos/:id
func (h *ContactosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CambiarEstado PUT /admin/contactos/:id/estado
func (h *ContactosHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.CambiarEstado(c.Request.Context(), id, req.Estado); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Estado actualizado exitosamente"})
}
