package handler

import (
	"net/http"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/apierror"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfiguracionHandler struct{ svc service.ConfiguracionService }

func NewConfiguracionHandler(svc service.ConfiguracionService) *ConfiguracionHandler {
	return &ConfiguracionHandler{svc: svc}
}

// Listar GET /admin/configuracion
func (h *ConfiguracionHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar la configuración"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /admin/configuracion — upserts every submitted pair.
func (h *ConfiguracionHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarConfiguracionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.GuardarVarios(c.Request.Context(), req.Valores); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al guardar la configuración"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Configuración actualizada exitosamente"})
}
