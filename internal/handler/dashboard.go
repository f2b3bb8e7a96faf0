package handler

import (
	"net/http"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/apierror"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.SitioService }

func NewDashboardHandler(svc service.SitioService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Obtener GET /admin/dashboard — counters plus the five most recent leads of
// each kind.
func (h *DashboardHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar el dashboard"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
