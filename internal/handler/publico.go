package handler

import (
	"net/http"
	"strconv"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/apierror"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicoHandler serves the read-only endpoints the public site renders from:
// home page, services, portfolio, static pages and the site-wide payload.
type PublicoHandler struct {
	sitio      service.SitioService
	servicios  service.ServicioService
	portafolio service.PortafolioService
}

func NewPublicoHandler(sitio service.SitioService, servicios service.ServicioService, portafolio service.PortafolioService) *PublicoHandler {
	return &PublicoHandler{sitio: sitio, servicios: servicios, portafolio: portafolio}
}

// Sitio GET /api/sitio — branding settings + navigation menu.
func (h *PublicoHandler) Sitio(c *gin.Context) {
	resp, err := h.sitio.Sitio(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar el sitio"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Inicio GET /api/inicio — home page payload.
func (h *PublicoHandler) Inicio(c *gin.Context) {
	resp, err := h.sitio.Inicio(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar la página de inicio"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Servicios GET /api/servicios?categoria= — active services, optionally
// filtered by category.
func (h *PublicoHandler) Servicios(c *gin.Context) {
	var categoriaID *uint
	if raw := c.Query("categoria"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Categoría inválida"))
			return
		}
		v := uint(id)
		categoriaID = &v
	}
	resp, err := h.servicios.ListarActivos(c.Request.Context(), categoriaID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ServiciosPorCategoria GET /api/servicios/categoria/:categoria_id — the
// trimmed {id, nombre, descripcion} list.
func (h *PublicoHandler) ServiciosPorCategoria(c *gin.Context) {
	id, ok := parseID(c, "categoria_id")
	if !ok {
		return
	}
	resp, err := h.servicios.ListarPorCategoria(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar servicios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ServicioDetalle GET /api/servicios/detalle/:id — one service plus up to
// three related ones.
func (h *PublicoHandler) ServicioDetalle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.servicios.Detalle(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Portafolio GET /api/portafolio — active projects.
func (h *PublicoHandler) Portafolio(c *gin.Context) {
	resp, err := h.portafolio.ListarActivos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar portafolio"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PortafolioDetalle GET /api/portafolio/:id
func (h *PublicoHandler) PortafolioDetalle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.portafolio.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Pagina GET /api/pagina/:slug — static-page content (acerca, terminos,
// privacidad, accesibilidad).
func (h *PublicoHandler) Pagina(c *gin.Context) {
	contenido, err := h.sitio.Pagina(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contenido": contenido})
}
