package dto

// ─── Filter / List ──────────────────────────────────────────────────────────

// CotizacionFilter is bound from the query string of GET /admin/cotizaciones.
// Page size is fixed at 20 rows, newest first.
type CotizacionFilter struct {
	Estado string `form:"estado,default=todas"` // pendiente | en_proceso | completada | cancelada | todas
	Page   int    `form:"page,default=1" validate:"min=1"`
}

// PageSize is the fixed number of rows per page for lead listings.
const PageSize = 20

type CotizacionListResponse struct {
	Data  []CotizacionResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearCotizacionRequest is the public quote form. Only nombre, email and
// mensaje are mandatory; fecha_limite is free text that may or may not parse.
type CrearCotizacionRequest struct {
	Nombre      string  `json:"nombre"  validate:"required"`
	Email       string  `json:"email"   validate:"required,email"`
	Telefono    *string `json:"telefono"     validate:"omitempty,max=20"`
	Empresa     *string `json:"empresa"      validate:"omitempty,max=100"`
	CategoriaID *uint   `json:"categoria_id"`
	ServicioID  *uint   `json:"servicio_id"`
	Mensaje     string  `json:"mensaje" validate:"required"`
	Presupuesto *string `json:"presupuesto"  validate:"omitempty,max=50"`
	FechaLimite *string `json:"fecha_limite"` // YYYY-MM-DD
}

type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CotizacionResponse struct {
	ID          uint    `json:"id"`
	Nombre      string  `json:"nombre"`
	Email       string  `json:"email"`
	Telefono    *string `json:"telefono,omitempty"`
	Empresa     *string `json:"empresa,omitempty"`
	CategoriaID *uint   `json:"categoria_id,omitempty"`
	ServicioID  *uint   `json:"servicio_id,omitempty"`
	Mensaje     string  `json:"mensaje"`
	Presupuesto *string `json:"presupuesto,omitempty"`
	FechaLimite *string `json:"fecha_limite,omitempty"` // YYYY-MM-DD
	Estado      string  `json:"estado"`
	CreatedAt   string  `json:"created_at"`
}
