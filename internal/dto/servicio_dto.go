package dto

// Admin create/update come in as multipart forms (the image travels alongside
// the fields), hence `form` tags instead of `json`.

type CrearServicioRequest struct {
	Nombre      string  `form:"nombre"       validate:"required,min=2,max=100"`
	Descripcion *string `form:"descripcion"`
	CategoriaID uint    `form:"categoria_id" validate:"required"`
	Precio      *string `form:"precio"       validate:"omitempty,max=50"`
	Activo      bool    `form:"activo"`
}

type ActualizarServicioRequest struct {
	Nombre      string  `form:"nombre"       validate:"required,min=2,max=100"`
	Descripcion *string `form:"descripcion"`
	CategoriaID uint    `form:"categoria_id" validate:"required"`
	Precio      *string `form:"precio"       validate:"omitempty,max=50"`
	Activo      bool    `form:"activo"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ServicioResponse struct {
	ID          uint    `json:"id"`
	CategoriaID uint    `json:"categoria_id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
	Precio      *string `json:"precio,omitempty"`
	Imagen      *string `json:"imagen,omitempty"`
	Activo      bool    `json:"activo"`
}

// ServicioPublicResponse is the trimmed shape served by the public API
// (GET /api/servicios/:categoria_id).
type ServicioPublicResponse struct {
	ID          uint    `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
}

// ServicioDetalle bundles a service with up to three related services from the
// same category for the detail page.
type ServicioDetalle struct {
	Servicio     ServicioResponse   `json:"servicio"`
	Relacionados []ServicioResponse `json:"relacionados"`
}
