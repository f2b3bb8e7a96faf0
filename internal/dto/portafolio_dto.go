package dto

// Multipart admin forms, same convention as the servicio DTOs. FechaProyecto
// arrives as "YYYY-MM-DD" text; the service layer decides what an unparsable
// value means (cleared, not rejected).

type CrearPortafolioRequest struct {
	Titulo        string  `form:"titulo" validate:"required,min=2,max=100"`
	Descripcion   *string `form:"descripcion"`
	URL           *string `form:"url"          validate:"omitempty,max=200"`
	Cliente       *string `form:"cliente"      validate:"omitempty,max=100"`
	FechaProyecto *string `form:"fecha_proyecto"`
	Tecnologias   *string `form:"tecnologias"  validate:"omitempty,max=200"`
	Activo        bool    `form:"activo"`
}

type ActualizarPortafolioRequest struct {
	Titulo        string  `form:"titulo" validate:"required,min=2,max=100"`
	Descripcion   *string `form:"descripcion"`
	URL           *string `form:"url"          validate:"omitempty,max=200"`
	Cliente       *string `form:"cliente"      validate:"omitempty,max=100"`
	FechaProyecto *string `form:"fecha_proyecto"`
	Tecnologias   *string `form:"tecnologias"  validate:"omitempty,max=200"`
	Activo        bool    `form:"activo"`
}

type PortafolioResponse struct {
	ID            uint    `json:"id"`
	Titulo        string  `json:"titulo"`
	Descripcion   *string `json:"descripcion,omitempty"`
	Imagen        *string `json:"imagen,omitempty"`
	URL           *string `json:"url,omitempty"`
	Cliente       *string `json:"cliente,omitempty"`
	FechaProyecto *string `json:"fecha_proyecto,omitempty"` // YYYY-MM-DD
	Tecnologias   *string `json:"tecnologias,omitempty"`
	Activo        bool    `json:"activo"`
}
