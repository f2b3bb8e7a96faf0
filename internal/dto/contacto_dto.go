package dto

type ContactoFilter struct {
	Estado string `form:"estado,default=todos"` // nuevo | leido | respondido | cerrado | todos
	Page   int    `form:"page,default=1" validate:"min=1"`
}

type CrearContactoRequest struct {
	Nombre  string  `json:"nombre"  validate:"required"`
	Email   string  `json:"email"   validate:"required,email"`
	Asunto  *string `json:"asunto"  validate:"omitempty,max=200"`
	Mensaje string  `json:"mensaje" validate:"required"`
}

type ContactoResponse struct {
	ID        uint    `json:"id"`
	Nombre    string  `json:"nombre"`
	Email     string  `json:"email"`
	Asunto    *string `json:"asunto,omitempty"`
	Mensaje   string  `json:"mensaje"`
	Estado    string  `json:"estado"`
	CreatedAt string  `json:"created_at"`
}

type ContactoListResponse struct {
	Data  []ContactoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
