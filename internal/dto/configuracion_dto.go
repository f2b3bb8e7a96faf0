package dto

// ActualizarConfiguracionRequest carries the admin settings screen as a flat
// clave→valor map. Keys never present in the store are created, existing ones
// are overwritten; nothing is ever deleted.
type ActualizarConfiguracionRequest struct {
	Valores map[string]string `json:"valores" validate:"required,min=1"`
}

type SettingResponse struct {
	Clave       string  `json:"clave"`
	Valor       string  `json:"valor"`
	Descripcion *string `json:"descripcion,omitempty"`
}
