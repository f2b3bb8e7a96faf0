package model

import "time"

// Estados válidos de un mensaje de contacto.
const (
	ContactoNuevo      = "nuevo"
	ContactoLeido      = "leido"
	ContactoRespondido = "respondido"
	ContactoCerrado    = "cerrado"
)

var EstadosContacto = []string{
	ContactoNuevo,
	ContactoLeido,
	ContactoRespondido,
	ContactoCerrado,
}

// EstadoContactoValido reports whether estado belongs to the fixed set.
func EstadoContactoValido(estado string) bool {
	for _, e := range EstadosContacto {
		if e == estado {
			return true
		}
	}
	return false
}

// Contacto is a message from the public contact form. Like Cotizacion it is
// append-mostly and never deleted; triage happens via Estado alone.
type Contacto struct {
	ID        uint      `gorm:"primaryKey"`
	Nombre    string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:100;not null"`
	Asunto    *string   `gorm:"size:200"`
	Mensaje   string    `gorm:"type:text;not null"`
	Estado    string    `gorm:"size:20;not null;default:nuevo;index"`
	CreatedAt time.Time `gorm:"index"`
}

func (Contacto) TableName() string { return "contactos" }
