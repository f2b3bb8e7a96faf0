package model

import "time"

// Estados válidos de una cotización.
const (
	CotizacionPendiente  = "pendiente"
	CotizacionEnProceso  = "en_proceso"
	CotizacionCompletada = "completada"
	CotizacionCancelada  = "cancelada"
)

// EstadosCotizacion is the closed set accepted by CambiarEstado.
var EstadosCotizacion = []string{
	CotizacionPendiente,
	CotizacionEnProceso,
	CotizacionCompletada,
	CotizacionCancelada,
}

// EstadoCotizacionValido reports whether estado belongs to the fixed set.
func EstadoCotizacionValido(estado string) bool {
	for _, e := range EstadosCotizacion {
		if e == estado {
			return true
		}
	}
	return false
}

// Cotizacion is a quote request submitted from the public site. Rows are
// append-mostly: after creation only Estado may change, and there is no
// delete path.
type Cotizacion struct {
	ID          uint    `gorm:"primaryKey"`
	Nombre      string  `gorm:"size:100;not null"`
	Email       string  `gorm:"size:100;not null"`
	Telefono    *string `gorm:"size:20"`
	Empresa     *string `gorm:"size:100"`
	CategoriaID *uint
	ServicioID  *uint
	Mensaje     string  `gorm:"type:text;not null"`
	Presupuesto *string `gorm:"size:50"`
	FechaLimite *time.Time
	Estado      string    `gorm:"size:20;not null;default:pendiente;index"`
	CreatedAt   time.Time `gorm:"index"`

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
	Servicio  *Servicio  `gorm:"foreignKey:ServicioID"`
}

func (Cotizacion) TableName() string { return "cotizaciones" }
