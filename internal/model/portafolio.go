package model

import "time"

// Portafolio is a showcased past project. FechaProyecto is optional; an
// unparsable date from the admin form clears it instead of failing the save.
type Portafolio struct {
	ID            uint   `gorm:"primaryKey"`
	Titulo        string `gorm:"size:100;not null"`
	Descripcion   *string
	Imagen        *string `gorm:"size:200"`
	URL           *string `gorm:"size:200"`
	Cliente       *string `gorm:"size:100"`
	FechaProyecto *time.Time
	Tecnologias   *string `gorm:"size:200"`
	Activo        bool    `gorm:"not null;default:true"`
	CreatedAt     time.Time
}

func (Portafolio) TableName() string { return "portafolio" }
