package model

import "time"

// Servicio is a single offering listed under a Categoria. Precio is free text
// ("desde $500", "a cotizar"), never a numeric amount.
type Servicio struct {
	ID          uint   `gorm:"primaryKey"`
	CategoriaID uint   `gorm:"not null;index"`
	Nombre      string `gorm:"size:100;not null"`
	Descripcion *string
	Precio      *string `gorm:"size:50"`
	Imagen      *string `gorm:"size:200"`
	Activo      bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Servicio) TableName() string { return "servicios" }
