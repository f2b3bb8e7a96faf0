package model

import "time"

// Categoria groups the services offered on the site (e.g. "Tecnología y
// Desarrollo"). A Categoria owns its servicios: the service layer refuses to
// delete one while any servicio still references it.
type Categoria struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"size:100;not null"`
	Descripcion *string
	CreatedAt   time.Time

	Servicios []Servicio `gorm:"foreignKey:CategoriaID"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Categoria) TableName() string { return "categorias" }
