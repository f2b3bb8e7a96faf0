package model

import "time"

// Usuario is an admin-panel account. The public site has no accounts at all;
// this table only backs the /admin login.
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100;uniqueIndex;not null"`
	Nombre       string `gorm:"size:100"`
	PasswordHash string `gorm:"size:100;not null"`
	Activo       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
