package model

// SiteSetting is one key/value row of site-wide configuration (title, contact
// email, social links, legal texts). Values are opaque text; writes are
// upserts keyed on Clave and keys are never deleted.
type SiteSetting struct {
	ID          uint    `gorm:"primaryKey"`
	Clave       string  `gorm:"column:clave;size:50;uniqueIndex;not null"`
	Valor       string  `gorm:"type:text"`
	Descripcion *string `gorm:"size:200"`
}

func (SiteSetting) TableName() string { return "site_settings" }
