package repository

import (
	"context"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UsuarioRepository backs the admin login.
type UsuarioRepository interface {
	ObtenerPorUsername(ctx context.Context, username string) (*model.Usuario, error)
	// Upsert creates the account or refreshes its hash/name, keyed on username.
	// Used by cmd/seedadmin to provision the first admin.
	Upsert(ctx context.Context, u *model.Usuario) error
}

type usuarioRepository struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) ObtenerPorUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepository) Upsert(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"nombre", "password_hash", "activo"}),
	}).Create(u).Error
}
