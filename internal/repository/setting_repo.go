package repository

import (
	"context"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository provides key/value access to site_settings.
type SettingRepository interface {
	ObtenerPorClave(ctx context.Context, clave string) (*model.SiteSetting, error)
	Listar(ctx context.Context) ([]model.SiteSetting, error)
	// UpsertVarios inserts or overwrites each clave→valor pair in one batch.
	// Keys are never deleted.
	UpsertVarios(ctx context.Context, valores map[string]string) error
}

type settingRepository struct{ db *gorm.DB }

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) ObtenerPorClave(ctx context.Context, clave string) (*model.SiteSetting, error) {
	var s model.SiteSetting
	err := r.db.WithContext(ctx).Where("clave = ?", clave).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingRepository) Listar(ctx context.Context) ([]model.SiteSetting, error) {
	var list []model.SiteSetting
	err := r.db.WithContext(ctx).Order("clave asc").Find(&list).Error
	return list, err
}

// UpsertVarios relies on ON CONFLICT (clave) DO UPDATE so the insert-or-update
// is a single atomic statement per key, with no lookup-then-write race between
// two concurrent admin sessions.
func (r *settingRepository) UpsertVarios(ctx context.Context, valores map[string]string) error {
	if len(valores) == 0 {
		return nil
	}
	rows := make([]model.SiteSetting, 0, len(valores))
	for clave, valor := range valores {
		rows = append(rows, model.SiteSetting{Clave: clave, Valor: valor})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "clave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor"}),
	}).Create(&rows).Error
}
