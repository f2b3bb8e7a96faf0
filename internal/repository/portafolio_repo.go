package repository

import (
	"context"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"

	"gorm.io/gorm"
)

// PortafolioRepository defines CRUD and filtered reads for Portafolio.
type PortafolioRepository interface {
	Crear(ctx context.Context, p *model.Portafolio) error
	Listar(ctx context.Context) ([]model.Portafolio, error)
	ListarActivos(ctx context.Context, limit int) ([]model.Portafolio, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Portafolio, error)
	Actualizar(ctx context.Context, p *model.Portafolio) error
	Eliminar(ctx context.Context, id uint) error
	Contar(ctx context.Context) (int64, error)
	ContarActivos(ctx context.Context) (int64, error)
}

type portafolioRepository struct{ db *gorm.DB }

func NewPortafolioRepository(db *gorm.DB) PortafolioRepository {
	return &portafolioRepository{db: db}
}

func (r *portafolioRepository) Crear(ctx context.Context, p *model.Portafolio) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *portafolioRepository) Listar(ctx context.Context) ([]model.Portafolio, error) {
	var list []model.Portafolio
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *portafolioRepository) ListarActivos(ctx context.Context, limit int) ([]model.Portafolio, error) {
	var list []model.Portafolio
	q := r.db.WithContext(ctx).Where("activo = ?", true).Order("id asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *portafolioRepository) ObtenerPorID(ctx context.Context, id uint) (*model.Portafolio, error) {
	var p model.Portafolio
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *portafolioRepository) Actualizar(ctx context.Context, p *model.Portafolio) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *portafolioRepository) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Portafolio{}, "id = ?", id).Error
}

func (r *portafolioRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Portafolio{}).Count(&n).Error
	return n, err
}

func (r *portafolioRepository) ContarActivos(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Portafolio{}).Where("activo = ?", true).Count(&n).Error
	return n, err
}
