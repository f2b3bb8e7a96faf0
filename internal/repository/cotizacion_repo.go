package repository

import (
	"context"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"

	"gorm.io/gorm"
)

// CotizacionRepository stores quote requests. There is deliberately no delete:
// leads are append-mostly and only their estado changes after creation.
type CotizacionRepository interface {
	Crear(ctx context.Context, c *model.Cotizacion) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Cotizacion, error)
	Listar(ctx context.Context, filter dto.CotizacionFilter) ([]model.Cotizacion, int64, error)
	ActualizarEstado(ctx context.Context, id uint, estado string) error
	Recientes(ctx context.Context, limit int) ([]model.Cotizacion, error)
	Contar(ctx context.Context) (int64, error)
	ContarPorEstado(ctx context.Context, estado string) (int64, error)
}

type cotizacionRepository struct{ db *gorm.DB }

func NewCotizacionRepository(db *gorm.DB) CotizacionRepository {
	return &cotizacionRepository{db: db}
}

func (r *cotizacionRepository) Crear(ctx context.Context, c *model.Cotizacion) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cotizacionRepository) ObtenerPorID(ctx context.Context, id uint) (*model.Cotizacion, error) {
	var c model.Cotizacion
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cotizacionRepository) Listar(ctx context.Context, filter dto.CotizacionFilter) ([]model.Cotizacion, int64, error) {
	var list []model.Cotizacion
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Cotizacion{})
	if filter.Estado != "" && filter.Estado != "todas" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * dto.PageSize
	err := q.Order("created_at desc").Offset(offset).Limit(dto.PageSize).Find(&list).Error
	return list, total, err
}

func (r *cotizacionRepository) ActualizarEstado(ctx context.Context, id uint, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Cotizacion{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *cotizacionRepository) Recientes(ctx context.Context, limit int) ([]model.Cotizacion, error) {
	var list []model.Cotizacion
	err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&list).Error
	return list, err
}

func (r *cotizacionRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cotizacion{}).Count(&n).Error
	return n, err
}

func (r *cotizacionRepository) ContarPorEstado(ctx context.Context, estado string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cotizacion{}).Where("estado = ?", estado).Count(&n).Error
	return n, err
}
