package repository

import (
	"context"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"

	"gorm.io/gorm"
)

// ContactoRepository stores contact-form messages. No delete path, same as
// cotizaciones.
type ContactoRepository interface {
	Crear(ctx context.Context, c *model.Contacto) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Contacto, error)
	Listar(ctx context.Context, filter dto.ContactoFilter) ([]model.Contacto, int64, error)
	ActualizarEstado(ctx context.Context, id uint, estado string) error
	Recientes(ctx context.Context, limit int) ([]model.Contacto, error)
	Contar(ctx context.Context) (int64, error)
	ContarPorEstado(ctx context.Context, estado string) (int64, error)
}

type contactoRepository struct{ db *gorm.DB }

func NewContactoRepository(db *gorm.DB) ContactoRepository {
	return &contactoRepository{db: db}
}

func (r *contactoRepository) Crear(ctx context.Context, c *model.Contacto) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactoRepository) ObtenerPorID(ctx context.Context, id uint) (*model.Contacto, error) {
	var c model.Contacto
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactoRepository) Listar(ctx context.Context, filter dto.ContactoFilter) ([]model.Contacto, int64, error) {
	var list []model.Contacto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Contacto{})
	if filter.Estado != "" && filter.Estado != "todos" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * dto.PageSize
	err := q.Order("created_at desc").Offset(offset).Limit(dto.PageSize).Find(&list).Error
	return list, total, err
}

func (r *contactoRepository) ActualizarEstado(ctx context.Context, id uint, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Contacto{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *contactoRepository) Recientes(ctx context.Context, limit int) ([]model.Contacto, error) {
	var list []model.Contacto
	err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&list).Error
	return list, err
}

func (r *contactoRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Contacto{}).Count(&n).Error
	return n, err
}

func (r *contactoRepository) ContarPorEstado(ctx context.Context, estado string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Contacto{}).Where("estado = ?", estado).Count(&n).Error
	return n, err
}
