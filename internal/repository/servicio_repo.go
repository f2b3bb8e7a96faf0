package repository

import (
	"context"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"

	"gorm.io/gorm"
)

// ServicioRepository defines CRUD and filtered reads for Servicio.
type ServicioRepository interface {
	Crear(ctx context.Context, s *model.Servicio) error
	Listar(ctx context.Context) ([]model.Servicio, error)
	ListarActivos(ctx context.Context, limit int) ([]model.Servicio, error)
	ListarPorCategoria(ctx context.Context, categoriaID uint, soloActivos bool) ([]model.Servicio, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Servicio, error)
	Relacionados(ctx context.Context, categoriaID, excluirID uint, limit int) ([]model.Servicio, error)
	Actualizar(ctx context.Context, s *model.Servicio) error
	Eliminar(ctx context.Context, id uint) error
	Contar(ctx context.Context) (int64, error)
	ContarActivos(ctx context.Context) (int64, error)
}

type servicioRepository struct{ db *gorm.DB }

func NewServicioRepository(db *gorm.DB) ServicioRepository {
	return &servicioRepository{db: db}
}

func (r *servicioRepository) Crear(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicioRepository) Listar(ctx context.Context) ([]model.Servicio, error) {
	var list []model.Servicio
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

// ListarActivos returns active services, optionally capped (limit <= 0 means
// no cap) — the home page shows the first six as featured.
func (r *servicioRepository) ListarActivos(ctx context.Context, limit int) ([]model.Servicio, error) {
	var list []model.Servicio
	q := r.db.WithContext(ctx).Where("activo = ?", true).Order("id asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *servicioRepository) ListarPorCategoria(ctx context.Context, categoriaID uint, soloActivos bool) ([]model.Servicio, error) {
	var list []model.Servicio
	q := r.db.WithContext(ctx).Where("categoria_id = ?", categoriaID)
	if soloActivos {
		q = q.Where("activo = ?", true)
	}
	err := q.Order("id asc").Find(&list).Error
	return list, err
}

func (r *servicioRepository) ObtenerPorID(ctx context.Context, id uint) (*model.Servicio, error) {
	var s model.Servicio
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Relacionados returns other active services in the same category for the
// detail page.
func (r *servicioRepository) Relacionados(ctx context.Context, categoriaID, excluirID uint, limit int) ([]model.Servicio, error) {
	var list []model.Servicio
	err := r.db.WithContext(ctx).
		Where("categoria_id = ? AND id <> ? AND activo = ?", categoriaID, excluirID, true).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *servicioRepository) Actualizar(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *servicioRepository) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Servicio{}, "id = ?", id).Error
}

func (r *servicioRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Servicio{}).Count(&n).Error
	return n, err
}

func (r *servicioRepository) ContarActivos(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Servicio{}).Where("activo = ?", true).Count(&n).Error
	return n, err
}
