package service

import (
	"context"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/repository"
)

// ConfiguracionService exposes the site settings store: opaque text values
// read by every public page and written from the admin settings screen.
type ConfiguracionService interface {
	// Obtener returns the stored value or the caller-supplied default when
	// the key is absent.
	Obtener(ctx context.Context, clave, porDefecto string) string
	Listar(ctx context.Context) ([]dto.SettingResponse, error)
	// GuardarVarios upserts every pair: create if absent, overwrite if
	// present. Never deletes a key.
	GuardarVarios(ctx context.Context, valores map[string]string) error
}

type configuracionService struct {
	repo repository.SettingRepository
}

func NewConfiguracionService(repo repository.SettingRepository) ConfiguracionService {
	return &configuracionService{repo: repo}
}

func (s *configuracionService) Obtener(ctx context.Context, clave, porDefecto string) string {
	setting, err := s.repo.ObtenerPorClave(ctx, clave)
	if err != nil {
		// Absent key or unavailable store: degrade to the default rather
		// than break public page rendering.
		return porDefecto
	}
	return setting.Valor
}

func (s *configuracionService) Listar(ctx context.Context) ([]dto.SettingResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SettingResponse, 0, len(list))
	for _, st := range list {
		result = append(result, dto.SettingResponse{
			Clave:       st.Clave,
			Valor:       st.Valor,
			Descripcion: st.Descripcion,
		})
	}
	return result, nil
}

func (s *configuracionService) GuardarVarios(ctx context.Context, valores map[string]string) error {
	return s.repo.UpsertVarios(ctx, valores)
}
