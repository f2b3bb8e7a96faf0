package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/repository"
)

// ContactoService handles contact-form intake and triage.
type ContactoService interface {
	Crear(ctx context.Context, req dto.CrearContactoRequest) (dto.ContactoResponse, error)
	Listar(ctx context.Context, filter dto.ContactoFilter) (dto.ContactoListResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (dto.ContactoResponse, error)
	CambiarEstado(ctx context.Context, id uint, estado string) error
}

type contactoService struct {
	repo repository.ContactoRepository
}

func NewContactoService(repo repository.ContactoRepository) ContactoService {
	return &contactoService{repo: repo}
}

func mapContacto(c model.Contacto) dto.ContactoResponse {
	return dto.ContactoResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Email:     c.Email,
		Asunto:    c.Asunto,
		Mensaje:   c.Mensaje,
		Estado:    c.Estado,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func (s *contactoService) Crear(ctx context.Context, req dto.CrearContactoRequest) (dto.ContactoResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	email := strings.TrimSpace(req.Email)
	mensaje := strings.TrimSpace(req.Mensaje)
	if nombre == "" || email == "" || mensaje == "" {
		return dto.ContactoResponse{}, errors.New("nombre, email y mensaje son requeridos")
	}

	c := &model.Contacto{
		Nombre:  nombre,
		Email:   email,
		Asunto:  req.Asunto,
		Mensaje: mensaje,
		Estado:  model.ContactoNuevo,
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.ContactoResponse{}, err
	}
	return mapContacto(*c), nil
}

func (s *contactoService) Listar(ctx context.Context, filter dto.ContactoFilter) (dto.ContactoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	list, total, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return dto.ContactoListResponse{}, err
	}
	resp := dto.ContactoListResponse{
		Data:  make([]dto.ContactoResponse, 0, len(list)),
		Total: total,
		Page:  filter.Page,
		Limit: dto.PageSize,
	}
	for _, c := range list {
		resp.Data = append(resp.Data, mapContacto(c))
	}
	return resp, nil
}

func (s *contactoService) ObtenerPorID(ctx context.Context, id uint) (dto.ContactoResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ContactoResponse{}, traducirNoEncontrado(err)
	}
	return mapContacto(*c), nil
}

func (s *contactoService) CambiarEstado(ctx context.Context, id uint, estado string) error {
	if !model.EstadoContactoValido(estado) {
		return ErrEstadoInvalido
	}
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return traducirNoEncontrado(err)
	}
	return s.repo.ActualizarEstado(ctx, id, estado)
}
