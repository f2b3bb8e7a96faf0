package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/repository"
)

// CarpetaPortafolio is the upload subfolder for portfolio images.
const CarpetaPortafolio = "portfolio"

// PortafolioService defines business operations for portfolio projects.
type PortafolioService interface {
	Crear(ctx context.Context, req dto.CrearPortafolioRequest, imagen *multipart.FileHeader) (dto.PortafolioResponse, error)
	Listar(ctx context.Context) ([]dto.PortafolioResponse, error)
	ListarActivos(ctx context.Context) ([]dto.PortafolioResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (dto.PortafolioResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarPortafolioRequest, imagen *multipart.FileHeader) (dto.PortafolioResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type portafolioService struct {
	repo     repository.PortafolioRepository
	imagenes ImageStore
}

func NewPortafolioService(repo repository.PortafolioRepository, imagenes ImageStore) PortafolioService {
	return &portafolioService{repo: repo, imagenes: imagenes}
}

func mapPortafolio(p model.Portafolio) dto.PortafolioResponse {
	return dto.PortafolioResponse{
		ID:            p.ID,
		Titulo:        p.Titulo,
		Descripcion:   p.Descripcion,
		Imagen:        p.Imagen,
		URL:           p.URL,
		Cliente:       p.Cliente,
		FechaProyecto: formatFecha(p.FechaProyecto),
		Tecnologias:   p.Tecnologias,
		Activo:        p.Activo,
	}
}

func (s *portafolioService) Crear(ctx context.Context, req dto.CrearPortafolioRequest, imagen *multipart.FileHeader) (dto.PortafolioResponse, error) {
	var ruta *string
	if path, ok := s.imagenes.Guardar(imagen, CarpetaPortafolio); ok {
		ruta = &path
	}

	titulo := strings.TrimSpace(req.Titulo)
	if titulo == "" {
		return dto.PortafolioResponse{}, errors.New("el título es requerido")
	}

	// A supplied but unparsable date is cleared, never an error.
	fecha, _ := parseFechaOpcional(req.FechaProyecto)

	p := &model.Portafolio{
		Titulo:        titulo,
		Descripcion:   req.Descripcion,
		Imagen:        ruta,
		URL:           req.URL,
		Cliente:       req.Cliente,
		FechaProyecto: fecha,
		Tecnologias:   req.Tecnologias,
		Activo:        req.Activo,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return dto.PortafolioResponse{}, err
	}
	return mapPortafolio(*p), nil
}

func (s *portafolioService) Listar(ctx context.Context) ([]dto.PortafolioResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PortafolioResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPortafolio(p))
	}
	return result, nil
}

func (s *portafolioService) ListarActivos(ctx context.Context) ([]dto.PortafolioResponse, error) {
	list, err := s.repo.ListarActivos(ctx, 0)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PortafolioResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPortafolio(p))
	}
	return result, nil
}

func (s *portafolioService) ObtenerPorID(ctx context.Context, id uint) (dto.PortafolioResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PortafolioResponse{}, traducirNoEncontrado(err)
	}
	return mapPortafolio(*p), nil
}

func (s *portafolioService) Actualizar(ctx context.Context, id uint, req dto.ActualizarPortafolioRequest, imagen *multipart.FileHeader) (dto.PortafolioResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PortafolioResponse{}, traducirNoEncontrado(err)
	}

	if path, ok := s.imagenes.Guardar(imagen, CarpetaPortafolio); ok {
		p.Imagen = &path
	}

	titulo := strings.TrimSpace(req.Titulo)
	if titulo == "" {
		return dto.PortafolioResponse{}, errors.New("el título es requerido")
	}

	// Not supplied → keep the stored date. Supplied but unparsable → clear it.
	if fecha, supplied := parseFechaOpcional(req.FechaProyecto); supplied {
		p.FechaProyecto = fecha
	}

	p.Titulo = titulo
	p.Descripcion = req.Descripcion
	p.URL = req.URL
	p.Cliente = req.Cliente
	p.Tecnologias = req.Tecnologias
	p.Activo = req.Activo

	if err := s.repo.Actualizar(ctx, p); err != nil {
		return dto.PortafolioResponse{}, err
	}
	return mapPortafolio(*p), nil
}

func (s *portafolioService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return traducirNoEncontrado(err)
	}
	return s.repo.Eliminar(ctx, id)
}
