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

// ImageStore is the file-storage collaborator: it either yields a public path
// for a valid upload or reports ok=false (no file, or rejected extension)
// without failing the operation.
type ImageStore interface {
	Guardar(fh *multipart.FileHeader, subcarpeta string) (string, bool)
}

// CarpetaServicios is the upload subfolder for service images.
const CarpetaServicios = "servicios"

// ServicioService defines business operations for services.
type ServicioService interface {
	Crear(ctx context.Context, req dto.CrearServicioRequest, imagen *multipart.FileHeader) (dto.ServicioResponse, error)
	Listar(ctx context.Context) ([]dto.ServicioResponse, error)
	ListarActivos(ctx context.Context, categoriaID *uint) ([]dto.ServicioResponse, error)
	ListarPorCategoria(ctx context.Context, categoriaID uint) ([]dto.ServicioPublicResponse, error)
	Detalle(ctx context.Context, id uint) (dto.ServicioDetalle, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarServicioRequest, imagen *multipart.FileHeader) (dto.ServicioResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type servicioService struct {
	repo       repository.ServicioRepository
	categorias repository.CategoriaRepository
	imagenes   ImageStore
}

func NewServicioService(repo repository.ServicioRepository, categorias repository.CategoriaRepository, imagenes ImageStore) ServicioService {
	return &servicioService{repo: repo, categorias: categorias, imagenes: imagenes}
}

func mapServicio(s model.Servicio) dto.ServicioResponse {
	return dto.ServicioResponse{
		ID:          s.ID,
		CategoriaID: s.CategoriaID,
		Nombre:      s.Nombre,
		Descripcion: s.Descripcion,
		Precio:      s.Precio,
		Imagen:      s.Imagen,
		Activo:      s.Activo,
	}
}

// validar runs the shared create/update checks: non-empty name and an
// existing category. Ordering matters: the image is handled by the caller
// before these checks, so a rejected form never records an orphan path.
func (s *servicioService) validar(ctx context.Context, nombre string, categoriaID uint) (string, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return "", errors.New("nombre y categoría son requeridos")
	}
	if _, err := s.categorias.ObtenerPorID(ctx, categoriaID); err != nil {
		if errors.Is(traducirNoEncontrado(err), ErrNoEncontrado) {
			return "", errors.New("la categoría indicada no existe")
		}
		return "", err
	}
	return nombre, nil
}

func (s *servicioService) Crear(ctx context.Context, req dto.CrearServicioRequest, imagen *multipart.FileHeader) (dto.ServicioResponse, error) {
	var ruta *string
	if path, ok := s.imagenes.Guardar(imagen, CarpetaServicios); ok {
		ruta = &path
	}

	nombre, err := s.validar(ctx, req.Nombre, req.CategoriaID)
	if err != nil {
		return dto.ServicioResponse{}, err
	}

	srv := &model.Servicio{
		CategoriaID: req.CategoriaID,
		Nombre:      nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Imagen:      ruta,
		Activo:      req.Activo,
	}
	if err := s.repo.Crear(ctx, srv); err != nil {
		return dto.ServicioResponse{}, err
	}
	return mapServicio(*srv), nil
}

func (s *servicioService) Listar(ctx context.Context) ([]dto.ServicioResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ServicioResponse, 0, len(list))
	for _, srv := range list {
		result = append(result, mapServicio(srv))
	}
	return result, nil
}

// ListarActivos serves the public services page, optionally narrowed to one
// category.
func (s *servicioService) ListarActivos(ctx context.Context, categoriaID *uint) ([]dto.ServicioResponse, error) {
	var list []model.Servicio
	var err error
	if categoriaID != nil {
		if _, err = s.categorias.ObtenerPorID(ctx, *categoriaID); err != nil {
			return nil, traducirNoEncontrado(err)
		}
		list, err = s.repo.ListarPorCategoria(ctx, *categoriaID, true)
	} else {
		list, err = s.repo.ListarActivos(ctx, 0)
	}
	if err != nil {
		return nil, err
	}
	result := make([]dto.ServicioResponse, 0, len(list))
	for _, srv := range list {
		result = append(result, mapServicio(srv))
	}
	return result, nil
}

// ListarPorCategoria backs GET /api/servicios/:categoria_id with the trimmed
// {id, nombre, descripcion} shape.
func (s *servicioService) ListarPorCategoria(ctx context.Context, categoriaID uint) ([]dto.ServicioPublicResponse, error) {
	list, err := s.repo.ListarPorCategoria(ctx, categoriaID, true)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ServicioPublicResponse, 0, len(list))
	for _, srv := range list {
		result = append(result, dto.ServicioPublicResponse{
			ID:          srv.ID,
			Nombre:      srv.Nombre,
			Descripcion: srv.Descripcion,
		})
	}
	return result, nil
}

func (s *servicioService) Detalle(ctx context.Context, id uint) (dto.ServicioDetalle, error) {
	srv, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ServicioDetalle{}, traducirNoEncontrado(err)
	}
	relacionados, err := s.repo.Relacionados(ctx, srv.CategoriaID, srv.ID, 3)
	if err != nil {
		return dto.ServicioDetalle{}, err
	}
	detalle := dto.ServicioDetalle{Servicio: mapServicio(*srv)}
	for _, rel := range relacionados {
		detalle.Relacionados = append(detalle.Relacionados, mapServicio(rel))
	}
	return detalle, nil
}

func (s *servicioService) Actualizar(ctx context.Context, id uint, req dto.ActualizarServicioRequest, imagen *multipart.FileHeader) (dto.ServicioResponse, error) {
	srv, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ServicioResponse{}, traducirNoEncontrado(err)
	}

	// Image first: replaced only when a new valid file arrives, otherwise the
	// stored path is retained.
	if path, ok := s.imagenes.Guardar(imagen, CarpetaServicios); ok {
		srv.Imagen = &path
	}

	nombre, err := s.validar(ctx, req.Nombre, req.CategoriaID)
	if err != nil {
		return dto.ServicioResponse{}, err
	}

	srv.CategoriaID = req.CategoriaID
	srv.Nombre = nombre
	srv.Descripcion = req.Descripcion
	srv.Precio = req.Precio
	srv.Activo = req.Activo

	if err := s.repo.Actualizar(ctx, srv); err != nil {
		return dto.ServicioResponse{}, err
	}
	return mapServicio(*srv), nil
}

func (s *servicioService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return traducirNoEncontrado(err)
	}
	return s.repo.Eliminar(ctx, id)
}
