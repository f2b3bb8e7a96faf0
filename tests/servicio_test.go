package tests

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/repository"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ServicioRepository stub ────────────────────────────────────────

type stubServicioRepo struct {
	servicios map[uint]*model.Servicio
	nextID    uint
}

func newStubServicioRepo() *stubServicioRepo {
	return &stubServicioRepo{servicios: make(map[uint]*model.Servicio)}
}

func (r *stubServicioRepo) Crear(_ context.Context, s *model.Servicio) error {
	r.nextID++
	s.ID = r.nextID
	r.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) Listar(_ context.Context) ([]model.Servicio, error) {
	result := make([]model.Servicio, 0, len(r.servicios))
	for _, s := range r.servicios {
		result = append(result, *s)
	}
	return result, nil
}

func (r *stubServicioRepo) ListarActivos(_ context.Context, limit int) ([]model.Servicio, error) {
	var result []model.Servicio
	for _, s := range r.servicios {
		if s.Activo {
			result = append(result, *s)
		}
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *stubServicioRepo) ListarPorCategoria(_ context.Context, categoriaID uint, soloActivos bool) ([]model.Servicio, error) {
	var result []model.Servicio
	for _, s := range r.servicios {
		if s.CategoriaID != categoriaID {
			continue
		}
		if soloActivos && !s.Activo {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (r *stubServicioRepo) ObtenerPorID(_ context.Context, id uint) (*model.Servicio, error) {
	s, ok := r.servicios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubServicioRepo) Relacionados(_ context.Context, categoriaID, excluirID uint, limit int) ([]model.Servicio, error) {
	var result []model.Servicio
	for _, s := range r.servicios {
		if s.CategoriaID == categoriaID && s.ID != excluirID && s.Activo {
			result = append(result, *s)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *stubServicioRepo) Actualizar(_ context.Context, s *model.Servicio) error {
	r.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.servicios, id)
	return nil
}

func (r *stubServicioRepo) Contar(_ context.Context) (int64, error) {
	return int64(len(r.servicios)), nil
}

func (r *stubServicioRepo) ContarActivos(_ context.Context) (int64, error) {
	var n int64
	for _, s := range r.servicios {
		if s.Activo {
			n++
		}
	}
	return n, nil
}

var _ repository.ServicioRepository = (*stubServicioRepo)(nil)

// ── ImageStore stub ──────────────────────────────────────────────────────────

// stubImageStore simulates the upload collaborator: when ruta is non-empty it
// accepts any file, otherwise it behaves like a missing or rejected upload.
type stubImageStore struct {
	ruta     string
	llamadas int
}

func (s *stubImageStore) Guardar(_ *multipart.FileHeader, _ string) (string, bool) {
	s.llamadas++
	if s.ruta == "" {
		return "", false
	}
	return s.ruta, true
}

var _ service.ImageStore = (*stubImageStore)(nil)

// ── Tests ─────────────────────────────────────────────────────────────────────

func nuevoServicioService(repo *stubServicioRepo, categorias *stubCategoriaRepo, img service.ImageStore) service.ServicioService {
	return service.NewServicioService(repo, categorias, img)
}

func TestCrearServicio(t *testing.T) {
	repo := newStubServicioRepo()
	categorias := newStubCategoriaRepo()
	svc := nuevoServicioService(repo, categorias, &stubImageStore{ruta: "/static/images/servicios/logo.png"})

	cat, err := service.NewCategoriaService(categorias).Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Diseño"})
	require.NoError(t, err)

	precio := "Desde $500"
	resp, err := svc.Crear(context.Background(), dto.CrearServicioRequest{
		Nombre:      "Diseño de logotipo",
		CategoriaID: cat.ID,
		Precio:      &precio,
		Activo:      true,
	}, nil)
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	require.NotNil(t, resp.Imagen)
	assert.Equal(t, "/static/images/servicios/logo.png", *resp.Imagen)
}

func TestCrearServicioCategoriaInexistente(t *testing.T) {
	repo := newStubServicioRepo()
	categorias := newStubCategoriaRepo()
	svc := nuevoServicioService(repo, categorias, &stubImageStore{})

	_, err := svc.Crear(context.Background(), dto.CrearServicioRequest{
		Nombre:      "Diseño de logotipo",
		CategoriaID: 42,
		Activo:      true,
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no existe")
	assert.Empty(t, repo.servicios, "un alta rechazada no debe dejar filas")
}

func TestActualizarServicioConservaImagen(t *testing.T) {
	repo := newStubServicioRepo()
	categorias := newStubCategoriaRepo()
	img := &stubImageStore{ruta: "/static/images/servicios/original.png"}
	svc := nuevoServicioService(repo, categorias, img)

	cat, err := service.NewCategoriaService(categorias).Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Tecnología"})
	require.NoError(t, err)

	creado, err := svc.Crear(context.Background(), dto.CrearServicioRequest{
		Nombre:      "Página web",
		CategoriaID: cat.ID,
		Activo:      true,
	}, nil)
	require.NoError(t, err)

	// La actualización sin archivo nuevo (Guardar reporta ok=false) no debe
	// tocar la imagen almacenada.
	img.ruta = ""
	actualizado, err := svc.Actualizar(context.Background(), creado.ID, dto.ActualizarServicioRequest{
		Nombre:      "Página web corporativa",
		CategoriaID: cat.ID,
		Activo:      true,
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, actualizado.Imagen)
	assert.Equal(t, "/static/images/servicios/original.png", *actualizado.Imagen)
	assert.Equal(t, "Página web corporativa", actualizado.Nombre)
}

func TestListarActivosFiltraInactivos(t *testing.T) {
	repo := newStubServicioRepo()
	categorias := newStubCategoriaRepo()
	svc := nuevoServicioService(repo, categorias, &stubImageStore{})

	cat, err := service.NewCategoriaService(categorias).Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Marketing"})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearServicioRequest{Nombre: "SEO", CategoriaID: cat.ID, Activo: true}, nil)
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), dto.CrearServicioRequest{Nombre: "Legacy", CategoriaID: cat.ID, Activo: false}, nil)
	require.NoError(t, err)

	list, err := svc.ListarActivos(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "SEO", list[0].Nombre)
}

func TestDetalleConRelacionados(t *testing.T) {
	repo := newStubServicioRepo()
	categorias := newStubCategoriaRepo()
	svc := nuevoServicioService(repo, categorias, &stubImageStore{})

	cat, err := service.NewCategoriaService(categorias).Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Diseño"})
	require.NoError(t, err)

	principal, err := svc.Crear(context.Background(), dto.CrearServicioRequest{Nombre: "Logotipo", CategoriaID: cat.ID, Activo: true}, nil)
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), dto.CrearServicioRequest{Nombre: "Papelería", CategoriaID: cat.ID, Activo: true}, nil)
	require.NoError(t, err)

	detalle, err := svc.Detalle(context.Background(), principal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Logotipo", detalle.Servicio.Nombre)
	require.Len(t, detalle.Relacionados, 1)
	assert.Equal(t, "Papelería", detalle.Relacionados[0].Nombre)
}
