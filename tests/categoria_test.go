package tests

import (
	"context"
	"testing"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/repository"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory CategoriaRepository stub ───────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[uint]*model.Categoria
	servicios  map[uint]int64 // categoría id → cantidad de servicios
	nextID     uint
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{
		categorias: make(map[uint]*model.Categoria),
		servicios:  make(map[uint]int64),
	}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	r.nextID++
	c.ID = r.nextID
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context) ([]model.Categoria, error) {
	result := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		result = append(result, *c)
	}
	return result, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uint) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.categorias, id)
	return nil
}

func (r *stubCategoriaRepo) ContarServicios(_ context.Context, id uint) (int64, error) {
	return r.servicios[id], nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCrearCategoria(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Diseño"})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Diseño", resp.Nombre)
}

func TestCrearCategoriaNombreVacio(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "   "})
	require.Error(t, err)
	assert.Empty(t, repo.categorias, "una creación rechazada no debe dejar filas")
}

func TestEliminarCategoriaConServicios(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Tecnología"})
	require.NoError(t, err)
	repo.servicios[resp.ID] = 3

	err = svc.Eliminar(context.Background(), resp.ID)
	require.ErrorIs(t, err, service.ErrCategoriaConServicios)

	// La categoría y su conteo de servicios quedan intactos.
	_, ok := repo.categorias[resp.ID]
	assert.True(t, ok)
	assert.EqualValues(t, 3, repo.servicios[resp.ID])
}

func TestEliminarCategoriaSinServicios(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Viajes"})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), resp.ID))
	_, ok := repo.categorias[resp.ID]
	assert.False(t, ok)
}

func TestEliminarCategoriaInexistente(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)

	err := svc.Eliminar(context.Background(), 999)
	require.ErrorIs(t, err, service.ErrNoEncontrado)
}

func TestActualizarCategoria(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Marketing"})
	require.NoError(t, err)

	desc := "Branding y publicidad"
	updated, err := svc.Actualizar(context.Background(), resp.ID, dto.ActualizarCategoriaRequest{
		Nombre:      "Marketing Digital",
		Descripcion: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, "Marketing Digital", updated.Nombre)
	require.NotNil(t, updated.Descripcion)
	assert.Equal(t, desc, *updated.Descripcion)
}
