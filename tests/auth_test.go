package tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/config"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/repository"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── In-memory UsuarioRepository stub ─────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[string]*model.Usuario
	nextID   uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) ObtenerPorUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := r.usuarios[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) Upsert(_ context.Context, u *model.Usuario) error {
	if existente, ok := r.usuarios[u.Username]; ok {
		existente.Nombre = u.Nombre
		existente.PasswordHash = u.PasswordHash
		existente.Activo = u.Activo
		return nil
	}
	r.nextID++
	u.ID = r.nextID
	r.usuarios[u.Username] = u
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func configDePrueba() *config.Config {
	return &config.Config{
		SecretKey:          "clave-de-prueba",
		JWTExpirationHours: 8,
	}
}

func crearAdmin(t *testing.T, repo *stubUsuarioRepo, username, password string, activo bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(context.Background(), &model.Usuario{
		Username:     username,
		Nombre:       "Administrador",
		PasswordHash: string(hash),
		Activo:       activo,
	}))
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	repo := newStubUsuarioRepo()
	crearAdmin(t, repo, "admin", "secreto123", true)
	svc := service.NewAuthService(repo, configDePrueba())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "Administrador", resp.Nombre)

	// El token debe validar con el mismo secreto y llevar el username.
	token, err := jwt.Parse(resp.AccessToken, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método inesperado: %v", tk.Header["alg"])
		}
		return []byte("clave-de-prueba"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["username"])
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	repo := newStubUsuarioRepo()
	crearAdmin(t, repo, "admin", "secreto123", true)
	svc := service.NewAuthService(repo, configDePrueba())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "otra"})
	require.ErrorIs(t, err, service.ErrCredenciales)
}

func TestLoginUsuarioDesconocido(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, configDePrueba())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	require.ErrorIs(t, err, service.ErrCredenciales)
}

func TestLoginUsuarioInactivo(t *testing.T) {
	repo := newStubUsuarioRepo()
	crearAdmin(t, repo, "admin", "secreto123", false)
	svc := service.NewAuthService(repo, configDePrueba())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secreto123"})
	require.ErrorIs(t, err, service.ErrCredenciales)
}
