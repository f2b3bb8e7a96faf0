//go:build integration

package e2e

// End-to-end tests against real Postgres via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/config"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/infra"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/repository"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/router"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("araiza_test"),
		tcPostgres.WithUsername("araiza"),
		tcPostgres.WithPassword("araiza"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		DatabaseURL:        pgURL,
		SecretKey:          "test-secret-key",
		JWTExpirationHours: 8,
		// Sin API key: la suscripción a newsletter no hace llamadas de red.
		MailerLiteAPIKey: "",
		MailerLiteURL:    "http://localhost:9999",
		UploadDir:        t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	require.NoError(t, service.Seed(ctx, db))

	// Admin de pruebas
	hash, err := bcrypt.GenerateFromPassword([]byte("araiza2026"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repository.NewUsuarioRepository(db).Upsert(ctx, &model.Usuario{
		Username:     "admin",
		Nombre:       "Admin E2E",
		PasswordHash: string(hash),
		Activo:       true,
	}))

	srv := httptest.NewServer(router.New(cfg, db))
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/admin/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "araiza2026"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, db: db, token: loginBody.AccessToken}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_SeedIdempotente(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	var categorias, servicios, settings int64
	require.NoError(t, env.db.Model(&model.Categoria{}).Count(&categorias).Error)
	require.NoError(t, env.db.Model(&model.Servicio{}).Count(&servicios).Error)
	require.NoError(t, env.db.Model(&model.SiteSetting{}).Count(&settings).Error)
	assert.EqualValues(t, 6, categorias)
	assert.EqualValues(t, 20, servicios)
	assert.EqualValues(t, 17, settings)

	// Segunda corrida: no-op, los conteos no cambian.
	require.NoError(t, service.Seed(ctx, env.db))

	var categorias2, servicios2, settings2 int64
	require.NoError(t, env.db.Model(&model.Categoria{}).Count(&categorias2).Error)
	require.NoError(t, env.db.Model(&model.Servicio{}).Count(&servicios2).Error)
	require.NoError(t, env.db.Model(&model.SiteSetting{}).Count(&settings2).Error)
	assert.Equal(t, categorias, categorias2)
	assert.Equal(t, servicios, servicios2)
	assert.Equal(t, settings, settings2)
}

func TestE2E_FlujoContacto(t *testing.T) {
	env := setupTestEnv(t)

	// 1. Envío público del formulario de contacto
	crearResp := do(t, env.server, "POST", "/api/contacto",
		jsonBody(t, map[string]string{
			"nombre":  "Ana",
			"email":   "ana@x.com",
			"mensaje": "Hola",
		}),
		"",
	)
	require.Equal(t, http.StatusCreated, crearResp.StatusCode)
	var creado struct {
		ID     uint   `json:"id"`
		Estado string `json:"estado"`
	}
	decodeJSON(t, crearResp, &creado)
	assert.Equal(t, "nuevo", creado.Estado)

	// 2. Aparece en el listado admin filtrado por estado
	listResp := do(t, env.server, "GET", "/admin/contactos?estado=nuevo", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var listado struct {
		Data []struct {
			Nombre string `json:"nombre"`
		} `json:"data"`
		Total int64 `json:"total"`
	}
	decodeJSON(t, listResp, &listado)
	require.EqualValues(t, 1, listado.Total)
	assert.Equal(t, "Ana", listado.Data[0].Nombre)

	// 3. Triage: marcar como leído
	estadoResp := do(t, env.server, "PUT",
		"/admin/contactos/1/estado",
		jsonBody(t, map[string]string{"estado": "leido"}),
		env.token,
	)
	require.Equal(t, http.StatusOK, estadoResp.StatusCode)
	estadoResp.Body.Close()

	// 4. Un estado fuera del conjunto se rechaza
	invalidoResp := do(t, env.server, "PUT",
		"/admin/contactos/1/estado",
		jsonBody(t, map[string]string{"estado": "pendiente"}),
		env.token,
	)
	assert.Equal(t, http.StatusBadRequest, invalidoResp.StatusCode)
	invalidoResp.Body.Close()
}

func TestE2E_CotizacionFechaIlegible(t *testing.T) {
	env := setupTestEnv(t)

	crearResp := do(t, env.server, "POST", "/api/cotizacion",
		jsonBody(t, map[string]string{
			"nombre":       "Carlos Ruiz",
			"email":        "carlos@example.com",
			"mensaje":      "Cotización urgente",
			"fecha_limite": "13/45/9999",
		}),
		"",
	)
	require.Equal(t, http.StatusCreated, crearResp.StatusCode)
	var creada struct {
		ID          uint    `json:"id"`
		Estado      string  `json:"estado"`
		FechaLimite *string `json:"fecha_limite"`
	}
	decodeJSON(t, crearResp, &creada)
	assert.Equal(t, "pendiente", creada.Estado)
	assert.Nil(t, creada.FechaLimite, "la fecha ilegible se descarta sin rechazar el lead")

	// Cambio de estado desde el panel
	estadoResp := do(t, env.server, "PUT",
		"/admin/cotizaciones/1/estado",
		jsonBody(t, map[string]string{"estado": "en_proceso"}),
		env.token,
	)
	require.Equal(t, http.StatusOK, estadoResp.StatusCode)
	estadoResp.Body.Close()
}

func TestE2E_CategoriaConServiciosNoSeBorra(t *testing.T) {
	env := setupTestEnv(t)

	// El seed deja categorías con servicios: borrar la primera debe fallar.
	var cat model.Categoria
	require.NoError(t, env.db.First(&cat).Error)

	delResp := do(t, env.server, "DELETE",
		"/admin/categorias/"+itoa(cat.ID), nil, env.token)
	assert.Equal(t, http.StatusConflict, delResp.StatusCode)
	delResp.Body.Close()

	// Una categoría vacía sí se borra.
	crearResp := do(t, env.server, "POST", "/admin/categorias",
		jsonBody(t, map[string]string{"nombre": "Temporal"}), env.token)
	require.Equal(t, http.StatusCreated, crearResp.StatusCode)
	var nueva struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, crearResp, &nueva)

	delResp2 := do(t, env.server, "DELETE",
		"/admin/categorias/"+itoa(nueva.ID), nil, env.token)
	assert.Equal(t, http.StatusNoContent, delResp2.StatusCode)
	delResp2.Body.Close()
}

func TestE2E_ConfiguracionUpsert(t *testing.T) {
	env := setupTestEnv(t)

	putResp := do(t, env.server, "PUT", "/admin/configuracion",
		jsonBody(t, map[string]any{
			"valores": map[string]string{
				"site_title":    "Araiza Inc renovada",
				"clave_inedita": "valor nuevo",
			},
		}),
		env.token,
	)
	require.Equal(t, http.StatusOK, putResp.StatusCode)
	putResp.Body.Close()

	// El payload público refleja el nuevo valor.
	sitioResp := do(t, env.server, "GET", "/api/sitio", nil, "")
	require.Equal(t, http.StatusOK, sitioResp.StatusCode)
	var sitio struct {
		Settings map[string]string `json:"settings"`
	}
	decodeJSON(t, sitioResp, &sitio)
	assert.Equal(t, "Araiza Inc renovada", sitio.Settings["site_title"])

	// No hay duplicados: la clave sigue siendo única.
	var n int64
	require.NoError(t, env.db.Model(&model.SiteSetting{}).Where("clave = ?", "site_title").Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestE2E_AdminRequiereToken(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/admin/dashboard", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	conToken := do(t, env.server, "GET", "/admin/dashboard", nil, env.token)
	require.Equal(t, http.StatusOK, conToken.StatusCode)
	var dash struct {
		Stats struct {
			TotalServicios int64 `json:"total_servicios"`
		} `json:"stats"`
	}
	decodeJSON(t, conToken, &dash)
	assert.EqualValues(t, 20, dash.Stats.TotalServicios)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
