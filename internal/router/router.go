package router

import (
	"time"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/config"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/handler"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/infra"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/middleware"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/repository"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailerlite := infra.NewMailerLite(cfg.MailerLiteURL, cfg.MailerLiteAPIKey, cfg.MailerLiteGroupID)
	storage := infra.NewStorage(cfg.UploadDir)

	// ── Repositories ─────────────────────────────────────────────────────────
	categoriaRepo := repository.NewCategoriaRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	portafolioRepo := repository.NewPortafolioRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	cotizacionRepo := repository.NewCotizacionRepository(db)
	contactoRepo := repository.NewContactoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	servicioSvc := service.NewServicioService(servicioRepo, categoriaRepo, storage)
	portafolioSvc := service.NewPortafolioService(portafolioRepo, storage)
	configuracionSvc := service.NewConfiguracionService(settingRepo)
	cotizacionSvc := service.NewCotizacionService(cotizacionRepo, mailerlite)
	contactoSvc := service.NewContactoService(contactoRepo)
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	sitioSvc := service.NewSitioService(categoriaRepo, servicioRepo, portafolioRepo, cotizacionRepo, contactoRepo, configuracionSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	serviciosH := handler.NewServiciosHandler(servicioSvc)
	portafolioH := handler.NewPortafolioHandler(portafolioSvc)
	configuracionH := handler.NewConfiguracionHandler(configuracionSvc)
	cotizacionesH := handler.NewCotizacionesHandler(cotizacionSvc)
	contactosH := handler.NewContactosHandler(contactoSvc)
	dashboardH := handler.NewDashboardHandler(sitioSvc)
	publicoH := handler.NewPublicoHandler(sitioSvc, servicioSvc, portafolioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	// Uploaded images are served straight from disk.
	r.Static("/static/images", cfg.UploadDir)

	// Public site
	api := r.Group("/api")
	{
		api.GET("/sitio", publicoH.Sitio)
		api.GET("/inicio", publicoH.Inicio)
		api.GET("/servicios", publicoH.Servicios)
		api.GET("/servicios/categoria/:categoria_id", publicoH.ServiciosPorCategoria)
		api.GET("/servicios/detalle/:id", publicoH.ServicioDetalle)
		api.GET("/portafolio", publicoH.Portafolio)
		api.GET("/portafolio/:id", publicoH.PortafolioDetalle)
		api.GET("/pagina/:slug", publicoH.Pagina)

		// Lead intake
		api.POST("/contacto", contactosH.Crear)
		api.POST("/cotizacion", cotizacionesH.Crear)
	}

	// Admin panel — everything behind JWT except login
	r.POST("/admin/auth/login", middleware.LoginRateLimiter(), authH.Login)

	admin := r.Group("/admin", middleware.JWTAuth(cfg.SecretKey))
	{
		admin.GET("/dashboard", dashboardH.Obtener)

		categorias := admin.Group("/categorias")
		{
			categorias.POST("", categoriasH.Crear)
			categorias.GET("", categoriasH.Listar)
			categorias.GET("/:id", categoriasH.Obtener)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Eliminar)
		}

		servicios := admin.Group("/servicios")
		{
			servicios.POST("", serviciosH.Crear)
			servicios.GET("", serviciosH.Listar)
			servicios.PUT("/:id", serviciosH.Actualizar)
			servicios.DELETE("/:id", serviciosH.Eliminar)
		}

		portafolio := admin.Group("/portafolio")
		{
			portafolio.POST("", portafolioH.Crear)
			portafolio.GET("", portafolioH.Listar)
			portafolio.PUT("/:id", portafolioH.Actualizar)
			portafolio.DELETE("/:id", portafolioH.Eliminar)
		}

		admin.GET("/configuracion", configuracionH.Listar)
		admin.PUT("/configuracion", configuracionH.Actualizar)

		cotizaciones := admin.Group("/cotizaciones")
		{
			cotizaciones.GET("", cotizacionesH.Listar)
			cotizaciones.GET("/:id", cotizacionesH.Obtener)
			cotizaciones.PUT("/:id/estado", cotizacionesH.CambiarEstado)
		}

		contactos := admin.Group("/contactos")
		{
			contactos.GET("", contactosH.Listar)
			contactos.GET("/:id", contactosH.Obtener)
			contactos.PUT("/:id/estado", contactosH.CambiarEstado)
		}
	}

	return r
}
