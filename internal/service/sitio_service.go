package service

import (
	"context"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/repository"
)

// clavesSitio are the settings injected into every public page.
var clavesSitio = []string{
	"site_title",
	"company_name",
	"company_email",
	"company_phone",
	"company_address",
	"facebook_url",
	"twitter_url",
	"linkedin_url",
	"instagram_url",
	"logo_url",
}

// clavesPagina maps the static-page slugs to the setting that holds their
// content.
var clavesPagina = map[string]string{
	"acerca":        "about_us",
	"terminos":      "terms_conditions",
	"privacidad":    "privacy_policy",
	"accesibilidad": "accessibility",
}

// SitioService assembles the aggregated public payloads (site data, home
// page, static pages) and the admin dashboard.
type SitioService interface {
	Sitio(ctx context.Context) (dto.SitioResponse, error)
	Inicio(ctx context.Context) (dto.InicioResponse, error)
	Pagina(ctx context.Context, slug string) (string, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type sitioService struct {
	categorias   repository.CategoriaRepository
	servicios    repository.ServicioRepository
	portafolio   repository.PortafolioRepository
	cotizaciones repository.CotizacionRepository
	contactos    repository.ContactoRepository
	settings     ConfiguracionService
}

func NewSitioService(
	categorias repository.CategoriaRepository,
	servicios repository.ServicioRepository,
	portafolio repository.PortafolioRepository,
	cotizaciones repository.CotizacionRepository,
	contactos repository.ContactoRepository,
	settings ConfiguracionService,
) SitioService {
	return &sitioService{
		categorias:   categorias,
		servicios:    servicios,
		portafolio:   portafolio,
		cotizaciones: cotizaciones,
		contactos:    contactos,
		settings:     settings,
	}
}

// Sitio returns the site-wide branding settings plus the navigation menu of
// every category with its active services.
func (s *sitioService) Sitio(ctx context.Context) (dto.SitioResponse, error) {
	resp := dto.SitioResponse{Settings: make(map[string]string, len(clavesSitio))}
	for _, clave := range clavesSitio {
		resp.Settings[clave] = s.settings.Obtener(ctx, clave, "")
	}

	categorias, err := s.categorias.Listar(ctx)
	if err != nil {
		return dto.SitioResponse{}, err
	}
	for _, cat := range categorias {
		servicios, err := s.servicios.ListarPorCategoria(ctx, cat.ID, true)
		if err != nil {
			return dto.SitioResponse{}, err
		}
		entrada := dto.CategoriaMenu{Categoria: mapCategoria(cat)}
		for _, srv := range servicios {
			entrada.Servicios = append(entrada.Servicios, dto.ServicioPublicResponse{
				ID:          srv.ID,
				Nombre:      srv.Nombre,
				Descripcion: srv.Descripcion,
			})
		}
		resp.Menu = append(resp.Menu, entrada)
	}
	return resp, nil
}

// Inicio feeds the home page: six featured active services, three featured
// portfolio projects, and the hero texts.
func (s *sitioService) Inicio(ctx context.Context) (dto.InicioResponse, error) {
	categorias, err := s.categorias.Listar(ctx)
	if err != nil {
		return dto.InicioResponse{}, err
	}
	servicios, err := s.servicios.ListarActivos(ctx, 6)
	if err != nil {
		return dto.InicioResponse{}, err
	}
	proyectos, err := s.portafolio.ListarActivos(ctx, 3)
	if err != nil {
		return dto.InicioResponse{}, err
	}

	resp := dto.InicioResponse{
		HeroTitulo:    s.settings.Obtener(ctx, "hero_title", ""),
		HeroSubtitulo: s.settings.Obtener(ctx, "hero_subtitle", ""),
	}
	for _, c := range categorias {
		resp.Categorias = append(resp.Categorias, mapCategoria(c))
	}
	for _, srv := range servicios {
		resp.ServiciosDestacados = append(resp.ServiciosDestacados, mapServicio(srv))
	}
	for _, p := range proyectos {
		resp.PortafolioDestacado = append(resp.PortafolioDestacado, mapPortafolio(p))
	}
	return resp, nil
}

// Pagina resolves a static-page slug (acerca, terminos, privacidad,
// accesibilidad) to its stored content.
func (s *sitioService) Pagina(ctx context.Context, slug string) (string, error) {
	clave, ok := clavesPagina[slug]
	if !ok {
		return "", ErrNoEncontrado
	}
	return s.settings.Obtener(ctx, clave, ""), nil
}

func (s *sitioService) Dashboard(ctx context.Context) (dto.DashboardResponse, error) {
	var resp dto.DashboardResponse
	var err error

	if resp.Stats.TotalServicios, err = s.servicios.Contar(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if resp.Stats.ServiciosActivos, err = s.servicios.ContarActivos(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if resp.Stats.TotalPortafolio, err = s.portafolio.Contar(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if resp.Stats.PortafolioActivo, err = s.portafolio.ContarActivos(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if resp.Stats.TotalCotizaciones, err = s.cotizaciones.Contar(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if resp.Stats.CotizacionesPendientes, err = s.cotizaciones.ContarPorEstado(ctx, model.CotizacionPendiente); err != nil {
		return dto.DashboardResponse{}, err
	}
	if resp.Stats.TotalContactos, err = s.contactos.Contar(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if resp.Stats.ContactosNuevos, err = s.contactos.ContarPorEstado(ctx, model.ContactoNuevo); err != nil {
		return dto.DashboardResponse{}, err
	}

	cotizaciones, err := s.cotizaciones.Recientes(ctx, 5)
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	for _, c := range cotizaciones {
		resp.UltimasCotizaciones = append(resp.UltimasCotizaciones, mapCotizacion(c))
	}

	contactos, err := s.contactos.Recientes(ctx, 5)
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	for _, c := range contactos {
		resp.UltimosContactos = append(resp.UltimosContactos, mapContacto(c))
	}
	return resp, nil
}
