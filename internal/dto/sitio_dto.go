package dto

// SitioResponse is the site-wide payload injected into every page of the
// frontend: branding settings plus the navigation menu of categories with
// their active services.
type SitioResponse struct {
	Settings map[string]string `json:"settings"`
	Menu     []CategoriaMenu   `json:"menu"`
}

// InicioResponse feeds the home page: all categories, up to six featured
// active services and three featured portfolio items, plus the hero texts.
type InicioResponse struct {
	Categorias          []CategoriaResponse  `json:"categorias"`
	ServiciosDestacados []ServicioResponse   `json:"servicios_destacados"`
	PortafolioDestacado []PortafolioResponse `json:"portafolio_destacado"`
	HeroTitulo          string               `json:"hero_titulo"`
	HeroSubtitulo       string               `json:"hero_subtitulo"`
}

// DashboardResponse aggregates the admin landing page counters and the five
// most recent leads of each kind.
type DashboardResponse struct {
	Stats               DashboardStats       `json:"stats"`
	UltimasCotizaciones []CotizacionResponse `json:"ultimas_cotizaciones"`
	UltimosContactos    []ContactoResponse   `json:"ultimos_contactos"`
}

type DashboardStats struct {
	TotalServicios         int64 `json:"total_servicios"`
	ServiciosActivos       int64 `json:"servicios_activos"`
	TotalPortafolio        int64 `json:"total_portafolio"`
	PortafolioActivo       int64 `json:"portafolio_activo"`
	TotalCotizaciones      int64 `json:"total_cotizaciones"`
	CotizacionesPendientes int64 `json:"cotizaciones_pendientes"`
	TotalContactos         int64 `json:"total_contactos"`
	ContactosNuevos        int64 `json:"contactos_nuevos"`
}
