package service

import (
	"context"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// seedCategoria bundles a default category with the services created under it.
type seedCategoria struct {
	nombre      string
	descripcion string
	servicios   [][2]string // nombre, descripcion
}

var catalogoInicial = []seedCategoria{
	{
		nombre:      "Tecnología y Desarrollo",
		descripcion: "Desarrollo de software, web y automatización",
		servicios: [][2]string{
			{"Desarrollo Web", "Sitios en WordPress, Divi, Flask, React, PHP"},
			{"Aplicaciones AI", "Apps Flask con chatbots, WhatsApp, SMS, voz"},
			{"Automatización n8n", "Flujos automáticos, integración con APIs"},
			{"Bases de Datos", "MySQL, SQLite, FileMaker, reportes y APIs"},
			{"DevOps & Hosting", "Proxmox, Vultr, Nginx, Docker, LXC, SSL"},
		},
	},
	{
		nombre:      "Telecomunicaciones y Telefonía",
		descripcion: "Telefonía IP, VoIP, SMS y multicanal",
		servicios: [][2]string{
			{"PBX y VoIP", "Asterisk, Issabel, LiveKit, Telnyx SIP Trunk"},
			{"IVR y Call Routing", "Menús automáticos, grabaciones, AI en llamadas"},
			{"SMS & WhatsApp", "Integración con Telnyx, WhatsApp Business API"},
		},
	},
	{
		nombre:      "Agencia de Viajes",
		descripcion: "Boletos, tours, comisiones y seguros",
		servicios: [][2]string{
			{"Reservaciones y Boletos", "Amadeus, Sabre, consolidación de ventas"},
			{"Tours y Paquetes", "Organización de viajes y experiencias"},
			{"Seguros de Viaje", "Cotización automática y APIs de proveedores"},
			{"Subagencias y Comisiones", "Reportes ARC, reglas de aerolíneas"},
		},
	},
	{
		nombre:      "Diseño Gráfico y Marketing",
		descripcion: "Branding, publicidad digital y diseño",
		servicios: [][2]string{
			{"Diseño Gráfico", "Logos, flyers, tarjetas, identidad visual"},
			{"Marketing Digital", "SEO, redes sociales, MailerLite, campañas"},
		},
	},
	{
		nombre:      "Electrónica y Proyectos DIY",
		descripcion: "IoT, autos, CNC y hardware",
		servicios: [][2]string{
			{"Electrónica", "Microcontroladores, displays, sensores"},
			{"IoT y DIY", "Arduino, ESP32, LoRa, sistemas HUD para autos"},
			{"CNC y Mecatrónica", "CNC, IR touch frames, prototipos"},
		},
	},
	{
		nombre:      "Inteligencia Artificial y Data",
		descripcion: "Modelos AI, chatbots, análisis de datos",
		servicios: [][2]string{
			{"Análisis de Datos", "Limpieza, clasificación, reportes inteligentes"},
			{"Chatbots Multicanal", "Integración AI en WhatsApp, SMS, web"},
			{"TinyML & ML", "Modelos ligeros para hardware embebido"},
		},
	},
}

var settingsIniciales = [][3]string{ // clave, valor, descripcion
	{"site_title", "Araiza Inc", "Título del sitio web"},
	{"site_description", "Soluciones tecnológicas integrales para tu empresa", "Descripción del sitio"},
	{"company_name", "Araiza Inc", "Nombre de la empresa"},
	{"company_email", "info@araizainc.com", "Email de contacto"},
	{"company_phone", "+1 (555) 123-4567", "Teléfono de contacto"},
	{"company_address", "123 Business Ave, Suite 100, City, State 12345", "Dirección de la empresa"},
	{"about_us", "Araiza Inc es una empresa líder en soluciones tecnológicas...", "Acerca de nosotros"},
	{"facebook_url", "https://facebook.com/araizainc", "URL de Facebook"},
	{"twitter_url", "https://twitter.com/araizainc", "URL de Twitter"},
	{"linkedin_url", "https://linkedin.com/company/araizainc", "URL de LinkedIn"},
	{"instagram_url", "https://instagram.com/araizainc", "URL de Instagram"},
	{"logo_url", "/static/images/logo.png", "URL del logo"},
	{"hero_title", "Transformamos ideas en soluciones tecnológicas", "Título principal del hero"},
	{"hero_subtitle", "Expertos en desarrollo, telecomunicaciones, IA y más", "Subtítulo del hero"},
	{"terms_conditions", "Términos y condiciones de uso...", "Términos y condiciones"},
	{"privacy_policy", "Política de privacidad...", "Política de privacidad"},
	{"accessibility", "Declaración de accesibilidad...", "Declaración de accesibilidad"},
}

// Seed populates the default catalog (categories, services, settings) on an
// empty database. The whole batch runs inside one transaction: any existing
// category row makes it a no-op, and any failure rolls everything back and
// propagates so startup aborts instead of running half-seeded.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Categoria{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			log.Debug().Msg("base de datos ya inicializada, seed omitido")
			return nil
		}

		log.Info().Msg("base de datos vacía, cargando contenido por defecto")

		for _, sc := range catalogoInicial {
			descripcion := sc.descripcion
			cat := model.Categoria{Nombre: sc.nombre, Descripcion: &descripcion}
			if err := tx.Create(&cat).Error; err != nil {
				return err
			}
			for _, sv := range sc.servicios {
				desc := sv[1]
				srv := model.Servicio{
					CategoriaID: cat.ID,
					Nombre:      sv[0],
					Descripcion: &desc,
					Activo:      true,
				}
				if err := tx.Create(&srv).Error; err != nil {
					return err
				}
			}
		}

		settings := make([]model.SiteSetting, 0, len(settingsIniciales))
		for _, s := range settingsIniciales {
			desc := s[2]
			settings = append(settings, model.SiteSetting{
				Clave:       s[0],
				Valor:       s[1],
				Descripcion: &desc,
			})
		}
		if err := tx.Create(&settings).Error; err != nil {
			return err
		}

		log.Info().
			Int("categorias", len(catalogoInicial)).
			Int("settings", len(settings)).
			Msg("contenido por defecto cargado")
		return nil
	})
}
