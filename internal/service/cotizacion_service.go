package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/dto"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/repository"

	"github.com/rs/zerolog/log"
)

// Subscriber is the mailing-list collaborator: best-effort only, its outcome
// never affects lead creation.
type Subscriber interface {
	Subscribe(ctx context.Context, email, nombre string) (bool, error)
}

// suscripcionTimeout bounds the fire-and-forget MailerLite call so a slow
// endpoint cannot hold a goroutine forever.
const suscripcionTimeout = 5 * time.Second

// CotizacionService handles quote-request intake and triage.
type CotizacionService interface {
	Crear(ctx context.Context, req dto.CrearCotizacionRequest) (dto.CotizacionResponse, error)
	Listar(ctx context.Context, filter dto.CotizacionFilter) (dto.CotizacionListResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (dto.CotizacionResponse, error)
	CambiarEstado(ctx context.Context, id uint, estado string) error
}

type cotizacionService struct {
	repo       repository.CotizacionRepository
	newsletter Subscriber
}

func NewCotizacionService(repo repository.CotizacionRepository, newsletter Subscriber) CotizacionService {
	return &cotizacionService{repo: repo, newsletter: newsletter}
}

func mapCotizacion(c model.Cotizacion) dto.CotizacionResponse {
	return dto.CotizacionResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Email:       c.Email,
		Telefono:    c.Telefono,
		Empresa:     c.Empresa,
		CategoriaID: c.CategoriaID,
		ServicioID:  c.ServicioID,
		Mensaje:     c.Mensaje,
		Presupuesto: c.Presupuesto,
		FechaLimite: formatFecha(c.FechaLimite),
		Estado:      c.Estado,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

// Crear persists a public quote submission and then kicks off the newsletter
// subscription in the background. The lead is already durable when that call
// starts, so nothing the mailing-list service does can undo it.
func (s *cotizacionService) Crear(ctx context.Context, req dto.CrearCotizacionRequest) (dto.CotizacionResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	email := strings.TrimSpace(req.Email)
	mensaje := strings.TrimSpace(req.Mensaje)
	if nombre == "" || email == "" || mensaje == "" {
		return dto.CotizacionResponse{}, errors.New("nombre, email y mensaje son requeridos")
	}

	// Malformed deadlines are swallowed: the lead is stored without one.
	fechaLimite, _ := parseFechaOpcional(req.FechaLimite)

	c := &model.Cotizacion{
		Nombre:      nombre,
		Email:       email,
		Telefono:    req.Telefono,
		Empresa:     req.Empresa,
		CategoriaID: req.CategoriaID,
		ServicioID:  req.ServicioID,
		Mensaje:     mensaje,
		Presupuesto: req.Presupuesto,
		FechaLimite: fechaLimite,
		Estado:      model.CotizacionPendiente,
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.CotizacionResponse{}, err
	}

	// Fire-and-forget, detached from the request context on purpose: the
	// response should not wait for MailerLite, and a cancelled request must
	// not cancel the subscription attempt.
	go s.suscribir(c.Email, c.Nombre)

	return mapCotizacion(*c), nil
}

func (s *cotizacionService) suscribir(email, nombre string) {
	ctx, cancel := context.WithTimeout(context.Background(), suscripcionTimeout)
	defer cancel()

	ok, err := s.newsletter.Subscribe(ctx, email, nombre)
	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("suscripción a newsletter fallida")
		return
	}
	if ok {
		log.Debug().Str("email", email).Msg("suscripto a newsletter")
	}
}

func (s *cotizacionService) Listar(ctx context.Context, filter dto.CotizacionFilter) (dto.CotizacionListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	list, total, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return dto.CotizacionListResponse{}, err
	}
	resp := dto.CotizacionListResponse{
		Data:  make([]dto.CotizacionResponse, 0, len(list)),
		Total: total,
		Page:  filter.Page,
		Limit: dto.PageSize,
	}
	for _, c := range list {
		resp.Data = append(resp.Data, mapCotizacion(c))
	}
	return resp, nil
}

func (s *cotizacionService) ObtenerPorID(ctx context.Context, id uint) (dto.CotizacionResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.CotizacionResponse{}, traducirNoEncontrado(err)
	}
	return mapCotizacion(*c), nil
}

// CambiarEstado validates against the fixed estado set before writing. An
// invalid value leaves the stored estado untouched.
func (s *cotizacionService) CambiarEstado(ctx context.Context, id uint, estado string) error {
	if !model.EstadoCotizacionValido(estado) {
		return ErrEstadoInvalido
	}
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return traducirNoEncontrado(err)
	}
	return s.repo.ActualizarEstado(ctx, id, estado)
}
