package service

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors the handler layer maps to specific HTTP statuses. Everything
// else coming out of a service is either a user-facing validation message
// (400) or an unexpected persistence failure (500, handled by middleware).
var (
	// ErrNoEncontrado maps to 404.
	ErrNoEncontrado = errors.New("registro no encontrado")
	// ErrCategoriaConServicios maps to 409: the category still owns services
	// and the delete is refused with the row untouched.
	ErrCategoriaConServicios = errors.New("no se puede eliminar una categoría que tiene servicios asociados")
	// ErrEstadoInvalido maps to 400: the requested estado is outside the
	// entity's fixed set and the stored value is left unchanged.
	ErrEstadoInvalido = errors.New("estado inválido")
	// ErrCredenciales maps to 401.
	ErrCredenciales = errors.New("usuario o contraseña incorrectos")
)

// traducirNoEncontrado collapses GORM's not-found into the service sentinel so
// handlers never import gorm.
func traducirNoEncontrado(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoEncontrado
	}
	return err
}
