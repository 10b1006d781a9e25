package service

import "errors"

// Sentinel errors exposed by the service layer. Handlers map these onto
// HTTP statuses; anything else is an internal error and is never shown to
// the client verbatim.
var (
	ErrAdminNoEncontrado       = errors.New("Admin no encontrado")
	ErrRestauranteNoEncontrado = errors.New("Restaurante no encontrado")
	ErrSugerenciaNoEncontrada  = errors.New("Sugerencia no encontrada")

	// Login deliberately returns the same message for an unknown email and
	// a wrong password, so the response never reveals whether the email
	// exists.
	ErrCredencialesInvalidas = errors.New("Credenciales incorrectas")
	ErrCuentaInactiva        = errors.New("Cuenta de admin inactiva")

	ErrEmailRegistrado    = errors.New("El email ya está registrado")
	ErrRegistroIncompleto = errors.New("Contraseña y al menos email o nombre son requeridos")
)
