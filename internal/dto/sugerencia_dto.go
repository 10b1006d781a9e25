package dto

import "github.com/Saquero/dndcomhoy/internal/model"

type CrearSugerenciaRequest struct {
	Nombre      string `json:"nombre"`
	Direccion   string `json:"direccion"`
	Descripcion string `json:"descripcion"`
	Localidad   string `json:"localidad"`
	Ciudad      string `json:"ciudad"`
	Provincia   string `json:"provincia"`

	NombreContacto string  `json:"nombreContacto"`
	EmailContacto  *string `json:"emailContacto"`
	Comentarios    *string `json:"comentarios"`

	Amenidades
}

type ActualizarSugerenciaRequest struct {
	Nombre      *string `json:"nombre"`
	Direccion   *string `json:"direccion"`
	Descripcion *string `json:"descripcion"`
	Localidad   *string `json:"localidad"`
	Ciudad      *string `json:"ciudad"`
	Provincia   *string `json:"provincia"`

	NombreContacto *string `json:"nombreContacto"`
	EmailContacto  *string `json:"emailContacto"`
	Comentarios    *string `json:"comentarios"`

	Amenidades
}

// SugerenciaCreadaResponse wraps the stored record with the randomized
// thank-you message shown to the submitter.
type SugerenciaCreadaResponse struct {
	Mensaje    string           `json:"mensaje"`
	Sugerencia model.Sugerencia `json:"sugerencia"`
}

// AprobacionResponse is the body returned when a suggestion is promoted.
type AprobacionResponse struct {
	Mensaje     string            `json:"mensaje"`
	Restaurante model.Restaurante `json:"restaurante"`
}
