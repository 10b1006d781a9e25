package handler

import (
	"math/rand"
	"net/http"
	"strings"

	"github.com/Saquero/dndcomhoy/internal/dto"
	"github.com/Saquero/dndcomhoy/internal/service"

	"github.com/gin-gonic/gin"
)

// frasesGracias are the fixed thank-you templates shown to submitters;
// {nombre} is replaced with the submitted restaurant name.
var frasesGracias = []string{
	`¡Gracias por tu sugerencia! El restaurante "{nombre}" ha sido registrado y será revisado.`,
	`¡Genial! Hemos recibido la sugerencia para "{nombre}". Nuestro equipo la revisará pronto.`,
	`¡Perfecto! "{nombre}" está en nuestra lista para evaluación. ¡Gracias por colaborar!`,
	`¡Tu sugerencia para "{nombre}" ha sido anotada! Te avisaremos cuando sea verificada.`,
	`¡Gracias por ayudarnos a mejorar! "{nombre}" será revisado por nuestro equipo muy pronto.`,
}

func fraseAleatoria(nombre string) string {
	frase := frasesGracias[rand.Intn(len(frasesGracias))]
	return strings.Replace(frase, "{nombre}", nombre, 1)
}

type SugerenciasHandler struct{ svc service.SugerenciaService }

func NewSugerenciasHandler(svc service.SugerenciaService) *SugerenciasHandler {
	return &SugerenciasHandler{svc: svc}
}

// Crear POST /sugerencias — public submission
func (h *SugerenciasHandler) Crear(c *gin.Context) {
	var req dto.CrearSugerenciaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sug, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SugerenciaCreadaResponse{
		Mensaje:    fraseAleatoria(sug.Nombre),
		Sugerencia: *sug,
	})
}

// Listar GET /sugerencias — newest first
func (h *SugerenciasHandler) Listar(c *gin.Context) {
	list, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ObtenerPorID GET /sugerencias/:id
func (h *SugerenciasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sug, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sug)
}

// Actualizar PUT /sugerencias/:id
func (h *SugerenciasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarSugerenciaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sug, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sug)
}

// Aprobar POST /sugerencias/:id/aprobar — promotes into a restaurant
func (h *SugerenciasHandler) Aprobar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rest, err := h.svc.Aprobar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.AprobacionResponse{
		Mensaje:     "Sugerencia aprobada y convertida en restaurante",
		Restaurante: *rest,
	})
}

// Eliminar DELETE /sugerencias/:id — rejection
func (h *SugerenciasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Sugerencia eliminada correctamente"})
}
