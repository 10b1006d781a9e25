package handler

import (
	"net/http"

	"github.com/Saquero/dndcomhoy/internal/dto"
	"github.com/Saquero/dndcomhoy/internal/service"

	"github.com/gin-gonic/gin"
)

type RestaurantesHandler struct{ svc service.RestauranteService }

func NewRestaurantesHandler(svc service.RestauranteService) *RestaurantesHandler {
	return &RestaurantesHandler{svc: svc}
}

// Listar GET /restaurantes — public, filterable
func (h *RestaurantesHandler) Listar(c *gin.Context) {
	filtros := dto.RestauranteFiltros{
		Direccion: textQueryParam(c, "direccion"),
		Ciudad:    textQueryParam(c, "ciudad"),
		Provincia: textQueryParam(c, "provincia"),
		Localidad: textQueryParam(c, "localidad"),

		Activo:     boolQueryParam(c, "activo"),
		Verificado: boolQueryParam(c, "verificado"),

		ZonaAmplia:           boolQueryParam(c, "zonaAmplia"),
		ParqueCercano:        boolQueryParam(c, "parqueCercano"),
		ZonaInfantil:         boolQueryParam(c, "zonaInfantil"),
		MenuInfantil:         boolQueryParam(c, "menuInfantil"),
		TronaDisponible:      boolQueryParam(c, "tronaDisponible"),
		CambiadorDisponible:  boolQueryParam(c, "cambiadorDisponible"),
		SitioParaCarrito:     boolQueryParam(c, "sitioParaCarrito"),
		TerrazaSegura:        boolQueryParam(c, "terrazaSegura"),
		AmbienteFamiliar:     boolQueryParam(c, "ambienteFamiliar"),
		SinPantallas:         boolQueryParam(c, "sinPantallas"),
		AptoVegetariano:      boolQueryParam(c, "aptoVegetariano"),
		AptoVegano:           boolQueryParam(c, "aptoVegano"),
		ActividadesParaNinos: boolQueryParam(c, "actividadesParaNinos"),
		AccesibleConCarrito:  boolQueryParam(c, "accesibleConCarrito"),
	}

	list, err := h.svc.Listar(c.Request.Context(), filtros)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ObtenerPorID GET /restaurantes/:id — public
func (h *RestaurantesHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rest, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rest)
}

// ObtenerPorSlug GET /restaurantes/slug/:slug — public
func (h *RestaurantesHandler) ObtenerPorSlug(c *gin.Context) {
	rest, err := h.svc.ObtenerPorSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rest)
}

// Crear POST /restaurantes
func (h *RestaurantesHandler) Crear(c *gin.Context) {
	var req dto.CrearRestauranteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rest, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rest)
}

// Actualizar PUT /restaurantes/:id
func (h *RestaurantesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarRestauranteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rest, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rest)
}

// Eliminar DELETE /restaurantes/:id
func (h *RestaurantesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Mensaje: "Restaurante eliminado correctamente"})
}
