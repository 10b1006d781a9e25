package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Saquero/dndcomhoy/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Submission guards for restaurant and suggestion bodies. They inspect the
// raw JSON (via ShouldBindBodyWith, so handlers can re-bind the same body
// into their DTOs) and gate without coercing: a boolean field may arrive as
// a JSON boolean or as the strings "true"/"false", and the coercion itself
// happens later in dto.FlexBool. Required checks run before type checks.

var camposAmenidades = []string{
	"zonaAmplia",
	"parqueCercano",
	"zonaInfantil",
	"menuInfantil",
	"tronaDisponible",
	"cambiadorDisponible",
	"sitioParaCarrito",
	"terrazaSegura",
	"ambienteFamiliar",
	"sinPantallas",
	"aptoVegetariano",
	"aptoVegano",
	"actividadesParaNinos",
	"accesibleConCarrito",
}

// ValidarRestaurante guards restaurant create/update submissions.
func ValidarRestaurante() gin.HandlerFunc {
	camposBooleanos := append(append([]string{}, camposAmenidades...), "activo", "verificado")

	return func(c *gin.Context) {
		body, ok := bindBody(c)
		if !ok {
			return
		}
		if !exigirCampos(c, body, "nombre", "direccion", "ciudad", "provincia", "descripcion") {
			return
		}
		if !validarStringsOpcionales(c, body, "telefonoRestaurante", "emailRestaurante", "localidad") {
			return
		}
		if !validarImagenes(c, body) {
			return
		}
		if !validarBooleanos(c, body, camposBooleanos) {
			return
		}
		c.Next()
	}
}

// ValidarSugerencia guards public suggestion submissions.
func ValidarSugerencia() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := bindBody(c)
		if !ok {
			return
		}
		if !exigirCampos(c, body, "nombre", "direccion", "descripcion", "localidad", "ciudad", "provincia", "nombreContacto") {
			return
		}
		if !validarStringsOpcionales(c, body, "emailContacto", "comentarios") {
			return
		}
		if !validarBooleanos(c, body, camposAmenidades) {
			return
		}
		c.Next()
	}
}

func bindBody(c *gin.Context) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New("JSON inválido"))
		return nil, false
	}
	return body, true
}

func exigirCampos(c *gin.Context, body map[string]any, campos ...string) bool {
	for _, campo := range campos {
		s, ok := body[campo].(string)
		if !ok || strings.TrimSpace(s) == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				apierror.New(fmt.Sprintf("El campo '%s' es obligatorio", campo)))
			return false
		}
	}
	return true
}

func validarStringsOpcionales(c *gin.Context, body map[string]any, campos ...string) bool {
	for _, campo := range campos {
		v, ok := body[campo]
		if !ok || v == nil {
			continue
		}
		if _, es := v.(string); !es {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				apierror.New(fmt.Sprintf("El campo '%s' debe ser string", campo)))
			return false
		}
	}
	return true
}

func validarImagenes(c *gin.Context, body map[string]any) bool {
	v, ok := body["imagenes"]
	if !ok || v == nil {
		return true
	}
	arr, es := v.([]any)
	if !es {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			apierror.New("El campo 'imagenes' debe ser un arreglo de strings"))
		return false
	}
	for _, elem := range arr {
		if _, es := elem.(string); !es {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				apierror.New("Todas las imágenes deben ser strings"))
			return false
		}
	}
	return true
}

func validarBooleanos(c *gin.Context, body map[string]any, campos []string) bool {
	for _, campo := range campos {
		v, ok := body[campo]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case bool:
		case string:
			if t != "true" && t != "false" {
				c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New(mensajeBooleano(campo)))
				return false
			}
		default:
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New(mensajeBooleano(campo)))
			return false
		}
	}
	return true
}

func mensajeBooleano(campo string) string {
	return fmt.Sprintf("El campo '%s' debe ser booleano o 'true'/'false' como string", campo)
}
