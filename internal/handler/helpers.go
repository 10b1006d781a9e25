package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/Saquero/dndcomhoy/internal/apierror"
	"github.com/Saquero/dndcomhoy/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report field names as they appear on the wire (json tag), not as Go
	// identifiers.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Bodies are bound with ShouldBindBodyWith so a validation guard middleware
// earlier in the chain can have consumed the same body already.
// Returns false with the error response already written if binding fails,
// so the caller just returns.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido"))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fe := err.(validator.ValidationErrors)[0]
		c.JSON(http.StatusBadRequest, apierror.New("El campo '"+fe.Field()+"' es inválido o falta"))
		return false
	}
	return true
}

// parseID reads the :id route param as a numeric id.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return uint(id), true
}

// respondError maps service sentinels onto HTTP statuses. Anything
// unrecognized is logged through the error-handler middleware and reported
// to the client as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAdminNoEncontrado),
		errors.Is(err, service.ErrRestauranteNoEncontrado),
		errors.Is(err, service.ErrSugerenciaNoEncontrada):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCredencialesInvalidas):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCuentaInactiva):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	case errors.Is(err, service.ErrEmailRegistrado):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrRegistroIncompleto):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}

// boolQueryParam centralizes the "true"/"false" coercion for query-string
// booleans. Absent or empty means "filter not requested"; any other value
// filters by equality, so an explicit false (?activo=false) is expressible.
func boolQueryParam(c *gin.Context, name string) *bool {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil
	}
	b := v == "true"
	return &b
}

func textQueryParam(c *gin.Context, name string) *string {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil
	}
	return &v
}
