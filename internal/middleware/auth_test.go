package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Saquero/dndcomhoy/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const secretoPrueba = "clave-de-prueba"

type stubAdminRepo struct {
	admins map[uint]*model.Admin
}

func (r *stubAdminRepo) Crear(_ context.Context, a *model.Admin) error { return nil }

func (r *stubAdminRepo) ObtenerPorID(_ context.Context, id uint) (*model.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubAdminRepo) ObtenerPorEmail(_ context.Context, _ string) (*model.Admin, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) Listar(_ context.Context) ([]model.Admin, error) { return nil, nil }

func (r *stubAdminRepo) Actualizar(_ context.Context, _ *model.Admin) error { return nil }

func (r *stubAdminRepo) Eliminar(_ context.Context, _ uint) error { return nil }

func firmarToken(t *testing.T, adminID uint, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"adminId": adminID,
		"email":   "ana@dndcomhoy.com",
		"exp":     exp.Unix(),
		"iat":     time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secretoPrueba))
	require.NoError(t, err)
	return signed
}

func routerProtegido(repo *stubAdminRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/privado", AuthAdmin(secretoPrueba, repo), func(c *gin.Context) {
		identity := GetAdmin(c)
		c.JSON(http.StatusOK, gin.H{"adminId": identity.ID})
	})
	return r
}

func pedirPrivado(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/privado", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAdmin_SinToken(t *testing.T) {
	r := routerProtegido(&stubAdminRepo{admins: map[uint]*model.Admin{}})
	w := pedirPrivado(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Token no proporcionado"}`, w.Body.String())
}

func TestAuthAdmin_TokenMalFormateado(t *testing.T) {
	r := routerProtegido(&stubAdminRepo{admins: map[uint]*model.Admin{}})
	w := pedirPrivado(r, "Bearer")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Token mal formateado"}`, w.Body.String())
}

func TestAuthAdmin_FirmaInvalida(t *testing.T) {
	r := routerProtegido(&stubAdminRepo{admins: map[uint]*model.Admin{}})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"adminId": uint(1)})
	firmado, err := token.SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	w := pedirPrivado(r, "Bearer "+firmado)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Token inválido o expirado"}`, w.Body.String())
}

func TestAuthAdmin_TokenExpirado(t *testing.T) {
	r := routerProtegido(&stubAdminRepo{admins: map[uint]*model.Admin{}})
	w := pedirPrivado(r, "Bearer "+firmarToken(t, 1, time.Now().Add(-time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Token inválido o expirado"}`, w.Body.String())
}

func TestAuthAdmin_AdminBorrado(t *testing.T) {
	// Valid signature but no matching row: the token was issued before the
	// account was deleted.
	r := routerProtegido(&stubAdminRepo{admins: map[uint]*model.Admin{}})
	w := pedirPrivado(r, "Bearer "+firmarToken(t, 1, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Admin no encontrado"}`, w.Body.String())
}

func TestAuthAdmin_CuentaInactivaRevocaToken(t *testing.T) {
	email := "ana@dndcomhoy.com"
	repo := &stubAdminRepo{admins: map[uint]*model.Admin{
		1: {ID: 1, Email: &email, Activo: false},
	}}
	r := routerProtegido(repo)

	w := pedirPrivado(r, "Bearer "+firmarToken(t, 1, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Cuenta de admin inactiva"}`, w.Body.String())
}

func TestAuthAdmin_TokenValido(t *testing.T) {
	email := "ana@dndcomhoy.com"
	repo := &stubAdminRepo{admins: map[uint]*model.Admin{
		1: {ID: 1, Email: &email, Activo: true},
	}}
	r := routerProtegido(repo)

	w := pedirPrivado(r, "Bearer "+firmarToken(t, 1, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"adminId":1}`, w.Body.String())
}
