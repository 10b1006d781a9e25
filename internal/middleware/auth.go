package middleware

import (
	"net/http"
	"strings"

	"github.com/Saquero/dndcomhoy/internal/apierror"
	"github.com/Saquero/dndcomhoy/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const AdminKey = "admin"

// AdminIdentity is the authenticated caller attached to the request context.
type AdminIdentity struct {
	ID    uint
	Email *string
}

// AuthAdmin validates the Bearer token on every protected route and
// re-checks the admin against the store so that deactivating an account
// revokes tokens issued earlier. One lookup per request, no caching.
func AuthAdmin(secret string, admins repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token no proporcionado"))
			return
		}

		parts := strings.Fields(header)
		if len(parts) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token mal formateado"))
			return
		}
		tokenStr := parts[1]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido o expirado"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido o expirado"))
			return
		}
		adminID, ok := claims["adminId"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido o expirado"))
			return
		}

		admin, err := admins.ObtenerPorID(c.Request.Context(), uint(adminID))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Admin no encontrado"))
			return
		}
		if !admin.Activo {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Cuenta de admin inactiva"))
			return
		}

		c.Set(AdminKey, AdminIdentity{ID: admin.ID, Email: admin.Email})
		c.Next()
	}
}

// GetAdmin is a helper to retrieve the typed identity from the Gin context.
func GetAdmin(c *gin.Context) AdminIdentity {
	identity, _ := c.MustGet(AdminKey).(AdminIdentity)
	return identity
}
