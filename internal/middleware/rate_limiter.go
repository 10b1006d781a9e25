package middleware

import (
	"net/http"
	"time"

	"github.com/Saquero/dndcomhoy/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	loginAttemptLimit  = 20
	loginAttemptWindow = time.Minute
)

// LoginRateLimiter limits login attempts per IP. Counters live in Redis so
// the limit holds across restarts and replicas.
func LoginRateLimiter(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "login_attempts:" + c.ClientIP()

		n, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis unavailable: let the request through rather than lock
			// every admin out of the panel.
			log.Warn().Err(err).Msg("login rate limiter unavailable")
			c.Next()
			return
		}
		if n == 1 {
			rdb.Expire(ctx, key, loginAttemptWindow)
		}
		if n > loginAttemptLimit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}
