package router

import (
	"net/http"

	"github.com/Saquero/dndcomhoy/internal/apierror"
	"github.com/Saquero/dndcomhoy/internal/config"
	"github.com/Saquero/dndcomhoy/internal/handler"
	"github.com/Saquero/dndcomhoy/internal/middleware"
	"github.com/Saquero/dndcomhoy/internal/repository"
	"github.com/Saquero/dndcomhoy/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	adminRepo := repository.NewAdminRepository(db)
	restauranteRepo := repository.NewRestauranteRepository(db)
	sugerenciaRepo := repository.NewSugerenciaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	adminSvc := service.NewAdminService(adminRepo, cfg)
	restauranteSvc := service.NewRestauranteService(restauranteRepo)
	sugerenciaSvc := service.NewSugerenciaService(sugerenciaRepo, restauranteRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	adminH := handler.NewAdminHandler(adminSvc)
	restaurantesH := handler.NewRestaurantesHandler(restauranteSvc)
	sugerenciasH := handler.NewSugerenciasHandler(sugerenciaSvc)

	// The auth gate re-checks the admin row on every request, so disabling
	// an account takes effect immediately.
	authMW := middleware.AuthAdmin(cfg.JWTSecret, adminRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	admin := r.Group("/admin")
	{
		admin.POST("/login", middleware.LoginRateLimiter(rdb), adminH.Login)
		admin.POST("/register", adminH.Registrar)

		admin.GET("", authMW, adminH.Listar)
		admin.GET("/:id", authMW, adminH.ObtenerPorID)
		admin.PUT("/:id", authMW, adminH.Actualizar)
		admin.DELETE("/:id", authMW, adminH.Eliminar)
	}

	restaurantes := r.Group("/restaurantes")
	{
		// Public browsing
		restaurantes.GET("", restaurantesH.Listar)
		restaurantes.GET("/:id", restaurantesH.ObtenerPorID)
		restaurantes.GET("/slug/:slug", restaurantesH.ObtenerPorSlug)

		// Admin-only writes
		restaurantes.POST("", authMW, middleware.ValidarRestaurante(), restaurantesH.Crear)
		restaurantes.PUT("/:id", authMW, middleware.ValidarRestaurante(), restaurantesH.Actualizar)
		restaurantes.DELETE("/:id", authMW, restaurantesH.Eliminar)
	}

	sugerencias := r.Group("/sugerencias")
	{
		// Public submission — validated but unauthenticated
		sugerencias.POST("", middleware.ValidarSugerencia(), sugerenciasH.Crear)

		// Review workflow — admins only
		sugerencias.GET("", authMW, sugerenciasH.Listar)
		sugerencias.GET("/:id", authMW, sugerenciasH.ObtenerPorID)
		sugerencias.PUT("/:id", authMW, middleware.ValidarSugerencia(), sugerenciasH.Actualizar)
		sugerencias.POST("/:id/aprobar", authMW, sugerenciasH.Aprobar)
		sugerencias.DELETE("/:id", authMW, sugerenciasH.Eliminar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apierror.New("Ruta no encontrada"))
	})

	return r
}
