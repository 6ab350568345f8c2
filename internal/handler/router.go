package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/middleware"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/service"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/config"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/logger"
	corsmiddleware "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/middleware/cors"
	reqidmiddleware "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/middleware/requestid"

	"go.uber.org/zap"
)

// Handlers bundles every HTTP handler wired into the router.
type Handlers struct {
	Registration *RegistrationHandler
	Analytics    *AnalyticsHandler
	Draft        *DraftHandler
	Route        *RouteHandler
	Admin        *AdminHandler
}

// NewRouter assembles the gin engine: ambient middleware, health probes,
// the public intake surface and the protected admin group.
func NewRouter(cfg *config.Config, logr *zap.Logger, h Handlers, auth *service.AuthService, metrics *service.MetricsService) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.Session(cfg.Registration.SessionHeader))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/registration", h.Registration.Submit)

		draft := api.Group("/registration/draft")
		{
			draft.PUT("", h.Draft.Save)
			draft.GET("", h.Draft.Load)
			draft.DELETE("", h.Draft.Discard)
		}

		api.POST("/analytics/form", h.Analytics.Track)

		api.GET("/routes", h.Route.List)
		api.GET("/routes/:slug", h.Route.Get)

		// Authorized by the signed token, not a bearer header, so the
		// link works when opened directly in a browser.
		api.GET("/exports/download", h.Admin.Download)

		admin := api.Group("/admin")
		{
			admin.POST("/login", h.Admin.Login)

			secured := admin.Group("", middleware.AdminJWT(auth))
			{
				secured.GET("/registrations", h.Admin.ListRegistrations)
				secured.GET("/registrations/export", h.Admin.Export)
				secured.GET("/registrations/:id", h.Admin.GetRegistration)
				secured.GET("/analytics/funnel", h.Analytics.Funnel)
			}
		}
	}

	return r
}
