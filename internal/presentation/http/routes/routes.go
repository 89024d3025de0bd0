package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sangkips/insights-api/internal/config"
	"github.com/sangkips/insights-api/internal/presentation/http/handler"
	"github.com/sangkips/insights-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Insights *handler.InsightsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg         *config.Config
	Logger      zerolog.Logger
	RateLimiter *middleware.ClientRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}
	registerInsightsRoutes(v1, h)

	return router
}

func registerInsightsRoutes(v1 *gin.RouterGroup, h *Handlers) {
	insights := v1.Group("/insights/:party_type")
	{
		insights.GET("", h.Insights.GetInsights)
		insights.POST("", h.Insights.GetInsights)
		insights.GET("/categories", h.Insights.ListCategories)
		insights.POST("/:code/details", h.Insights.GetDetails)
	}
}
