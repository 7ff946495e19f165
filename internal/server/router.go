// Package server assembles the gin engine and its route table.
package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/mentor-match-api/internal/handler"
	"github.com/noah-isme/mentor-match-api/internal/middleware"
	"github.com/noah-isme/mentor-match-api/internal/service"
	"github.com/noah-isme/mentor-match-api/pkg/config"
	"github.com/noah-isme/mentor-match-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/mentor-match-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/mentor-match-api/pkg/middleware/requestid"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Mentors         *handler.MentorHandler
	Recommendations *handler.RecommendationHandler
	Metrics         *handler.MetricsHandler
}

// NewRouter builds the gin engine with the shared middleware chain.
func NewRouter(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(corsmiddleware.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxAge:         cfg.CORS.MaxAge,
	}))
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)
	r.GET("/metrics/summary", h.Metrics.Summary)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	prefix := "/" + strings.Trim(cfg.APIPrefix, "/")
	if prefix == "/" {
		prefix = ""
	}
	api := r.Group(prefix)
	{
		api.GET("/mentors", h.Mentors.List)
		api.GET("/mentors/:id", h.Mentors.Get)

		students := api.Group("/students/:id")
		students.GET("/recommendations", h.Recommendations.Recommend)
		students.GET("/recommendations/export", h.Recommendations.Export)
		students.GET("/matches/:mentorId", h.Recommendations.Explain)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "route not found"}})
	})

	return r
}
