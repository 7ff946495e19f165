package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/mentor-match-api/api/swagger"
	"github.com/noah-isme/mentor-match-api/internal/handler"
	"github.com/noah-isme/mentor-match-api/internal/repository"
	"github.com/noah-isme/mentor-match-api/internal/server"
	"github.com/noah-isme/mentor-match-api/internal/service"
	"github.com/noah-isme/mentor-match-api/pkg/cache"
	"github.com/noah-isme/mentor-match-api/pkg/config"
	"github.com/noah-isme/mentor-match-api/pkg/database"
	"github.com/noah-isme/mentor-match-api/pkg/logger"
)

// @title Mentor Match API
// @version 1.0.0
// @description Mentor directory and student to mentor recommendations
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, recommendation cache disabled", zap.Error(err))
	}

	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Recommendations.CacheTTL, logr, cfg.Recommendations.CacheEnabled && redisClient != nil)

	mentorRepo := repository.NewMentorRepository(db)
	studentRepo := repository.NewStudentRepository(db)

	mentorSvc := service.NewMentorService(mentorRepo, logr)
	recommendationSvc := service.NewRecommendationService(service.RecommendationServiceParams{
		Mentors:   mentorRepo,
		Students:  studentRepo,
		Cache:     cacheSvc,
		Metrics:   metricsSvc,
		Validator: validator.New(),
		Logger:    logr,
		Config: service.RecommendationServiceConfig{
			CacheTTL:     cfg.Recommendations.CacheTTL,
			DefaultLimit: cfg.Recommendations.DefaultLimit,
			MaxLimit:     cfg.Recommendations.MaxLimit,
		},
	})

	router := server.NewRouter(cfg, logr, metricsSvc, server.Handlers{
		Mentors:         handler.NewMentorHandler(mentorSvc),
		Recommendations: handler.NewRecommendationHandler(recommendationSvc),
		Metrics: handler.NewMetricsHandler(metricsSvc,
			handler.ReadinessCheck{Name: "postgres", Ping: db.PingContext},
			handler.ReadinessCheck{Name: "redis", Ping: cacheRepo.Ping},
		),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
