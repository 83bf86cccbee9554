package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"geometa/docs"
	"geometa/internal/auth"
	"geometa/internal/cache"
	"geometa/internal/config"
	"geometa/internal/db"
	"geometa/internal/handler"
	"geometa/internal/logging"
	"geometa/internal/middleware"
	"geometa/internal/repository"
	"geometa/internal/router"
	"geometa/internal/service"
)

// @title GeoMeta API
// @version 1.0
// @description Crowdsourced geographic insights with Mason hypermedia responses.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the API key.
func main() {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logging.Fatal().Err(err).Msg("database init")
	}
	if cfg.ResetDB {
		logging.Warn().Msg("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		logging.Fatal().Err(err).Msg("auto-migrate")
	}

	var (
		cacheClient *cache.Client
		store       middleware.ResponseStore
		invalidator service.Invalidator
	)
	if cfg.CacheEnabled {
		cacheClient = cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.CacheTTL)
		defer cacheClient.Close()
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := cacheClient.Ping(pingCtx); err != nil {
			logging.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, serving uncached")
		}
		cancel()
		store, invalidator = cacheClient, cacheClient
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	apiKeyRepo := repository.NewApiKeyRepository(gormDB)
	insightRepo := repository.NewInsightRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)

	// Initialize services
	userService := service.NewUserService(userRepo, insightRepo, feedbackRepo, invalidator, cfg.BcryptCost)
	insightService := service.NewInsightService(insightRepo, feedbackRepo, invalidator)
	feedbackService := service.NewFeedbackService(feedbackRepo, invalidator)

	docs.SwaggerInfo.Host = cfg.SwaggerHost

	e := echo.New()
	router.Register(e, router.Handlers{
		Resolver:  handler.NewResolver(userService, insightService, feedbackService),
		Users:     handler.NewUserHandler(userService),
		Insights:  handler.NewInsightHandler(insightService),
		Feedbacks: handler.NewFeedbackHandler(feedbackService),
	}, auth.NewAuthenticator(apiKeyRepo), store)

	logging.Info().Str("url", "http://"+cfg.SwaggerHost+"/swagger/index.html").Msg("swagger documentation available")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		logging.Info().Str("addr", addr).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown")
	}
}
