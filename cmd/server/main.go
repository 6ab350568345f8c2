package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/alimehmetoglu-sipsy/frigya-sub000/api/swagger"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/handler"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/repository"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/service"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/cache"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/config"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/database"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/logger"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/storage"
)

// @title Phrygian Way Registration API
// @version 1.0.0
// @description Trail registration intake, draft sync and form analytics
// @BasePath /api
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

	db, err := database.NewSQLite(cfg.Database)
	if err != nil {
		logr.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	if err := database.Migrate(db); err != nil {
		logr.Fatal("failed to migrate database", zap.Error(err))
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close() //nolint:errcheck

	exportStore, err := storage.NewLocalStorage(cfg.Export.Dir)
	if err != nil {
		logr.Fatal("failed to prepare export storage", zap.Error(err))
	}
	signer := storage.NewSignedURLSigner(cfg.Export.SigningSecret, cfg.Export.DownloadTTL)

	registrationRepo := repository.NewRegistrationRepository(db)
	routeRepo := repository.NewRouteRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	draftRepo := repository.NewDraftRepository(redisClient, cfg.Registration.DraftTTL)
	cacheRepo := repository.NewCacheRepository(redisClient)

	validate := service.NewValidator()
	metricsService := service.NewMetricsService()
	analyticsService := service.NewAnalyticsService(analyticsRepo, cacheRepo, metricsService, validate, logr, cfg.Analytics)
	draftService := service.NewDraftService(draftRepo, metricsService, logr)
	registrationService := service.NewRegistrationService(registrationRepo, analyticsService, draftService, metricsService, validate, logr)
	routeService := service.NewRouteService(routeRepo, metricsService, logr)
	authService := service.NewAuthService(cfg.Admin, cfg.JWT, validate, logr)
	exportService := service.NewExportService(registrationRepo, exportStore, signer, metricsService, logr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	analyticsService.Start(ctx)

	if cfg.Routes.SeedOnStart {
		if err := routeService.Seed(ctx); err != nil {
			logr.Fatal("failed to seed trail catalog", zap.Error(err))
		}
	}
	exportService.Cleanup(cfg.Export.CleanupTTL)

	router := handler.NewRouter(cfg, logr, handler.Handlers{
		Registration: handler.NewRegistrationHandler(registrationService),
		Analytics:    handler.NewAnalyticsHandler(analyticsService),
		Draft:        handler.NewDraftHandler(draftService),
		Route:        handler.NewRouteHandler(routeService),
		Admin:        handler.NewAdminHandler(authService, registrationService, exportService),
	}, authService, metricsService)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("forced shutdown", zap.Error(err))
	}

	// Stopped after the server so in-flight requests can still enqueue events.
	analyticsService.Stop()

	logr.Info("server exited")
}
