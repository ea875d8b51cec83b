package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/relief_ledger/internal/adapters/memory"
	"github.com/SscSPs/relief_ledger/internal/core/domain"
	"github.com/SscSPs/relief_ledger/internal/core/services"
	"github.com/SscSPs/relief_ledger/internal/handlers"
	"github.com/SscSPs/relief_ledger/internal/middleware"
	"github.com/SscSPs/relief_ledger/internal/platform/config"
	"github.com/SscSPs/relief_ledger/internal/platform/metrics"
	"github.com/SscSPs/relief_ledger/internal/platform/seed"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// @title Relief Ledger API
// @version 1.0
// @description Restricted-purpose disbursement ledger for relief funds.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog := domain.DefaultCatalog()
	repos := memory.NewRepositoryProvider()
	appMetrics := metrics.NewMetrics()
	container := services.NewServiceContainer(cfg, repos, catalog, services.WithRecorder(appMetrics))

	if cfg.SeedDemoData {
		if err := seed.Seed(middleware.WithLogger(ctx, logger), container); err != nil {
			return err
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, metrics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		appMetrics.GinMiddleware(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	if err := handlers.RegisterRoutes(r, cfg, container, appMetrics); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30*time.Second + cfg.SettlementDelay,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
