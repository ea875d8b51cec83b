package handlers

import (
	"fmt"

	"github.com/SscSPs/relief_ledger/cmd/docs"
	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger/internal/middleware"
	"github.com/SscSPs/relief_ledger/internal/platform/config"
	"github.com/SscSPs/relief_ledger/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// m may be nil, in which case /metrics is not served.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
) error {
	if err := registerValidators(); err != nil {
		return err
	}

	registerHomeRoutes(r)

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Development tokens are never served in production
	if cfg.EnableDevTokens && !cfg.IsProduction {
		registerAuthRoutes(r, services.Registry, services.Token)
	}

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	lim, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure rate limiting: %w", err)
	}

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerLedgerRoutes(v1, service.Ledger, service.Registry, cfg.SettlementDelay, middleware.RateLimit(lim))
	registerAccountRoutes(v1, service.Registry, service.Ledger)
	registerCategoryRoutes(v1, service.Registry)
	registerReportingRoutes(v1, service.Reporting, service.Registry)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
