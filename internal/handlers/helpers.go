package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/relief_ledger/internal/apperrors"
	"github.com/SscSPs/relief_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// resolveCaller maps the authenticated subject to a caller acting in the
// role it was registered with. It writes the error response itself.
func resolveCaller(c *gin.Context, registry portssvc.RegistryReaderSvc) (domain.Caller, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.Caller{}, false
	}

	account, err := registry.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Token subject is not a registered account", slog.String("account_id", accountID))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown account"})
		} else {
			logger.Error("Failed to resolve caller", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve caller"})
		}
		return domain.Caller{}, false
	}

	return domain.Caller{AccountID: account.AccountID, Role: account.Role}, true
}

// requireKnownCategory rejects a category outside the router's own catalog.
// An empty ID passes; required fields are enforced by binding. It writes the
// error response itself.
func requireKnownCategory(c *gin.Context, catalog *domain.Catalog, categoryID string) bool {
	if categoryID == "" || catalog.Contains(categoryID) {
		return true
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Unknown category in request", slog.String("category_id", categoryID))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + categoryID})
	return false
}

// respondServiceError maps service errors to HTTP statuses. Integrity errors
// are checked first since they may also wrap a validation error.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrIntegrity):
		logger.Error("Ledger integrity error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Operation forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// waitForSettlement sleeps for the configured settlement delay, returning
// early with the context's error if the request goes away first.
func waitForSettlement(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
