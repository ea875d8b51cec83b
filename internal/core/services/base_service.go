package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/relief_ledger/internal/apperrors"
	"github.com/SscSPs/relief_ledger/internal/core/domain"
	"github.com/SscSPs/relief_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireAdmin checks that the caller may perform administrative operations.
func (s *BaseService) RequireAdmin(ctx context.Context, caller domain.Caller, action string) error {
	if caller.Role.CanAdminister() {
		return nil
	}
	err := fmt.Errorf("%w: %s requires role %s, caller %s is %s",
		apperrors.ErrForbidden, action, domain.RoleAdmin, caller.AccountID, caller.Role)
	s.LogError(ctx, err, "Caller not authorized",
		slog.String("caller_id", caller.AccountID),
		slog.String("action", action))
	return err
}
