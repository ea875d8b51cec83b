package services

import (
	"context"
	"time"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken mints a JWT whose subject is the account ID.
	GenerateAccessToken(ctx context.Context, account *domain.Account) (string, time.Time, error)
}
