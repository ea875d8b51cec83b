package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger/internal/dto"
	"github.com/google/uuid"
)

// registryService implements the RegistrySvcFacade interface
type registryService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	catalog     *domain.Catalog
	now         func() time.Time
}

// NewRegistryService creates a registry service over the account repository
// and the fixed category catalog.
func NewRegistryService(repo portsrepo.AccountRepositoryFacade, catalog *domain.Catalog) portssvc.RegistrySvcFacade {
	return &registryService{
		accountRepo: repo,
		catalog:     catalog,
		now:         time.Now,
	}
}

var _ portssvc.RegistrySvcFacade = (*registryService)(nil)

func (s *registryService) RegisterAccount(ctx context.Context, caller domain.Caller, req dto.RegisterAccountRequest) (*domain.Account, error) {
	if err := s.RequireAdmin(ctx, caller, "register account"); err != nil {
		return nil, err
	}

	accountID := req.AccountID
	if accountID == "" {
		accountID = uuid.NewString()
	}

	account := domain.Account{
		AccountID:          accountID,
		Name:               req.Name,
		Role:               req.Role,
		Verified:           req.Verified,
		AuthorizedCategory: req.AuthorizedCategory,
		Location:           req.Location,
		KYCStatus:          req.KYCStatus,
		CreatedAt:          s.now().UTC(),
	}
	if err := account.Validate(s.catalog); err != nil {
		s.LogError(ctx, err, "Invalid account registration", slog.String("account_id", accountID))
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	s.LogInfo(ctx, "Account registered",
		slog.String("account_id", accountID),
		slog.String("role", string(account.Role)),
		slog.String("registered_by", caller.AccountID))
	return &account, nil
}

func (s *registryService) SetVerified(ctx context.Context, caller domain.Caller, accountID string, verified bool) (*domain.Account, error) {
	if err := s.RequireAdmin(ctx, caller, "set verification"); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.UpdateVerification(ctx, accountID, verified)
	if err != nil {
		s.LogError(ctx, err, "Failed to update verification", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account verification updated",
		slog.String("account_id", accountID),
		slog.Bool("verified", verified),
		slog.String("updated_by", caller.AccountID))
	return account, nil
}

func (s *registryService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *registryService) ListAccounts(ctx context.Context, role *domain.Role) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, role)
}

func (s *registryService) ListCategories(ctx context.Context) []domain.Category {
	return s.catalog.List()
}

func (s *registryService) Catalog() *domain.Catalog {
	return s.catalog
}
