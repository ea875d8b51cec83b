package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/SscSPs/relief_ledger/internal/apperrors"
	"github.com/SscSPs/relief_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger/internal/dto"
	"github.com/SscSPs/relief_ledger/internal/utils"
	"github.com/SscSPs/relief_ledger/internal/utils/accounting"
	"github.com/SscSPs/relief_ledger/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount          = accounting.ErrInvalidAmount
	ErrUnknownCategory        = fmt.Errorf("%w: unknown category", apperrors.ErrValidation)
	ErrAccountNotFound        = fmt.Errorf("%w: account not found", apperrors.ErrNotFound)
	ErrUnauthorizedAllocation = fmt.Errorf("%w: only administrators may allocate relief funds", apperrors.ErrForbidden)
)

// ledgerService is the transaction engine. It is the only writer of the
// balance store and the transaction log.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	balanceRepo portsrepo.BalanceStoreFacade
	logRepo     portsrepo.TransactionLogFacade
	catalog     *domain.Catalog

	locks    *accountLocks
	observer portssvc.LedgerObserver
	now      func() time.Time
	newHash  func() (string, error)
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithRecorder reports every recorded attempt to the observer.
func WithRecorder(observer portssvc.LedgerObserver) LedgerServiceOption {
	return func(s *ledgerService) {
		s.observer = observer
	}
}

// WithClock overrides the source of record timestamps.
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new transaction engine over the given stores.
func NewLedgerService(
	accountRepo portsrepo.AccountReader,
	balanceRepo portsrepo.BalanceStoreFacade,
	logRepo portsrepo.TransactionLogFacade,
	catalog *domain.Catalog,
	options ...LedgerServiceOption,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		accountRepo: accountRepo,
		balanceRepo: balanceRepo,
		logRepo:     logRepo,
		catalog:     catalog,
		locks:       newAccountLocks(),
		now:         time.Now,
		newHash:     utils.GenerateDisplayHash,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Transfer validates and applies a transfer from the caller's account.
// Rules are checked in order and the first failure is recorded:
// funds, then (for beneficiaries) receiver is a merchant, category
// authorization and merchant verification.
func (s *ledgerService) Transfer(ctx context.Context, caller domain.Caller, req dto.TransferRequest) (*domain.TransactionRecord, error) {
	start := time.Now()
	// Once validation starts the attempt runs to completion.
	ctx = context.WithoutCancel(ctx)

	if err := s.checkPreconditions(caller, req.Amount, req.CategoryID); err != nil {
		s.LogError(ctx, err, "Rejected malformed transfer",
			slog.String("sender_id", caller.AccountID),
			slog.String("receiver_id", req.ReceiverID))
		return nil, err
	}

	// Accounts are never deleted, so both lookups stay valid once the
	// locks are held. Only registered accounts ever get a lock entry.
	if _, err := s.findAccount(ctx, caller.AccountID); err != nil {
		s.LogError(ctx, err, "Transfer sender not found", slog.String("sender_id", caller.AccountID))
		return nil, err
	}
	receiver, err := s.findReceiver(ctx, req.ReceiverID)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up transfer receiver", slog.String("receiver_id", req.ReceiverID))
		return nil, err
	}

	lockIDs := []string{caller.AccountID}
	if receiver != nil {
		lockIDs = append(lockIDs, receiver.AccountID)
	}
	unlock := s.locks.lock(lockIDs...)
	defer unlock()

	reason := s.checkTransferRules(ctx, caller, req, receiver)

	rec, err := s.newRecord(caller.AccountID, req.ReceiverID, req.Amount, req.CategoryID)
	if err != nil {
		return nil, err
	}

	if reason != "" {
		rec.Status = domain.StatusFailed
		rec.Reason = reason
		stored, err := s.appendRecord(ctx, rec)
		if err != nil {
			return nil, err
		}
		s.LogInfo(ctx, "Transfer rejected",
			slog.String("transaction_id", stored.TransactionID),
			slog.String("sender_id", caller.AccountID),
			slog.String("receiver_id", req.ReceiverID),
			slog.String("reason", reason))
		s.observe(portssvc.OperationTransfer, stored, start)
		return &stored, nil
	}

	// Merchants always receive liquid, unrestricted funds.
	deltas := accounting.TransferDeltas(
		caller.AccountID, req.CategoryID,
		req.ReceiverID, s.catalog.Unrestricted().CategoryID,
		req.Amount,
	)
	rec.Status = domain.StatusSuccess
	rec.Reason = domain.ReasonTransferVerified

	stored, err := s.applyAndRecord(ctx, rec, deltas)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Transfer applied",
		slog.String("transaction_id", stored.TransactionID),
		slog.Uint64("sequence", stored.Sequence),
		slog.String("sender_id", caller.AccountID),
		slog.String("receiver_id", req.ReceiverID),
		slog.String("amount", req.Amount.String()),
		slog.String("category_id", req.CategoryID))
	s.observe(portssvc.OperationTransfer, stored, start)
	return &stored, nil
}

// Allocate credits relief funds to an account in the requested category.
// No funds or counterparty checks apply.
func (s *ledgerService) Allocate(ctx context.Context, caller domain.Caller, req dto.AllocationRequest) (*domain.TransactionRecord, error) {
	start := time.Now()
	ctx = context.WithoutCancel(ctx)

	if !caller.Role.CanAllocate() {
		err := fmt.Errorf("%w: caller %s is %s", ErrUnauthorizedAllocation, caller.AccountID, caller.Role)
		s.LogError(ctx, err, "Caller not authorized to allocate", slog.String("caller_id", caller.AccountID))
		return nil, err
	}
	if err := s.checkPreconditions(caller, req.Amount, req.CategoryID); err != nil {
		s.LogError(ctx, err, "Rejected malformed allocation", slog.String("beneficiary_id", req.BeneficiaryID))
		return nil, err
	}

	if _, err := s.findAccount(ctx, req.BeneficiaryID); err != nil {
		s.LogError(ctx, err, "Allocation target not found", slog.String("beneficiary_id", req.BeneficiaryID))
		return nil, err
	}

	unlock := s.locks.lock(req.BeneficiaryID)
	defer unlock()

	rec, err := s.newRecord(caller.AccountID, req.BeneficiaryID, req.Amount, req.CategoryID)
	if err != nil {
		return nil, err
	}
	rec.Status = domain.StatusSuccess
	rec.Reason = domain.ReasonReliefAllocation

	deltas := []portsrepo.BalanceDelta{
		{AccountID: req.BeneficiaryID, CategoryID: req.CategoryID, Delta: req.Amount},
	}
	stored, err := s.applyAndRecord(ctx, rec, deltas)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Relief allocated",
		slog.String("transaction_id", stored.TransactionID),
		slog.Uint64("sequence", stored.Sequence),
		slog.String("beneficiary_id", req.BeneficiaryID),
		slog.String("amount", req.Amount.String()),
		slog.String("category_id", req.CategoryID))
	s.observe(portssvc.OperationAllocate, stored, start)
	return &stored, nil
}

// GetBalance returns the account's balance in one category.
func (s *ledgerService) GetBalance(ctx context.Context, accountID string, categoryID string) (decimal.Decimal, error) {
	if !s.catalog.Contains(categoryID) {
		return decimal.Zero, fmt.Errorf("%w '%s'", ErrUnknownCategory, categoryID)
	}
	if _, err := s.findAccount(ctx, accountID); err != nil {
		return decimal.Zero, err
	}
	return s.balanceRepo.GetBalance(ctx, accountID, categoryID), nil
}

// GetAllBalances returns the account's balance in every catalog category.
func (s *ledgerService) GetAllBalances(ctx context.Context, accountID string) (map[string]decimal.Decimal, error) {
	if _, err := s.findAccount(ctx, accountID); err != nil {
		return nil, err
	}
	stored := s.balanceRepo.GetAllBalances(ctx, accountID)
	balances := make(map[string]decimal.Decimal, len(s.catalog.IDs()))
	for _, categoryID := range s.catalog.IDs() {
		balances[categoryID] = stored[categoryID]
	}
	return balances, nil
}

// QueryLog returns the matching records in append order.
func (s *ledgerService) QueryLog(ctx context.Context, filter domain.LogFilter) iter.Seq[domain.TransactionRecord] {
	return s.logRepo.Query(ctx, filter)
}

// ListTransactions returns one page of the transaction log.
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	afterSequence, err := pagination.DecodeSequenceToken(params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filter := domain.LogFilter{
		AccountID:     params.AccountID,
		Status:        domain.TransactionStatus(params.Status),
		CategoryID:    params.CategoryID,
		AfterSequence: afterSequence,
	}

	// Fetch one extra record to learn whether another page exists.
	page := make([]domain.TransactionRecord, 0, limit)
	hasMore := false
	for rec := range s.logRepo.Query(ctx, filter) {
		if len(page) == limit {
			hasMore = true
			break
		}
		page = append(page, rec)
	}

	resp := &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(page),
	}
	if hasMore {
		token := pagination.EncodeSequenceToken(page[len(page)-1].Sequence)
		resp.NextToken = &token
	}

	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(page)), slog.Bool("has_more", hasMore))
	return resp, nil
}

// checkPreconditions covers the caller errors that never produce a record.
func (s *ledgerService) checkPreconditions(caller domain.Caller, amount decimal.Decimal, categoryID string) error {
	if !caller.Role.IsValid() {
		return fmt.Errorf("%w: unknown caller role '%s'", apperrors.ErrValidation, caller.Role)
	}
	if err := accounting.RequirePositive(amount); err != nil {
		return err
	}
	if !s.catalog.Contains(categoryID) {
		return fmt.Errorf("%w '%s'", ErrUnknownCategory, categoryID)
	}
	return nil
}

// checkTransferRules returns the reason of the first failing business rule,
// or "" if the transfer may be applied. receiver is nil when the receiver
// is not registered.
func (s *ledgerService) checkTransferRules(ctx context.Context, caller domain.Caller, req dto.TransferRequest, receiver *domain.Account) string {
	if s.balanceRepo.GetBalance(ctx, caller.AccountID, req.CategoryID).LessThan(req.Amount) {
		return domain.ReasonInsufficientFunds
	}
	if receiver == nil {
		return domain.ReasonInvalidReceiver
	}

	if !caller.Role.IsRestrictedSpender() {
		return ""
	}
	if !receiver.IsMerchant() {
		return domain.ReasonInvalidReceiver
	}
	if !s.catalog.IsUnrestricted(req.CategoryID) && receiver.AuthorizedCategory != req.CategoryID {
		return domain.ReasonCategoryMismatch(receiver.AuthorizedCategory)
	}
	if !receiver.Verified {
		return domain.ReasonMerchantNotVerified
	}
	return ""
}

// applyAndRecord mutates the balances and appends the record as one unit.
// If the append fails the deltas are reversed; the caller holds the account
// locks, so nobody can observe or spend the intermediate state.
func (s *ledgerService) applyAndRecord(ctx context.Context, rec domain.TransactionRecord, deltas []portsrepo.BalanceDelta) (domain.TransactionRecord, error) {
	if err := s.balanceRepo.ApplyDeltas(ctx, deltas...); err != nil {
		s.LogError(ctx, err, "Balance store rejected validated mutation",
			slog.String("transaction_id", rec.TransactionID))
		return domain.TransactionRecord{}, fmt.Errorf("failed to apply transaction %s: %w", rec.TransactionID, err)
	}

	stored, err := s.appendRecord(ctx, rec)
	if err != nil {
		if rerr := s.balanceRepo.ApplyDeltas(ctx, accounting.ReverseDeltas(deltas)...); rerr != nil {
			s.LogError(ctx, rerr, "Failed to reverse balances after log failure",
				slog.String("transaction_id", rec.TransactionID))
			return domain.TransactionRecord{}, errors.Join(err, rerr)
		}
		return domain.TransactionRecord{}, err
	}
	return stored, nil
}

func (s *ledgerService) appendRecord(ctx context.Context, rec domain.TransactionRecord) (domain.TransactionRecord, error) {
	stored, err := s.logRepo.Append(ctx, rec)
	if err != nil {
		s.LogError(ctx, err, "Failed to append transaction record",
			slog.String("transaction_id", rec.TransactionID))
		return domain.TransactionRecord{}, fmt.Errorf("%w: failed to record transaction %s: %w",
			apperrors.ErrIntegrity, rec.TransactionID, err)
	}
	return stored, nil
}

func (s *ledgerService) newRecord(from, to string, amount decimal.Decimal, categoryID string) (domain.TransactionRecord, error) {
	hash, err := s.newHash()
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("failed to generate transaction hash: %w", err)
	}
	return domain.TransactionRecord{
		TransactionID: uuid.NewString(),
		Hash:          hash,
		Timestamp:     s.now().UTC(),
		FromAccountID: from,
		ToAccountID:   to,
		Amount:        amount,
		CategoryID:    categoryID,
	}, nil
}

func (s *ledgerService) findAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return acc, nil
}

// findReceiver returns nil, nil for an unregistered receiver.
func (s *ledgerService) findReceiver(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up receiver %s: %w", accountID, err)
	}
	return acc, nil
}

func (s *ledgerService) observe(operation string, rec domain.TransactionRecord, start time.Time) {
	if s.observer != nil {
		s.observer.ObserveLedgerOutcome(operation, rec, time.Since(start))
	}
}
