package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/relief_ledger/internal/apperrors"
	"github.com/SscSPs/relief_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger/internal/dto"
	"github.com/SscSPs/relief_ledger/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var ben1Caller = domain.Caller{AccountID: "ben_1", Role: domain.RoleBeneficiary}

func transferBody(receiverID, amount, categoryID string) map[string]any {
	return map[string]any{"receiverID": receiverID, "amount": amount, "categoryID": categoryID}
}

func (suite *HandlerTestSuite) TestTransfer_Success() {
	rec := &domain.TransactionRecord{
		TransactionID: uuid.NewString(),
		Sequence:      8,
		Hash:          "0xabc",
		Timestamp:     time.Now().UTC(),
		FromAccountID: "ben_1",
		ToAccountID:   "merch_2",
		Amount:        decimal.NewFromInt(100),
		CategoryID:    domain.CategoryFood,
		Status:        domain.StatusSuccess,
		Reason:        domain.ReasonTransferVerified,
	}
	suite.mockLedger.On("Transfer", mock.Anything, ben1Caller, mock.MatchedBy(func(req dto.TransferRequest) bool {
		return req.ReceiverID == "merch_2" && req.CategoryID == domain.CategoryFood && req.Amount.Equal(decimal.NewFromInt(100))
	})).Return(rec, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transfers", "ben_1", transferBody("merch_2", "100", domain.CategoryFood))

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.TransactionResponse
	suite.decode(w, &resp)
	suite.Equal(rec.TransactionID, resp.TransactionID)
	suite.Equal(domain.StatusSuccess, resp.Status)
	suite.True(decimal.NewFromInt(100).Equal(resp.Amount))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestTransfer_RejectionIsOK() {
	rec := &domain.TransactionRecord{
		TransactionID: uuid.NewString(),
		FromAccountID: "ben_1",
		ToAccountID:   "merch_4",
		Amount:        decimal.NewFromInt(10),
		CategoryID:    domain.CategoryGeneral,
		Status:        domain.StatusFailed,
		Reason:        domain.ReasonMerchantNotVerified,
	}
	suite.mockLedger.On("Transfer", mock.Anything, ben1Caller, mock.Anything).Return(rec, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transfers", "ben_1", transferBody("merch_4", "10", domain.CategoryGeneral))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.decode(w, &resp)
	suite.Equal(domain.StatusFailed, resp.Status)
	suite.Equal(domain.ReasonMerchantNotVerified, resp.Reason)
}

func (suite *HandlerTestSuite) TestTransfer_ServiceErrors() {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "non-positive amount", err: fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation), wantCode: http.StatusBadRequest},
		{name: "unknown sender", err: fmt.Errorf("%w: ben_1", apperrors.ErrNotFound), wantCode: http.StatusNotFound},
		{name: "integrity", err: fmt.Errorf("%w: %w", apperrors.ErrIntegrity, apperrors.ErrValidation), wantCode: http.StatusInternalServerError},
		{name: "unexpected", err: fmt.Errorf("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.buildRouter()
			suite.mockLedger.On("Transfer", mock.Anything, ben1Caller, mock.Anything).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/transfers", "ben_1", transferBody("merch_2", "10", domain.CategoryFood))

			suite.Equal(tt.wantCode, w.Code)
			suite.NotEmpty(suite.errorMessage(w))
		})
	}
}

func (suite *HandlerTestSuite) TestTransfer_BindingErrors() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "unknown category", body: transferBody("merch_2", "10", "cat_fuel")},
		{name: "missing receiver", body: map[string]any{"amount": "10", "categoryID": domain.CategoryFood}},
		{name: "malformed amount", body: transferBody("merch_2", "ten", domain.CategoryFood)},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/transfers", "ben_1", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockLedger.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestTransfer_Unauthenticated() {
	w := suite.do(http.MethodPost, "/api/v1/transfers", "", transferBody("merch_2", "10", domain.CategoryFood))
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Authorization header required", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestTransfer_UnknownSubject() {
	w := suite.do(http.MethodPost, "/api/v1/transfers", "ghost", transferBody("merch_2", "10", domain.CategoryFood))
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Unknown account", suite.errorMessage(w))
	suite.mockLedger.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestTransfer_CancelledDuringSettlement() {
	suite.cfg.SettlementDelay = time.Minute
	suite.buildRouter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := suite.doWithContext(ctx, http.MethodPost, "/api/v1/transfers", "ben_1", transferBody("merch_2", "10", domain.CategoryFood))

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestTransfer_RateLimited() {
	suite.cfg.RateLimit = "2-M"
	suite.buildRouter()
	suite.mockLedger.On("Transfer", mock.Anything, ben1Caller, mock.Anything).
		Return(&domain.TransactionRecord{Status: domain.StatusSuccess}, nil).Twice()

	for range 2 {
		w := suite.do(http.MethodPost, "/api/v1/transfers", "ben_1", transferBody("merch_2", "1", domain.CategoryFood))
		suite.Equal(http.StatusOK, w.Code)
	}
	w := suite.do(http.MethodPost, "/api/v1/transfers", "ben_1", transferBody("merch_2", "1", domain.CategoryFood))
	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAllocate() {
	admin := domain.Caller{AccountID: "admin_1", Role: domain.RoleAdmin}
	suite.mockLedger.On("Allocate", mock.Anything, admin, mock.MatchedBy(func(req dto.AllocationRequest) bool {
		return req.BeneficiaryID == "ben_1" && req.CategoryID == domain.CategoryMedical
	})).Return(&domain.TransactionRecord{
		TransactionID: "txn_1",
		FromAccountID: "admin_1",
		ToAccountID:   "ben_1",
		Amount:        decimal.NewFromInt(500),
		CategoryID:    domain.CategoryMedical,
		Status:        domain.StatusSuccess,
		Reason:        domain.ReasonReliefAllocation,
	}, nil).Once()
	suite.mockLedger.On("Allocate", mock.Anything, ben1Caller, mock.Anything).
		Return(nil, fmt.Errorf("%w: only administrators may allocate relief funds", apperrors.ErrForbidden)).Once()

	body := map[string]any{"beneficiaryID": "ben_1", "amount": 500, "categoryID": domain.CategoryMedical}

	w := suite.do(http.MethodPost, "/api/v1/allocations", "admin_1", body)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.decode(w, &resp)
	suite.Equal(domain.ReasonReliefAllocation, resp.Reason)

	w = suite.do(http.MethodPost, "/api/v1/allocations", "ben_1", body)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions() {
	next := "token-2"
	suite.mockLedger.On("ListTransactions", mock.Anything, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Limit == 10 && p.AccountID == "ben_1" && p.Status == "FAILED"
	})).Return(&dto.ListTransactionsResponse{
		Transactions: []dto.TransactionResponse{{TransactionID: "txn_1", Status: domain.StatusFailed}},
		NextToken:    &next,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?accountID=ben_1&status=FAILED&limit=10", "ben_1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Transactions, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions_DefaultLimit() {
	suite.mockLedger.On("ListTransactions", mock.Anything, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Limit == 20
	})).Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions", "ben_1", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions_InvalidQuery() {
	for _, query := range []string{"limit=0", "limit=500", "status=PENDING", "categoryID=cat_fuel"} {
		w := suite.do(http.MethodGet, "/api/v1/transactions?"+query, "ben_1", nil)
		suite.Equal(http.StatusBadRequest, w.Code, query)
	}
	suite.mockLedger.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCategoryCheckUsesEachRoutersCatalog() {
	waterCatalog, err := domain.NewCatalog(
		domain.Category{CategoryID: "cat_water", Label: "Water"},
		domain.Category{CategoryID: domain.CategoryGeneral, Label: "Unrestricted", IsUnrestricted: true},
	)
	suite.Require().NoError(err)

	waterLedger := new(MockLedgerService)
	waterRegistry := new(MockRegistryService)
	waterRegistry.On("Catalog").Return(waterCatalog)
	waterRegistry.On("GetAccount", mock.Anything, "ben_1").Return(ben1Account, nil)
	waterLedger.On("Transfer", mock.Anything, ben1Caller, mock.MatchedBy(func(req dto.TransferRequest) bool {
		return req.CategoryID == "cat_water"
	})).Return(&domain.TransactionRecord{Status: domain.StatusSuccess, CategoryID: "cat_water"}, nil).Once()

	defaultRouter := suite.router
	waterRouter := gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(waterRouter, suite.cfg, &portssvc.ServiceContainer{
		Ledger:    waterLedger,
		Registry:  waterRegistry,
		Reporting: new(MockReportingService),
		Token:     new(MockTokenService),
	}, nil))

	suite.router = waterRouter
	w := suite.do(http.MethodPost, "/api/v1/transfers", "ben_1", transferBody("merch_2", "5", "cat_water"))
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	w = suite.do(http.MethodPost, "/api/v1/transfers", "ben_1", transferBody("merch_2", "5", domain.CategoryFood))
	suite.Equal(http.StatusBadRequest, w.Code)

	// Registering the second router must not change what the first accepts.
	suite.router = defaultRouter
	w = suite.do(http.MethodPost, "/api/v1/transfers", "ben_1", transferBody("merch_2", "5", "cat_water"))
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Unknown category: cat_water", suite.errorMessage(w))

	waterLedger.AssertExpectations(suite.T())
	suite.mockLedger.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything)
}
