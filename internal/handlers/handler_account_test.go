package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/relief_ledger/internal/apperrors"
	"github.com/SscSPs/relief_ledger/internal/core/domain"
	"github.com/SscSPs/relief_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var adminCaller = domain.Caller{AccountID: "admin_1", Role: domain.RoleAdmin}

func (suite *HandlerTestSuite) TestListAccounts_RoleFilter() {
	merchants := []domain.Account{
		{AccountID: "merch_1", Name: "Central Pharmacy", Role: domain.RoleMerchant, AuthorizedCategory: domain.CategoryMedical},
	}
	suite.mockRegistry.On("ListAccounts", mock.Anything, mock.MatchedBy(func(role *domain.Role) bool {
		return role != nil && *role == domain.RoleMerchant
	})).Return(merchants, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts?role=MERCHANT", "ben_1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Accounts, 1)
	suite.Equal(domain.CategoryMedical, resp.Accounts[0].AuthorizedCategory)
}

func (suite *HandlerTestSuite) TestListAccounts_InvalidRole() {
	w := suite.do(http.MethodGet, "/api/v1/accounts?role=AUDITOR", "ben_1", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRegistry.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRegisterAccount() {
	created := &domain.Account{AccountID: "merch_5", Name: "Water Point", Role: domain.RoleMerchant, AuthorizedCategory: domain.CategoryFood}
	suite.mockRegistry.On("RegisterAccount", mock.Anything, adminCaller, mock.MatchedBy(func(req dto.RegisterAccountRequest) bool {
		return req.AccountID == "merch_5" && req.Role == domain.RoleMerchant
	})).Return(created, nil).Once()
	suite.mockRegistry.On("RegisterAccount", mock.Anything, adminCaller, mock.MatchedBy(func(req dto.RegisterAccountRequest) bool {
		return req.AccountID == "ben_1"
	})).Return(nil, fmt.Errorf("%w: ben_1", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", "admin_1", map[string]any{
		"accountID": "merch_5", "name": "Water Point", "role": "MERCHANT", "authorizedCategory": domain.CategoryFood,
	})
	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.Equal("merch_5", resp.AccountID)

	w = suite.do(http.MethodPost, "/api/v1/accounts", "admin_1", map[string]any{
		"accountID": "ben_1", "name": "Maria Garcia", "role": "BENEFICIARY",
	})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/accounts", "admin_1", map[string]any{"name": "X", "role": "AUDITOR"})
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockRegistry.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRegisterAccount_Forbidden() {
	suite.mockRegistry.On("RegisterAccount", mock.Anything, ben1Caller, mock.Anything).
		Return(nil, fmt.Errorf("%w: register account requires role ADMIN", apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", "ben_1", map[string]any{"name": "X", "role": "DONOR"})
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccount() {
	w := suite.do(http.MethodGet, "/api/v1/accounts/ben_1", "admin_1", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.Equal("Maria Garcia", resp.Name)

	w = suite.do(http.MethodGet, "/api/v1/accounts/ghost", "admin_1", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateVerification() {
	verified := &domain.Account{AccountID: "merch_4", Role: domain.RoleMerchant, AuthorizedCategory: domain.CategoryGeneral, Verified: true}
	suite.mockRegistry.On("SetVerified", mock.Anything, adminCaller, "merch_4", true).Return(verified, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/accounts/merch_4/verification", "admin_1", map[string]any{"verified": true})
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.True(resp.Verified)

	// verified is required, an empty body must not be read as false
	w = suite.do(http.MethodPut, "/api/v1/accounts/merch_4/verification", "admin_1", map[string]any{})
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockRegistry.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetAllBalances_CatalogOrder() {
	suite.mockLedger.On("GetAllBalances", mock.Anything, "ben_1").Return(map[string]decimal.Decimal{
		domain.CategoryGeneral: decimal.NewFromInt(10),
		domain.CategoryFood:    decimal.NewFromInt(150),
		domain.CategoryMedical: decimal.NewFromInt(50),
		domain.CategoryShelter: decimal.Zero,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/ben_1/balances", "ben_1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalancesResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Balances, 4)
	suite.Equal(domain.CategoryFood, resp.Balances[0].CategoryID)
	suite.True(decimal.NewFromInt(150).Equal(resp.Balances[0].Balance))
	suite.Equal(domain.CategoryGeneral, resp.Balances[3].CategoryID)
}

func (suite *HandlerTestSuite) TestGetBalance() {
	suite.mockLedger.On("GetBalance", mock.Anything, "ben_1", domain.CategoryMedical).Return(decimal.NewFromInt(50), nil).Once()
	suite.mockLedger.On("GetBalance", mock.Anything, "ben_1", "cat_fuel").
		Return(decimal.Zero, fmt.Errorf("%w: unknown category 'cat_fuel'", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/ben_1/balances/cat_med", "ben_1", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.decode(w, &resp)
	suite.True(decimal.NewFromInt(50).Equal(resp.Balance))

	w = suite.do(http.MethodGet, "/api/v1/accounts/ben_1/balances/cat_fuel", "ben_1", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListCategories() {
	suite.mockRegistry.On("ListCategories", mock.Anything).Return(domain.DefaultCatalog().List()).Once()

	w := suite.do(http.MethodGet, "/api/v1/categories", "ben_1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CategoryResponse
	suite.decode(w, &resp)
	suite.Len(resp, 4)
	suite.True(resp[3].IsUnrestricted)
}

func (suite *HandlerTestSuite) TestGetSummary() {
	suite.mockReporting.On("GetSummary", mock.Anything, adminCaller).Return(&domain.LedgerSummary{
		TotalAllocated: decimal.NewFromInt(1000),
		Allocations:    3,
	}, nil).Once()
	suite.mockReporting.On("GetSummary", mock.Anything, ben1Caller).
		Return(nil, fmt.Errorf("%w: view summary requires role ADMIN", apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/summary", "admin_1", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LedgerSummaryResponse
	suite.decode(w, &resp)
	suite.Equal(3, resp.Allocations)

	w = suite.do(http.MethodGet, "/api/v1/reports/summary", "ben_1", nil)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockReporting.AssertExpectations(suite.T())
}
