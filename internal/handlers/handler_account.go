package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger/internal/dto"
	"github.com/SscSPs/relief_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts and their balances.
type accountHandler struct {
	registryService portssvc.RegistrySvcFacade
	ledgerService   portssvc.LedgerReaderSvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(rs portssvc.RegistrySvcFacade, ls portssvc.LedgerReaderSvc) *accountHandler {
	return &accountHandler{
		registryService: rs,
		ledgerService:   ls,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, rs portssvc.RegistrySvcFacade, ls portssvc.LedgerReaderSvc) {
	h := newAccountHandler(rs, ls)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.registerAccount)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PUT("/:accountID/verification", h.updateVerification)
		accounts.GET("/:accountID/balances", h.getAllBalances)
		accounts.GET("/:accountID/balances/:categoryID", h.getBalance)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists registered accounts in registration order, optionally filtered by role
// @Tags accounts
// @Produce  json
// @Param   role query string false "ADMIN, DONOR, BENEFICIARY or MERCHANT"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} ErrorResponse "Unknown role"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var role *domain.Role
	if params.Role != "" {
		r := domain.Role(params.Role)
		role = &r
	}

	accounts, err := h.registryService.ListAccounts(c.Request.Context(), role)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// registerAccount godoc
// @Summary Register an account
// @Description Registers a new participant. Administrators only.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.RegisterAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Caller is not an administrator"
// @Failure 409 {object} ErrorResponse "Account ID already registered"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) registerAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := resolveCaller(c, h.registryService)
	if !ok {
		return
	}

	var req dto.RegisterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !requireKnownCategory(c, h.registryService.Catalog(), req.AuthorizedCategory) {
		return
	}

	logger.Info("Received request to register account", slog.String("account_name", req.Name), slog.String("role", string(req.Role)))

	account, err := h.registryService.RegisterAccount(c.Request.Context(), caller, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register account")
		return
	}

	logger.Info("Account registered successfully", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", c.Param("accountID")))

	account, err := h.registryService.GetAccount(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateVerification godoc
// @Summary Set an account's verified flag
// @Description Verifies or un-verifies a participant. Administrators only.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   verification body dto.UpdateVerificationRequest true "New verification state"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Caller is not an administrator"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/verification [put]
func (h *accountHandler) updateVerification(c *gin.Context) {
	accountID := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", accountID))

	caller, ok := resolveCaller(c, h.registryService)
	if !ok {
		return
	}

	var req dto.UpdateVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateVerification", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.registryService.SetVerified(c.Request.Context(), caller, accountID, *req.Verified)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update verification")
		return
	}

	logger.Info("Verification updated", slog.Bool("verified", account.Verified))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAllBalances godoc
// @Summary Get all balances of an account
// @Description Returns the balance in every category, zero-filled
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.AccountBalancesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/balances [get]
func (h *accountHandler) getAllBalances(c *gin.Context) {
	accountID := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", accountID))

	balances, err := h.ledgerService.GetAllBalances(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve balances")
		return
	}

	// Catalog order keeps the response stable.
	resp := dto.AccountBalancesResponse{AccountID: accountID}
	for _, categoryID := range h.registryService.Catalog().IDs() {
		resp.Balances = append(resp.Balances, dto.BalanceResponse{
			AccountID:  accountID,
			CategoryID: categoryID,
			Balance:    balances[categoryID],
		})
	}
	c.JSON(http.StatusOK, resp)
}

// getBalance godoc
// @Summary Get an account's balance in one category
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   categoryID path string true "Category ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse "Unknown category"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/balances/{categoryID} [get]
func (h *accountHandler) getBalance(c *gin.Context) {
	accountID := c.Param("accountID")
	categoryID := c.Param("categoryID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("target_account_id", accountID),
		slog.String("category_id", categoryID),
	)

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), accountID, categoryID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, CategoryID: categoryID, Balance: balance})
}
