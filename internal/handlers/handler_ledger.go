package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger/internal/dto"
	"github.com/SscSPs/relief_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles transfers, allocations and the transaction log.
type ledgerHandler struct {
	ledgerService   portssvc.LedgerSvcFacade
	registryService portssvc.RegistryReaderSvc
	catalog         *domain.Catalog
	settlementDelay time.Duration
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade, rs portssvc.RegistryReaderSvc, settlementDelay time.Duration) *ledgerHandler {
	return &ledgerHandler{
		ledgerService:   ls,
		registryService: rs,
		catalog:         rs.Catalog(),
		settlementDelay: settlementDelay,
	}
}

// registerLedgerRoutes registers the engine routes. Mutating routes go
// through the rate limiter.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade, rs portssvc.RegistryReaderSvc, settlementDelay time.Duration, limit gin.HandlerFunc) {
	h := newLedgerHandler(ls, rs, settlementDelay)

	rg.POST("/transfers", limit, h.createTransfer)
	rg.POST("/allocations", limit, h.createAllocation)
	rg.GET("/transactions", h.listTransactions)
}

// createTransfer godoc
// @Summary Submit a transfer
// @Description Moves funds from the caller's account to the receiver. Business-rule rejections are recorded and returned with status FAILED.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransactionResponse "Recorded attempt, SUCCESS or FAILED"
// @Failure 400 {object} ErrorResponse "Invalid input, amount or category"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Ledger integrity error"
// @Failure 503 {object} ErrorResponse "Request ended before settlement"
// @Security BearerAuth
// @Router /transfers [post]
func (h *ledgerHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := resolveCaller(c, h.registryService)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !requireKnownCategory(c, h.catalog, req.CategoryID) {
		return
	}

	logger = logger.With(
		slog.String("receiver_id", req.ReceiverID),
		slog.String("category_id", req.CategoryID),
	)
	logger.Info("Received transfer request", slog.String("amount", req.Amount.String()))

	if err := waitForSettlement(c.Request.Context(), h.settlementDelay); err != nil {
		logger.Warn("Request ended before settlement", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Request cancelled before submission"})
		return
	}

	rec, err := h.ledgerService.Transfer(c.Request.Context(), caller, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit transfer")
		return
	}

	logger.Info("Transfer recorded",
		slog.String("transaction_id", rec.TransactionID),
		slog.String("status", string(rec.Status)))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(rec))
}

// createAllocation godoc
// @Summary Allocate relief funds
// @Description Credits relief funds to an account in one category. Administrators only.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   allocation body dto.AllocationRequest true "Allocation details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input, amount or category"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Caller is not an administrator"
// @Failure 404 {object} ErrorResponse "Target account not found"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 503 {object} ErrorResponse "Request ended before settlement"
// @Security BearerAuth
// @Router /allocations [post]
func (h *ledgerHandler) createAllocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := resolveCaller(c, h.registryService)
	if !ok {
		return
	}

	var req dto.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Allocate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !requireKnownCategory(c, h.catalog, req.CategoryID) {
		return
	}

	logger = logger.With(slog.String("beneficiary_id", req.BeneficiaryID), slog.String("category_id", req.CategoryID))

	if err := waitForSettlement(c.Request.Context(), h.settlementDelay); err != nil {
		logger.Warn("Request ended before settlement", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Request cancelled before submission"})
		return
	}

	rec, err := h.ledgerService.Allocate(c.Request.Context(), caller, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to allocate funds")
		return
	}

	logger.Info("Allocation recorded", slog.String("transaction_id", rec.TransactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(rec))
}

// listTransactions godoc
// @Summary List transaction records
// @Description Pages through the transaction log in append order.
// @Tags ledger
// @Produce  json
// @Param   accountID query string false "Only records sent or received by this account"
// @Param   status query string false "SUCCESS or FAILED"
// @Param   categoryID query string false "Only records in this category"
// @Param   limit query int false "Page size" default(20) minimum(1) maximum(100)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters or token"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if !requireKnownCategory(c, h.catalog, params.CategoryID) {
		return
	}

	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}
