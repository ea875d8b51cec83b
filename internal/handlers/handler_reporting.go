package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger/internal/dto"
	"github.com/SscSPs/relief_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the administrative overview
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	registryService  portssvc.RegistryReaderSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvc, reg portssvc.RegistryReaderSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		registryService:  reg,
	}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvc, reg portssvc.RegistryReaderSvc) {
	h := newReportingHandler(rs, reg)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/summary", h.getSummary)
	}
}

// getSummary godoc
// @Summary Ledger summary
// @Description Per-category totals, allocation and transfer counts. Administrators only.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.LedgerSummaryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Caller is not an administrator"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := resolveCaller(c, h.registryService)
	if !ok {
		return
	}

	summary, err := h.reportingService.GetSummary(c.Request.Context(), caller)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}

	logger.Info("Summary generated",
		slog.Int("allocations", summary.Allocations),
		slog.Int("failed_transfers", summary.FailedTransfers))
	c.JSON(http.StatusOK, dto.ToLedgerSummaryResponse(summary))
}
