package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger/internal/dto"
	"github.com/SscSPs/relief_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler issues development tokens. Real deployments authenticate
// through an external identity provider that signs with the same secret.
type AuthHandler struct {
	registryService portssvc.RegistryReaderSvc
	tokenService    portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(rs portssvc.RegistryReaderSvc, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		registryService: rs,
		tokenService:    ts,
	}
}

// registerAuthRoutes sets up the public token route.
func registerAuthRoutes(r *gin.Engine, rs portssvc.RegistryReaderSvc, ts portssvc.TokenSvcFacade) {
	h := NewAuthHandler(rs, ts)

	// 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/token", limitMiddleware, h.IssueDevToken)
	}
}

// IssueDevToken godoc
// @Summary Issue a development token
// @Description Returns a JWT acting as an existing account. Disabled in production.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.DevTokenRequest true "Account to act as"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) IssueDevToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DevTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for dev token", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.registryService.GetAccount(c.Request.Context(), req.AccountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to issue token")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), account)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue token"})
		return
	}

	logger.Info("Development token issued", slog.String("account_id", account.AccountID), slog.String("role", string(account.Role)))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
