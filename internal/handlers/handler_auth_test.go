package handlers_test

import (
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/relief_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestIssueDevToken() {
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.mockToken.On("GenerateAccessToken", mock.Anything, ben1Account).Return("signed.jwt.token", expiresAt, nil).Once()

	w := suite.do(http.MethodPost, "/auth/token", "", map[string]any{"accountID": "ben_1"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.Equal("signed.jwt.token", resp.Token)
	suite.True(expiresAt.Equal(resp.ExpiresAt))
	suite.mockToken.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestIssueDevToken_Errors() {
	w := suite.do(http.MethodPost, "/auth/token", "", map[string]any{"accountID": "ghost"})
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPost, "/auth/token", "", map[string]any{})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockToken.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestIssueDevToken_DisabledInProduction() {
	suite.cfg.IsProduction = true
	suite.buildRouter()

	w := suite.do(http.MethodPost, "/auth/token", "", map[string]any{"accountID": "ben_1"})
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodGet, "/swagger/index.html", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestIssueDevToken_NotServedUnlessEnabled() {
	suite.cfg.EnableDevTokens = false
	suite.buildRouter()

	w := suite.do(http.MethodPost, "/auth/token", "", map[string]any{"accountID": "admin_1"})
	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockToken.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestHealthAndMetrics() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())

	w = suite.do(http.MethodGet, "/metrics", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.True(strings.Contains(w.Body.String(), `relief_http_requests_total{code="200",method="GET",route="/health"} 1`), w.Body.String())
}

func (suite *HandlerTestSuite) TestSwaggerServedOutsideProduction() {
	w := suite.do(http.MethodGet, "/swagger/doc.json", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Relief Ledger API")
}
