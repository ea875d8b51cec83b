package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Liveness probe
// @Description Reports that the server is up.
// @Tags root
// @Accept */*
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// registerHomeRoutes registers the unauthenticated status routes.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/health", getHealth)
}
