package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	registryService portssvc.RegistryReaderSvc
}

func registerCategoryRoutes(rg *gin.RouterGroup, rs portssvc.RegistryReaderSvc) {
	h := &categoryHandler{registryService: rs}
	rg.GET("/categories", h.listCategories)
}

// listCategories godoc
// @Summary List fund categories
// @Description Lists the fixed category catalog in display order
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCategoryResponses(h.registryService.ListCategories(c.Request.Context())))
}
