package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/dto"
	"github.com/jsamuelsen/rashi-tree-guide/internal/app"
)

// OperatorHandler exposes maintenance views of the service.
type OperatorHandler struct {
	catalog *app.CatalogService
}

// NewOperatorHandler creates a new operator handler.
func NewOperatorHandler(catalog *app.CatalogService) *OperatorHandler {
	return &OperatorHandler{catalog: catalog}
}

// CatalogReport handles GET /api/v1/operator/catalog
//
// @Summary Catalog integrity report
// @Tags operator
// @Produce json
// @Success 200 {object} dto.CatalogReportResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/v1/operator/catalog [get]
func (h *OperatorHandler) CatalogReport(c *gin.Context) {
	report := h.catalog.IntegrityReport(c.Request.Context())
	c.JSON(http.StatusOK, dto.NewCatalogReportResponse(report))
}

// RegisterOperatorRoutes registers operator routes. The caller applies any
// auth middleware to rg.
func (h *OperatorHandler) RegisterOperatorRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", h.CatalogReport)
}
