package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/dto"
	"github.com/jsamuelsen/rashi-tree-guide/internal/app"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

// RashiHandler serves the browse flow: the rashi catalog and its trees.
type RashiHandler struct {
	catalog *app.CatalogService
}

// NewRashiHandler creates a new rashi handler.
func NewRashiHandler(catalog *app.CatalogService) *RashiHandler {
	return &RashiHandler{catalog: catalog}
}

// ListRashis handles GET /api/v1/rashis
// Returns all twelve rashis in zodiac order.
//
// @Summary List rashis
// @Tags rashis
// @Produce json
// @Success 200 {object} dto.RashiListResponse
// @Router /api/v1/rashis [get]
func (h *RashiHandler) ListRashis(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewRashiListResponse(h.catalog.ListRashis(c.Request.Context())))
}

// GetRashi handles GET /api/v1/rashis/:key
// A key outside the twelve rashi keys answers 404 without a catalog lookup.
//
// @Summary Get a rashi by key
// @Tags rashis
// @Produce json
// @Param key path string true "Rashi key, e.g. KARKA"
// @Success 200 {object} dto.RashiResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/rashis/{key} [get]
func (h *RashiHandler) GetRashi(c *gin.Context) {
	var uri dto.RashiKeyURI
	if err := dto.BindURIAndValidate(c, &uri); err != nil {
		dto.HandleError(c, domain.NewNotFoundError("rashi", c.Param("key")))
		return
	}

	rashi, err := h.catalog.GetRashi(c.Request.Context(), uri.RashiKey())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRashiResponse(rashi))
}

// GetTreesByRashi handles GET /api/v1/rashis/:key/trees
// An unknown key is not an error: it answers 200 with no trees and the key
// itself as the label.
//
// @Summary Trees recommended for a rashi
// @Tags rashis
// @Produce json
// @Param key path string true "Rashi key"
// @Success 200 {object} dto.TreesByRashiResponse
// @Router /api/v1/rashis/{key}/trees [get]
func (h *RashiHandler) GetTreesByRashi(c *gin.Context) {
	trees := h.catalog.TreesByRashi(c.Request.Context(), domain.RashiKey(c.Param("key")))
	c.JSON(http.StatusOK, dto.NewTreesByRashiResponse(trees))
}

// GetTree handles GET /api/v1/trees/:id
//
// @Summary Get a tree by id
// @Tags trees
// @Produce json
// @Param id path string true "Tree id, e.g. neem"
// @Success 200 {object} dto.TreeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/trees/{id} [get]
func (h *RashiHandler) GetTree(c *gin.Context) {
	tree, err := h.catalog.GetTree(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTreeResponse(tree))
}

// RegisterRashiRoutes registers catalog routes on the given router group.
func (h *RashiHandler) RegisterRashiRoutes(rg *gin.RouterGroup) {
	rashis := rg.Group("/rashis")
	rashis.GET("", h.ListRashis)
	rashis.GET("/:key", h.GetRashi)
	rashis.GET("/:key/trees", h.GetTreesByRashi)

	rg.GET("/trees/:id", h.GetTree)
}
