package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/dto"
	"github.com/jsamuelsen/rashi-tree-guide/internal/app"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/logging"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/telemetry"
)

// ComputeHandler serves moon sign computation.
type ComputeHandler struct {
	service *app.RashiService
}

// NewComputeHandler creates a new compute handler.
func NewComputeHandler(service *app.RashiService) *ComputeHandler {
	return &ComputeHandler{service: service}
}

// Compute handles POST /api/v1/rashi/compute
// The body is the canonical birth request; either place or a coordinate
// pair is required.
//
// @Summary Compute a rashi
// @Tags compute
// @Accept json
// @Produce json
// @Param request body dto.ComputeRequest true "Birth details"
// @Success 200 {object} dto.ComputeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/rashi/compute [post]
func (h *ComputeHandler) Compute(c *gin.Context) {
	var req dto.ComputeRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	result, err := h.service.Compute(c.Request.Context(), req.ToDomain())
	telemetry.ObserveCompute(app.Outcome(err))

	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.respond(c, dto.NewComputeResponse(result))
}

// ComputeForm handles POST /api/v1/rashi/compute/form
// The body carries the kiosk form tokens (12-hour clock, DMS coordinates),
// which are normalized before computing.
//
// @Summary Compute a rashi from kiosk form input
// @Tags compute
// @Accept json
// @Produce json
// @Param request body dto.ComputeFormRequest true "Form tokens"
// @Success 200 {object} dto.ComputeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/rashi/compute/form [post]
func (h *ComputeHandler) ComputeForm(c *gin.Context) {
	var req dto.ComputeFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.HandleBindError(c, fmt.Errorf("%w: %w", dto.ErrBinding, err))
		return
	}

	if err := dto.ValidateAll(&req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	result, err := h.service.ComputeForm(c.Request.Context(), req.ToDomain())
	telemetry.ObserveCompute(app.Outcome(err))

	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.respond(c, dto.NewComputeResponse(result))
}

func (h *ComputeHandler) respond(c *gin.Context, resp dto.ComputeResponse) {
	logging.FromContext(c.Request.Context()).Info("rashi computed",
		slog.String("rashi", resp.RashiKey),
		slog.String("confidence", resp.Confidence),
	)

	c.JSON(http.StatusOK, resp)
}

// RegisterComputeRoutes registers compute routes on the given router group.
func (h *ComputeHandler) RegisterComputeRoutes(rg *gin.RouterGroup) {
	compute := rg.Group("/rashi/compute")
	compute.POST("", h.Compute)
	compute.POST("/form", h.ComputeForm)
}
