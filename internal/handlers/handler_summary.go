package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/priceworks/price_calculator_app/internal/core/ports/services"
	"github.com/priceworks/price_calculator_app/internal/dto"
	"github.com/priceworks/price_calculator_app/internal/middleware"
)

// summaryHandler handles HTTP requests for aggregated totals.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

// newSummaryHandler creates a new summaryHandler.
func newSummaryHandler(ss portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{
		summaryService: ss,
	}
}

// registerSummaryRoutes registers the summary route.
func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newSummaryHandler(summaryService)

	rg.GET("/summary", h.getSummary)
}

// getSummary godoc
// @Summary Get aggregated totals
// @Description Aggregates all items matching the filter into subtotal, tax, total, average margin and per-category totals using the current tax rate
// @Tags summary
// @Produce  json
// @Param   from query string false "Created from (YYYY-MM-DD)"
// @Param   to query string false "Created to (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for GetSummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.summaryService.Summarize(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to compute summary in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
