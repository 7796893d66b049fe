package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
	portssvc "github.com/priceworks/price_calculator_app/internal/core/ports/services"
	"github.com/priceworks/price_calculator_app/internal/dto"
	"github.com/priceworks/price_calculator_app/internal/export"
	"github.com/priceworks/price_calculator_app/internal/middleware"
)

// exportHandler streams item exports in downloadable formats.
type exportHandler struct {
	itemService portssvc.ItemReaderSvc
}

// newExportHandler creates a new exportHandler.
func newExportHandler(is portssvc.ItemReaderSvc) *exportHandler {
	return &exportHandler{
		itemService: is,
	}
}

// registerExportRoutes registers routes for item exports.
func registerExportRoutes(rg *gin.RouterGroup, itemService portssvc.ItemReaderSvc) {
	h := newExportHandler(itemService)

	exports := rg.Group("/exports")
	{
		exports.GET("/items.csv", h.exportCSV)
		exports.GET("/items.xlsx", h.exportXLSX)
		exports.GET("/items.pdf", h.exportPDF)
	}
}

// loadAllItems fetches every item matching the date filter, ignoring paging.
func (h *exportHandler) loadAllItems(c *gin.Context) ([]domain.Item, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for export", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return nil, false
	}

	// Exports are whole-result documents; paging does not apply.
	params.Page = 0
	params.PageSize = 0

	items, _, err := h.itemService.ListItems(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list items for export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export items"})
		return nil, false
	}
	return items, true
}

func exportFilename(ext string) string {
	return fmt.Sprintf("items_%s.%s", time.Now().Format("20060102"), ext)
}

// exportCSV godoc
// @Summary Export items as CSV
// @Description Streams all items matching the filter as a CSV download
// @Tags exports
// @Produce  text/csv
// @Param   from query string false "Created from (YYYY-MM-DD)"
// @Param   to query string false "Created to (YYYY-MM-DD)"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to export items"
// @Router /exports/items.csv [get]
func (h *exportHandler) exportCSV(c *gin.Context) {
	items, ok := h.loadAllItems(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, items); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("CSV export failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export items"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFilename("csv")+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// exportXLSX godoc
// @Summary Export items as an Excel workbook
// @Description Streams all items matching the filter as an XLSX download
// @Tags exports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   from query string false "Created from (YYYY-MM-DD)"
// @Param   to query string false "Created to (YYYY-MM-DD)"
// @Success 200 {string} string "XLSX document"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to export items"
// @Router /exports/items.xlsx [get]
func (h *exportHandler) exportXLSX(c *gin.Context) {
	items, ok := h.loadAllItems(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, items); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("XLSX export failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export items"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFilename("xlsx")+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// exportPDF godoc
// @Summary Export items as PDF
// @Description Streams all items matching the filter as a PDF download
// @Tags exports
// @Produce  application/pdf
// @Param   from query string false "Created from (YYYY-MM-DD)"
// @Param   to query string false "Created to (YYYY-MM-DD)"
// @Success 200 {string} string "PDF document"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to export items"
// @Router /exports/items.pdf [get]
func (h *exportHandler) exportPDF(c *gin.Context) {
	items, ok := h.loadAllItems(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, items); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("PDF export failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export items"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFilename("pdf")+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
