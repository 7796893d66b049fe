package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priceworks/price_calculator_app/internal/apperrors"
	portssvc "github.com/priceworks/price_calculator_app/internal/core/ports/services"
	"github.com/priceworks/price_calculator_app/internal/dto"
	"github.com/priceworks/price_calculator_app/internal/middleware"
)

// itemHandler handles HTTP requests related to priced items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

// newItemHandler creates a new itemHandler.
func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{
		itemService: is,
	}
}

// registerItemRoutes registers routes related to items.
func registerItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:itemID", h.getItem)
		items.PATCH("/:itemID", h.updateItem)
		items.DELETE("/:itemID", h.deleteItem)
		items.DELETE("", h.clearItems)
	}
}

// createItem godoc
// @Summary Create a priced item
// @Description Prices the cost inputs against current settings and persists the item with all derived fields
// @Tags items
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateItemRequest true "Item cost inputs"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create item"
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdItem, err := h.itemService.CreateItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		}
		return
	}

	logger.Info("Item created successfully", slog.String("item_id", createdItem.ItemID))
	c.JSON(http.StatusCreated, dto.ToItemResponse(createdItem))
}

// listItems godoc
// @Summary List items
// @Description Retrieves items newest-first with optional creation date filtering and paging
// @Tags items
// @Produce  json
// @Param   from query string false "Created from (YYYY-MM-DD)"
// @Param   to query string false "Created to (YYYY-MM-DD)"
// @Param   page query int false "Page number (default 1)"
// @Param   pageSize query int false "Page size (default 50, max 500)"
// @Success 200 {object} dto.ListItemsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list items"
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListItems", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	items, total, err := h.itemService.ListItems(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list items in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}

	c.JSON(http.StatusOK, dto.ListItemsResponse{
		Items:    dto.ToListItemResponse(items),
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

// getItem godoc
// @Summary Get an item
// @Description Retrieves a single item by ID with its stored derived fields
// @Tags items
// @Produce  json
// @Param   itemID path string true "Item ID (UUID)"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve item"
// @Router /items/{itemID} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	item, err := h.itemService.GetItemByID(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logger.Error("Failed to get item in service", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// updateItem godoc
// @Summary Update an item
// @Description Applies exactly one of: rename, recategorize, or reprice. A reprice recomputes every derived field with current settings
// @Tags items
// @Accept  json
// @Produce  json
// @Param   itemID path string true "Item ID (UUID)"
// @Param   update body dto.UpdateItemRequest true "Exactly one update field"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Router /items/{itemID} [patch]
func (h *itemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updatedItem, err := h.itemService.UpdateItem(c.Request.Context(), itemID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating item", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		default:
			logger.Error("Failed to update item in service", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(updatedItem))
}

// deleteItem godoc
// @Summary Delete an item
// @Description Removes one item by ID
// @Tags items
// @Produce  json
// @Param   itemID path string true "Item ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to delete item"
// @Router /items/{itemID} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	if err := h.itemService.DeleteItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logger.Error("Failed to delete item in service", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// clearItems godoc
// @Summary Clear all items
// @Description Removes every item. Settings are not touched
// @Tags items
// @Produce  json
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Failed to clear items"
// @Router /items [delete]
func (h *itemHandler) clearItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.itemService.ClearItems(c.Request.Context()); err != nil {
		logger.Error("Failed to clear items in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear items"})
		return
	}

	logger.Info("All items cleared")
	c.Status(http.StatusNoContent)
}
