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

// settingsHandler handles HTTP requests related to the settings singleton.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
	}
}

// registerSettingsRoutes registers routes related to settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
		settings.POST("/refresh-rate", h.refreshExchangeRate)
	}
}

// getSettings godoc
// @Summary Get current settings
// @Description Retrieves the settings singleton; returns the defaults if none have been saved yet
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} map[string]string "Failed to retrieve settings"
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get settings in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update settings
// @Description Replaces the settings singleton. Tax rate must be within [0, 100]; the exchange rate must be positive
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "New settings values"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to update settings"
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrInvalidRate) {
			logger.Warn("Validation error updating settings", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update settings in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		}
		return
	}

	logger.Info("Settings updated successfully",
		slog.String("tax_rate_percent", settings.TaxRatePercent.String()),
		slog.String("usd_to_inr_rate", settings.USDToINRRate.String()))
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// refreshExchangeRate godoc
// @Summary Refresh the USD to INR exchange rate
// @Description Fetches a live rate from the external source and stores it. On fetch failure the stored rate is kept and an error is returned
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Failure 502 {object} map[string]string "Rate source unavailable"
// @Failure 500 {object} map[string]string "Failed to refresh exchange rate"
// @Router /settings/refresh-rate [post]
func (h *settingsHandler) refreshExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.RefreshExchangeRate(c.Request.Context())
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadGateway {
			logger.Warn("Exchange rate source unavailable, stored rate kept", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate source unavailable; stored rate kept"})
		} else if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrInvalidRate) {
			logger.Warn("Fetched exchange rate rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to refresh exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh exchange rate"})
		}
		return
	}

	logger.Info("Exchange rate refreshed", slog.String("usd_to_inr_rate", settings.USDToINRRate.String()))
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
