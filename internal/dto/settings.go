package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
)

// UpdateSettingsRequest replaces the settings singleton whole; there are no
// partial settings updates.
type UpdateSettingsRequest struct {
	TaxRatePercent decimal.Decimal `json:"taxRatePercent" binding:"required"`
	USDToINRRate   decimal.Decimal `json:"usdToInrRate" binding:"required"`
}

// SettingsResponse defines the data returned for the settings singleton.
type SettingsResponse struct {
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	USDToINRRate   decimal.Decimal `json:"usdToInrRate"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToSettingsResponse converts domain.Settings to a SettingsResponse DTO.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		TaxRatePercent: s.TaxRatePercent,
		USDToINRRate:   s.USDToINRRate,
		LastUpdatedAt:  s.LastUpdatedAt,
	}
}
