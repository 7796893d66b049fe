package services

import (
	"context"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
	"github.com/priceworks/price_calculator_app/internal/dto"
)

// SettingsReaderSvc defines read operations for the settings singleton.
type SettingsReaderSvc interface {
	// GetSettings retrieves the current settings (defaults when never written).
	GetSettings(ctx context.Context) (*domain.Settings, error)
}

// SettingsWriterSvc defines write operations for the settings singleton.
type SettingsWriterSvc interface {
	// UpdateSettings validates and replaces the settings row in place.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error)

	// RefreshExchangeRate fetches a fresh USD to INR rate from the external source
	// and stores it. On fetch failure nothing is mutated and the stored rate
	// remains authoritative.
	RefreshExchangeRate(ctx context.Context) (*domain.Settings, error)
}

// SettingsSvcFacade combines all settings-related service interfaces.
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}
