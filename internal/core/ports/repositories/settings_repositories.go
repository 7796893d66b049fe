package repositories

import (
	"context"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
)

// SettingsReader defines read operations for the settings singleton.
type SettingsReader interface {
	// GetSettings retrieves the settings row, or the hard-coded defaults when
	// no row has been persisted yet.
	GetSettings(ctx context.Context) (*domain.Settings, error)
}

// SettingsWriter defines write operations for the settings singleton.
type SettingsWriter interface {
	// SaveSettings replaces the settings row in place.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// SettingsRepositoryFacade combines all settings-related repository interfaces.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
