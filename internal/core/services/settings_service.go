package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/priceworks/price_calculator_app/internal/apperrors"
	"github.com/priceworks/price_calculator_app/internal/core/domain"
	portsrepo "github.com/priceworks/price_calculator_app/internal/core/ports/repositories"
	portssvc "github.com/priceworks/price_calculator_app/internal/core/ports/services"
	"github.com/priceworks/price_calculator_app/internal/dto"
)

var maxTaxRatePercent = decimal.NewFromInt(100)

// settingsService implements the SettingsSvcFacade interface. It is the
// boundary where invalid exchange rates are rejected, before any conversion
// can ever see them.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
	rateFetcher  portssvc.RateFetcher
}

// NewSettingsService creates a new settings service. rateFetcher may be nil
// when no external rate source is configured; RefreshExchangeRate then fails
// cleanly without touching stored state.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, rateFetcher portssvc.RateFetcher) portssvc.SettingsSvcFacade {
	return &settingsService{
		settingsRepo: settingsRepo,
		rateFetcher:  rateFetcher,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetSettings retrieves the current settings.
func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings in service: %w", err)
	}
	return settings, nil
}

// UpdateSettings validates and replaces the settings singleton whole.
func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	if err := validateSettings(req.TaxRatePercent, req.USDToINRRate); err != nil {
		return nil, err
	}

	current, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for update: %w", err)
	}

	now := time.Now()
	createdAt := current.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	settings := domain.Settings{
		TaxRatePercent: req.TaxRatePercent,
		USDToINRRate:   req.USDToINRRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			LastUpdatedAt: now,
		},
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return nil, fmt.Errorf("failed to update settings in service: %w", err)
	}

	s.LogInfo(ctx, "Settings updated",
		slog.String("tax_rate_percent", settings.TaxRatePercent.String()),
		slog.String("usd_to_inr_rate", settings.USDToINRRate.String()))
	return &settings, nil
}

// RefreshExchangeRate fetches a fresh rate from the external source and stores
// it, keeping the current tax rate. A fetch failure leaves the stored settings
// untouched; the previous rate remains authoritative.
func (s *settingsService) RefreshExchangeRate(ctx context.Context) (*domain.Settings, error) {
	if s.rateFetcher == nil {
		return nil, fmt.Errorf("%w: no exchange rate source configured", apperrors.ErrValidation)
	}

	rate, err := s.rateFetcher.FetchUSDToINR(ctx)
	if err != nil {
		s.LogError(ctx, err, "Exchange rate fetch failed, keeping stored rate")
		return nil, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: fetched rate %s", apperrors.ErrInvalidRate, rate)
	}

	current, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for rate refresh: %w", err)
	}

	return s.UpdateSettings(ctx, dto.UpdateSettingsRequest{
		TaxRatePercent: current.TaxRatePercent,
		USDToINRRate:   rate,
	})
}

// validateSettings enforces the settings-boundary rules: tax rate within
// [0, 100] and a strictly positive exchange rate.
func validateSettings(taxRatePercent, usdToInrRate decimal.Decimal) error {
	if taxRatePercent.LessThan(decimal.Zero) || taxRatePercent.GreaterThan(maxTaxRatePercent) {
		return fmt.Errorf("%w: tax rate must be between 0 and 100", apperrors.ErrValidation)
	}
	if usdToInrRate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, apperrors.ErrInvalidRate)
	}
	return nil
}
