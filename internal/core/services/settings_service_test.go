package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/priceworks/price_calculator_app/internal/apperrors"
	"github.com/priceworks/price_calculator_app/internal/core/domain"
	portssvc "github.com/priceworks/price_calculator_app/internal/core/ports/services"
	"github.com/priceworks/price_calculator_app/internal/core/services"
	"github.com/priceworks/price_calculator_app/internal/dto"
)

// --- Test Suite ---
type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	mockRateFetcher  *MockRateFetcher
	service          portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockRateFetcher = new(MockRateFetcher)
	suite.service = services.NewSettingsService(suite.mockSettingsRepo, suite.mockRateFetcher)
}

// --- Test Cases ---

func (suite *SettingsServiceTestSuite) TestGetSettings_ReturnsDefaults() {
	ctx := context.Background()
	defaults := domain.DefaultSettings()

	suite.mockSettingsRepo.On("GetSettings", mock.Anything).Return(&defaults, nil).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.NoError(err)
	suite.True(decimal.RequireFromString("8.25").Equal(settings.TaxRatePercent))
	suite.True(decimal.RequireFromString("83.25").Equal(settings.USDToINRRate))
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_Success() {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	current := domain.Settings{
		TaxRatePercent: decimal.RequireFromString("8.25"),
		USDToINRRate:   decimal.RequireFromString("83.25"),
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			LastUpdatedAt: createdAt,
		},
	}

	suite.mockSettingsRepo.On("GetSettings", mock.Anything).Return(&current, nil).Once()

	var saved domain.Settings
	suite.mockSettingsRepo.On("SaveSettings", mock.Anything, mock.AnythingOfType("domain.Settings")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Settings)
		}).
		Return(nil).Once()

	updated, err := suite.service.UpdateSettings(ctx, dto.UpdateSettingsRequest{
		TaxRatePercent: decimal.RequireFromString("10"),
		USDToINRRate:   decimal.RequireFromString("85.50"),
	})

	suite.NoError(err)
	suite.True(decimal.RequireFromString("10").Equal(updated.TaxRatePercent))
	suite.True(decimal.RequireFromString("85.50").Equal(updated.USDToINRRate))
	// Creation timestamp survives the in-place replacement
	suite.Equal(createdAt, saved.CreatedAt)
	suite.True(saved.LastUpdatedAt.After(createdAt))
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_RejectsTaxRateOutOfRange() {
	ctx := context.Background()

	for _, taxRate := range []string{"-1", "100.01"} {
		_, err := suite.service.UpdateSettings(ctx, dto.UpdateSettingsRequest{
			TaxRatePercent: decimal.RequireFromString(taxRate),
			USDToINRRate:   decimal.RequireFromString("83.25"),
		})
		suite.ErrorIs(err, apperrors.ErrValidation, "tax rate %s should be rejected", taxRate)
	}
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "SaveSettings", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_RejectsNonPositiveRate() {
	ctx := context.Background()

	for _, rate := range []string{"0", "-83.25"} {
		_, err := suite.service.UpdateSettings(ctx, dto.UpdateSettingsRequest{
			TaxRatePercent: decimal.RequireFromString("8.25"),
			USDToINRRate:   decimal.RequireFromString(rate),
		})
		suite.ErrorIs(err, apperrors.ErrValidation, "rate %s should be rejected", rate)
	}
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "SaveSettings", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestRefreshExchangeRate_Success() {
	ctx := context.Background()
	current := domain.Settings{
		TaxRatePercent: decimal.RequireFromString("8.25"),
		USDToINRRate:   decimal.RequireFromString("83.25"),
	}

	suite.mockRateFetcher.On("FetchUSDToINR", mock.Anything).
		Return(decimal.RequireFromString("84.10"), nil).Once()
	// Once for the refresh, once inside UpdateSettings
	suite.mockSettingsRepo.On("GetSettings", mock.Anything).Return(&current, nil).Twice()

	var saved domain.Settings
	suite.mockSettingsRepo.On("SaveSettings", mock.Anything, mock.AnythingOfType("domain.Settings")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Settings)
		}).
		Return(nil).Once()

	updated, err := suite.service.RefreshExchangeRate(ctx)

	suite.NoError(err)
	suite.True(decimal.RequireFromString("84.10").Equal(updated.USDToINRRate))
	// Tax rate is carried over unchanged
	suite.True(decimal.RequireFromString("8.25").Equal(saved.TaxRatePercent))
	suite.mockSettingsRepo.AssertExpectations(suite.T())
	suite.mockRateFetcher.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestRefreshExchangeRate_FetchFailureKeepsStoredRate() {
	ctx := context.Background()

	suite.mockRateFetcher.On("FetchUSDToINR", mock.Anything).
		Return(decimal.Zero, fmt.Errorf("rate API unreachable")).Once()

	_, err := suite.service.RefreshExchangeRate(ctx)

	suite.Error(err)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "SaveSettings", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestRefreshExchangeRate_RejectsNonPositiveFetchedRate() {
	ctx := context.Background()

	suite.mockRateFetcher.On("FetchUSDToINR", mock.Anything).
		Return(decimal.Zero, nil).Once()

	_, err := suite.service.RefreshExchangeRate(ctx)

	suite.ErrorIs(err, apperrors.ErrInvalidRate)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "SaveSettings", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestRefreshExchangeRate_NoFetcherConfigured() {
	ctx := context.Background()
	service := services.NewSettingsService(suite.mockSettingsRepo, nil)

	_, err := service.RefreshExchangeRate(ctx)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
