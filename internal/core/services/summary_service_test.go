package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
	portsrepo "github.com/priceworks/price_calculator_app/internal/core/ports/repositories"
	portssvc "github.com/priceworks/price_calculator_app/internal/core/ports/services"
	"github.com/priceworks/price_calculator_app/internal/core/services"
	"github.com/priceworks/price_calculator_app/internal/dto"
)

// --- Test Suite ---
type SummaryServiceTestSuite struct {
	suite.Suite
	mockItemRepo     *MockItemRepository
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.SummarySvcFacade
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	settingsService := services.NewSettingsService(suite.mockSettingsRepo, nil)
	suite.service = services.NewSummaryService(suite.mockItemRepo, settingsService)
}

// --- Test Cases ---

func (suite *SummaryServiceTestSuite) TestSummarize_ComputesTotals() {
	ctx := context.Background()
	settings := domain.Settings{
		TaxRatePercent: decimal.RequireFromString("8.25"),
		USDToINRRate:   decimal.RequireFromString("83.25"),
	}
	items := []domain.Item{
		{
			ItemID:      "item-1",
			Category:    domain.CategoryElectronics,
			TotalINR:    decimal.NewFromInt(6000),
			MarginValue: decimal.NewFromInt(2400), // 40%
		},
		{
			ItemID:      "item-2",
			Category:    domain.CategoryBooks,
			TotalINR:    decimal.NewFromInt(4000),
			MarginValue: decimal.NewFromInt(2000), // 50%
		},
	}

	suite.mockItemRepo.On("ListItems", mock.Anything, mock.AnythingOfType("repositories.ListItemsFilter")).
		Return(items, 2, nil).Once()
	suite.mockSettingsRepo.On("GetSettings", mock.Anything).Return(&settings, nil).Once()

	summary, err := suite.service.Summarize(ctx, dto.ListItemsParams{})

	suite.NoError(err)
	suite.Equal(2, summary.ItemCount)
	suite.True(decimal.NewFromInt(10000).Equal(summary.Subtotal))
	// 10000 * 8.25% = 825.00
	suite.True(decimal.RequireFromString("825.00").Equal(summary.TaxAmount))
	suite.True(decimal.RequireFromString("10825.00").Equal(summary.Total))
	// (2400 + 2000) / 10000 * 100 = 44.00
	suite.True(decimal.RequireFromString("44.00").Equal(summary.AvgMarginPercent))
	suite.True(decimal.RequireFromString("5000.00").Equal(summary.AvgTotalINR))

	// Categories come back sorted by name
	suite.Len(summary.ByCategory, 2)
	suite.Equal(domain.CategoryBooks, summary.ByCategory[0].Category)
	suite.Equal(domain.CategoryElectronics, summary.ByCategory[1].Category)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestSummarize_IgnoresPaging() {
	ctx := context.Background()
	settings := domain.DefaultSettings()

	suite.mockItemRepo.On("ListItems", mock.Anything, mock.MatchedBy(func(f portsrepo.ListItemsFilter) bool {
		return f.Page == 0 && f.PageSize == 0
	})).Return([]domain.Item{}, 0, nil).Once()
	suite.mockSettingsRepo.On("GetSettings", mock.Anything).Return(&settings, nil).Once()

	_, err := suite.service.Summarize(ctx, dto.ListItemsParams{Page: 3, PageSize: 10})

	suite.NoError(err)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestSummarize_PassesDateFilter() {
	ctx := context.Background()
	settings := domain.DefaultSettings()
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	suite.mockItemRepo.On("ListItems", mock.Anything, mock.MatchedBy(func(f portsrepo.ListItemsFilter) bool {
		// End date is inclusive of the whole day: the store bound is the
		// exclusive midnight following it.
		return f.CreatedFrom != nil && f.CreatedFrom.Equal(from) &&
			f.CreatedBefore != nil &&
			f.CreatedBefore.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]domain.Item{}, 0, nil).Once()
	suite.mockSettingsRepo.On("GetSettings", mock.Anything).Return(&settings, nil).Once()

	_, err := suite.service.Summarize(ctx, dto.ListItemsParams{From: &from, To: &to})

	suite.NoError(err)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestSummarize_EmptySet() {
	ctx := context.Background()
	settings := domain.DefaultSettings()

	suite.mockItemRepo.On("ListItems", mock.Anything, mock.AnythingOfType("repositories.ListItemsFilter")).
		Return([]domain.Item{}, 0, nil).Once()
	suite.mockSettingsRepo.On("GetSettings", mock.Anything).Return(&settings, nil).Once()

	summary, err := suite.service.Summarize(ctx, dto.ListItemsParams{})

	suite.NoError(err)
	suite.Equal(0, summary.ItemCount)
	suite.True(summary.Subtotal.IsZero())
	suite.True(summary.TaxAmount.IsZero())
	suite.True(summary.Total.IsZero())
	suite.True(summary.AvgMarginPercent.IsZero())
	suite.Empty(summary.ByCategory)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
