package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
	"github.com/priceworks/price_calculator_app/internal/core/pricing"
	portsrepo "github.com/priceworks/price_calculator_app/internal/core/ports/repositories"
	portssvc "github.com/priceworks/price_calculator_app/internal/core/ports/services"
	"github.com/priceworks/price_calculator_app/internal/dto"
)

// summaryService implements the SummarySvcFacade interface.
type summaryService struct {
	BaseService
	itemRepo        portsrepo.ItemReader
	settingsService portssvc.SettingsReaderSvc
}

// NewSummaryService creates a new summary service.
func NewSummaryService(itemRepo portsrepo.ItemReader, settingsService portssvc.SettingsReaderSvc) portssvc.SummarySvcFacade {
	return &summaryService{
		itemRepo:        itemRepo,
		settingsService: settingsService,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// Summarize reduces every item matching the date filter against current
// settings. Paging parameters are ignored: a summary always covers the full
// filtered set.
func (s *summaryService) Summarize(ctx context.Context, params dto.ListItemsParams) (*domain.Summary, error) {
	filter := toListItemsFilter(params)
	filter.Page = 0
	filter.PageSize = 0
	items, _, err := s.itemRepo.ListItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list items for summary: %w", err)
	}

	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for summary: %w", err)
	}

	summary := pricing.Summarize(items, *settings)
	s.LogDebug(ctx, "Summary computed",
		slog.Int("item_count", summary.ItemCount),
		slog.String("subtotal", summary.Subtotal.String()))
	return &summary, nil
}
