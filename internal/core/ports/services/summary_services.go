package services

import (
	"context"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
	"github.com/priceworks/price_calculator_app/internal/dto"
)

// SummarySvcFacade aggregates items into subtotal/tax/total and margin figures.
type SummarySvcFacade interface {
	// Summarize reduces all items matching the filter against current settings.
	Summarize(ctx context.Context, params dto.ListItemsParams) (*domain.Summary, error)
}
