package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/priceworks/price_calculator_app/internal/apperrors"
	"github.com/priceworks/price_calculator_app/internal/core/domain"
	"github.com/priceworks/price_calculator_app/internal/core/pricing"
	portsrepo "github.com/priceworks/price_calculator_app/internal/core/ports/repositories"
	portssvc "github.com/priceworks/price_calculator_app/internal/core/ports/services"
	"github.com/priceworks/price_calculator_app/internal/dto"
)

// itemService implements the ItemSvcFacade interface.
type itemService struct {
	BaseService
	itemRepo        portsrepo.ItemRepositoryFacade
	settingsService portssvc.SettingsReaderSvc
}

// NewItemService creates a new item service.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade, settingsService portssvc.SettingsReaderSvc) portssvc.ItemSvcFacade {
	return &itemService{
		itemRepo:        itemRepo,
		settingsService: settingsService,
	}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

// CreateItem prices the raw inputs against current settings and persists the
// derived item in one step; there is no draft state.
func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error) {
	inputs := pricing.Inputs{
		PurchasePrice:          req.PurchasePrice,
		PurchaseCurrency:       domain.Currency(req.PurchaseCurrency),
		AdditionalCost:         req.AdditionalCost,
		AdditionalCostCurrency: domain.Currency(req.AdditionalCostCurrency),
		ShippingCost:           req.ShippingCost,
		ShippingCurrency:       domain.Currency(req.ShippingCurrency),
		DeliveryChargeUS:       req.DeliveryChargeUS,
	}
	if err := validatePricingInputs(inputs); err != nil {
		return nil, err
	}

	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for pricing: %w", err)
	}

	derived, err := pricing.PriceItem(inputs, *settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	now := time.Now()
	item := domain.Item{
		ItemID:                      uuid.NewString(),
		Name:                        req.Name,
		Category:                    domain.Category(req.Category),
		PurchasePrice:               req.PurchasePrice,
		PurchaseCurrency:            domain.Currency(req.PurchaseCurrency),
		AdditionalCost:              req.AdditionalCost,
		AdditionalCostCurrency:      domain.Currency(req.AdditionalCostCurrency),
		ShippingCost:                req.ShippingCost,
		ShippingCurrency:            domain.Currency(req.ShippingCurrency),
		DeliveryChargeUS:            req.DeliveryChargeUS,
		TotalINR:                    derived.TotalINR,
		MarketingBudget:             derived.MarketingBudget,
		MarginPercent:               derived.MarginPercent,
		MarginValue:                 derived.MarginValue,
		FinalINRWithBudgetAndMargin: derived.FinalINRWithBudgetAndMargin,
		FinalPriceUSD:               derived.FinalPriceUSD,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save item", slog.String("item_name", req.Name))
		return nil, fmt.Errorf("failed to create item in service: %w", err)
	}

	s.LogInfo(ctx, "Item created",
		slog.String("item_id", item.ItemID),
		slog.String("total_inr", item.TotalINR.String()),
		slog.String("final_price_usd", item.FinalPriceUSD.String()))
	return &item, nil
}

// GetItemByID retrieves a single item.
func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item in service: %w", err)
	}
	return item, nil
}

// ListItems retrieves items newest-first.
func (s *itemService) ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.Item, int, error) {
	items, total, err := s.itemRepo.ListItems(ctx, toListItemsFilter(params))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list items in service: %w", err)
	}
	return items, total, nil
}

// UpdateItem applies exactly one typed partial update to an existing item.
// A reprice recomputes every derived field with the current settings; name and
// category edits leave derived fields untouched.
func (s *itemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*domain.Item, error) {
	update, err := toItemUpdate(req)
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item for update: %w", err)
	}

	switch update.Kind {
	case domain.UpdateRename:
		item.Name = update.Name
	case domain.UpdateRecategorize:
		item.Category = update.Category
	case domain.UpdateReprice:
		if err := s.applyReprice(ctx, item, update.Reprice); err != nil {
			return nil, err
		}
	}
	item.LastUpdatedAt = time.Now()

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update item in service: %w", err)
	}

	s.LogInfo(ctx, "Item updated",
		slog.String("item_id", itemID),
		slog.String("update_kind", string(update.Kind)))
	return item, nil
}

// applyReprice replaces the cost inputs and rederives all pricing fields.
func (s *itemService) applyReprice(ctx context.Context, item *domain.Item, reprice domain.RepriceInputs) error {
	inputs := pricing.Inputs{
		PurchasePrice:          reprice.PurchasePrice,
		PurchaseCurrency:       reprice.PurchaseCurrency,
		AdditionalCost:         reprice.AdditionalCost,
		AdditionalCostCurrency: reprice.AdditionalCostCurrency,
		ShippingCost:           reprice.ShippingCost,
		ShippingCurrency:       reprice.ShippingCurrency,
		DeliveryChargeUS:       reprice.DeliveryChargeUS,
	}
	if err := validatePricingInputs(inputs); err != nil {
		return err
	}

	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings for reprice: %w", err)
	}

	derived, err := pricing.PriceItem(inputs, *settings)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	item.PurchasePrice = reprice.PurchasePrice
	item.PurchaseCurrency = reprice.PurchaseCurrency
	item.AdditionalCost = reprice.AdditionalCost
	item.AdditionalCostCurrency = reprice.AdditionalCostCurrency
	item.ShippingCost = reprice.ShippingCost
	item.ShippingCurrency = reprice.ShippingCurrency
	item.DeliveryChargeUS = reprice.DeliveryChargeUS
	item.TotalINR = derived.TotalINR
	item.MarketingBudget = derived.MarketingBudget
	item.MarginPercent = derived.MarginPercent
	item.MarginValue = derived.MarginValue
	item.FinalINRWithBudgetAndMargin = derived.FinalINRWithBudgetAndMargin
	item.FinalPriceUSD = derived.FinalPriceUSD
	return nil
}

// DeleteItem removes one item by ID.
func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete item in service: %w", err)
	}
	s.LogInfo(ctx, "Item deleted", slog.String("item_id", itemID))
	return nil
}

// ClearItems removes every item.
func (s *itemService) ClearItems(ctx context.Context) error {
	if err := s.itemRepo.ClearItems(ctx); err != nil {
		return fmt.Errorf("failed to clear items in service: %w", err)
	}
	s.LogInfo(ctx, "All items cleared")
	return nil
}

// toListItemsFilter maps list query params to the repository filter. The `to`
// date names a whole day, so the store receives midnight of the following day
// as an exclusive bound; items created any time during the end day match.
func toListItemsFilter(params dto.ListItemsParams) portsrepo.ListItemsFilter {
	filter := portsrepo.ListItemsFilter{
		CreatedFrom: params.From,
		Page:        params.Page,
		PageSize:    params.PageSize,
	}
	if params.To != nil {
		endExclusive := params.To.AddDate(0, 0, 1)
		filter.CreatedBefore = &endExclusive
	}
	return filter
}

// toItemUpdate validates that exactly one update variant is present and maps
// the request to the domain tagged union.
func toItemUpdate(req dto.UpdateItemRequest) (domain.ItemUpdate, error) {
	set := 0
	if req.Name != nil {
		set++
	}
	if req.Category != nil {
		set++
	}
	if req.Reprice != nil {
		set++
	}
	if set != 1 {
		return domain.ItemUpdate{}, fmt.Errorf("%w: exactly one of name, category or reprice must be provided", apperrors.ErrValidation)
	}

	switch {
	case req.Name != nil:
		if *req.Name == "" {
			return domain.ItemUpdate{}, fmt.Errorf("%w: name must not be empty", apperrors.ErrValidation)
		}
		return domain.ItemUpdate{Kind: domain.UpdateRename, Name: *req.Name}, nil
	case req.Category != nil:
		return domain.ItemUpdate{Kind: domain.UpdateRecategorize, Category: domain.Category(*req.Category)}, nil
	default:
		return domain.ItemUpdate{
			Kind: domain.UpdateReprice,
			Reprice: domain.RepriceInputs{
				PurchasePrice:          req.Reprice.PurchasePrice,
				PurchaseCurrency:       domain.Currency(req.Reprice.PurchaseCurrency),
				AdditionalCost:         req.Reprice.AdditionalCost,
				AdditionalCostCurrency: domain.Currency(req.Reprice.AdditionalCostCurrency),
				ShippingCost:           req.Reprice.ShippingCost,
				ShippingCurrency:       domain.Currency(req.Reprice.ShippingCurrency),
				DeliveryChargeUS:       req.Reprice.DeliveryChargeUS,
			},
		}, nil
	}
}

// validatePricingInputs enforces the caller-side amount rules before the
// pricing engine runs: positive purchase price, non-negative everything else.
func validatePricingInputs(in pricing.Inputs) error {
	if in.PurchasePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: purchase price must be positive", apperrors.ErrValidation)
	}
	for _, check := range []struct {
		name   string
		amount decimal.Decimal
	}{
		{"additional cost", in.AdditionalCost},
		{"shipping cost", in.ShippingCost},
		{"US delivery charge", in.DeliveryChargeUS},
	} {
		if check.amount.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, check.name)
		}
	}
	return nil
}
