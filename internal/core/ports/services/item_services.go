package services

import (
	"context"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
	"github.com/priceworks/price_calculator_app/internal/dto"
)

// ItemReaderSvc defines read operations for items.
type ItemReaderSvc interface {
	// GetItemByID retrieves a single item.
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems retrieves items newest-first with the total count for paging.
	ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.Item, int, error)
}

// ItemWriterSvc defines write operations for items.
type ItemWriterSvc interface {
	// CreateItem prices the inputs against current settings and persists the
	// fully derived item.
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error)

	// UpdateItem applies exactly one typed partial update. A reprice recomputes
	// every derived field with current settings.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*domain.Item, error)

	// DeleteItem removes one item.
	DeleteItem(ctx context.Context, itemID string) error

	// ClearItems removes every item.
	ClearItems(ctx context.Context) error
}

// ItemSvcFacade combines all item-related service interfaces.
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
}
