package repositories

import (
	"context"
	"time"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
)

// ListItemsFilter narrows and pages an item listing. Items are always returned
// ordered by creation time, newest first. CreatedBefore is an exclusive upper
// bound; callers filtering by a whole end day pass midnight of the next day.
type ListItemsFilter struct {
	CreatedFrom   *time.Time
	CreatedBefore *time.Time
	Page          int
	PageSize      int // 0 disables paging
}

// ItemReader defines read operations for item data.
type ItemReader interface {
	// FindItemByID retrieves a single item by its ID.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems retrieves items ordered by created_at descending, together with
	// the total count matching the filter.
	ListItems(ctx context.Context, filter ListItemsFilter) ([]domain.Item, int, error)
}

// ItemWriter defines write operations for item data. Updates are whole-row
// writes of fixed columns; the store never executes caller-supplied field names.
type ItemWriter interface {
	// SaveItem persists a newly created item.
	SaveItem(ctx context.Context, item domain.Item) error

	// UpdateItem replaces the mutable columns of an existing item.
	UpdateItem(ctx context.Context, item domain.Item) error

	// DeleteItem removes one item by ID.
	DeleteItem(ctx context.Context, itemID string) error

	// ClearItems removes every item.
	ClearItems(ctx context.Context) error
}

// ItemRepositoryFacade combines all item-related repository interfaces.
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
