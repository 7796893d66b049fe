package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/priceworks/price_calculator_app/internal/apperrors"
	"github.com/priceworks/price_calculator_app/internal/core/domain"
	portsrepo "github.com/priceworks/price_calculator_app/internal/core/ports/repositories"
	"github.com/priceworks/price_calculator_app/internal/models"
	"github.com/priceworks/price_calculator_app/internal/utils/mapping"
)

const itemColumns = `
	item_id, name, category,
	purchase_price, purchase_currency,
	additional_cost, additional_cost_currency,
	shipping_cost, shipping_currency,
	delivery_charge_us,
	total_inr, marketing_budget, margin_percent, margin_value,
	final_inr_with_budget_and_margin, final_price_usd,
	created_at, last_updated_at`

// PgxItemRepository implements the ports ItemRepositoryFacade using pgxpool.
type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for item data.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

// SaveItem inserts a newly created item with all derived columns.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	modelItem := mapping.ToModelItem(item)

	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelItem.ItemID, modelItem.Name, modelItem.Category,
		modelItem.PurchasePrice, modelItem.PurchaseCurrency,
		modelItem.AdditionalCost, modelItem.AdditionalCostCurrency,
		modelItem.ShippingCost, modelItem.ShippingCurrency,
		modelItem.DeliveryChargeUS,
		modelItem.TotalINR, modelItem.MarketingBudget, modelItem.MarginPercent, modelItem.MarginValue,
		modelItem.FinalINRWithBudgetAndMargin, modelItem.FinalPriceUSD,
		modelItem.CreatedAt, modelItem.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save item", err)
	}
	return nil
}

// FindItemByID retrieves a single item by its ID.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1;`

	modelItem, err := scanItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("item with ID " + itemID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find item by ID", err)
	}

	domainItem := mapping.ToDomainItem(*modelItem)
	return &domainItem, nil
}

// ListItems retrieves items ordered by created_at descending with optional
// creation-date filtering and paging, together with the total matching count.
// The count and the page read run in one transaction so the total cannot drift
// from the rows between the two statements.
func (r *PgxItemRepository) ListItems(ctx context.Context, filter portsrepo.ListItemsFilter) ([]domain.Item, int, error) {
	baseQuery := `FROM items WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.CreatedFrom != nil {
		baseQuery += fmt.Sprintf(" AND created_at >= $%d", argNum)
		args = append(args, *filter.CreatedFrom)
		argNum++
	}
	if filter.CreatedBefore != nil {
		baseQuery += fmt.Sprintf(" AND created_at < $%d", argNum)
		args = append(args, *filter.CreatedBefore)
		argNum++
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var total int
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count items", err)
	}
	if total == 0 {
		return []domain.Item{}, 0, nil
	}

	baseQuery += " ORDER BY created_at DESC"
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		offset := (page - 1) * filter.PageSize
		baseQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
		args = append(args, filter.PageSize, offset)
	}

	rows, err := tx.Query(ctx, "SELECT "+itemColumns+" "+baseQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list items", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		modelItem, err := scanItem(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan item", err)
		}
		items = append(items, mapping.ToDomainItem(*modelItem))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating items", err)
	}
	rows.Close()

	if err := r.Commit(ctx, tx); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateItem replaces the mutable columns of an existing item. The column set
// is fixed; callers cannot address columns by name.
func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	modelItem := mapping.ToModelItem(item)

	query := `
		UPDATE items SET
			name = $2, category = $3,
			purchase_price = $4, purchase_currency = $5,
			additional_cost = $6, additional_cost_currency = $7,
			shipping_cost = $8, shipping_currency = $9,
			delivery_charge_us = $10,
			total_inr = $11, marketing_budget = $12, margin_percent = $13, margin_value = $14,
			final_inr_with_budget_and_margin = $15, final_price_usd = $16,
			last_updated_at = $17
		WHERE item_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelItem.ItemID, modelItem.Name, modelItem.Category,
		modelItem.PurchasePrice, modelItem.PurchaseCurrency,
		modelItem.AdditionalCost, modelItem.AdditionalCostCurrency,
		modelItem.ShippingCost, modelItem.ShippingCurrency,
		modelItem.DeliveryChargeUS,
		modelItem.TotalINR, modelItem.MarketingBudget, modelItem.MarginPercent, modelItem.MarginValue,
		modelItem.FinalINRWithBudgetAndMargin, modelItem.FinalPriceUSD,
		modelItem.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item with ID " + item.ItemID + " not found")
	}
	return nil
}

// DeleteItem removes one item by ID.
func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM items WHERE item_id = $1;`, itemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item with ID " + itemID + " not found")
	}
	return nil
}

// ClearItems removes every item.
func (r *PgxItemRepository) ClearItems(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM items;`); err != nil {
		return apperrors.NewAppError(500, "failed to clear items", err)
	}
	return nil
}

// scanItem scans one item row in itemColumns order.
func scanItem(row pgx.Row) (*models.Item, error) {
	var m models.Item
	err := row.Scan(
		&m.ItemID, &m.Name, &m.Category,
		&m.PurchasePrice, &m.PurchaseCurrency,
		&m.AdditionalCost, &m.AdditionalCostCurrency,
		&m.ShippingCost, &m.ShippingCurrency,
		&m.DeliveryChargeUS,
		&m.TotalINR, &m.MarketingBudget, &m.MarginPercent, &m.MarginValue,
		&m.FinalINRWithBudgetAndMargin, &m.FinalPriceUSD,
		&m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
