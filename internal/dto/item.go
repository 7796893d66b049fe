package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
)

// CreateItemRequest defines the data needed to price and persist a new item.
// Amount validation beyond presence (purchase price > 0, non-negative costs)
// happens in the service layer because validator tags cannot inspect decimals.
type CreateItemRequest struct {
	Name                   string          `json:"name" binding:"required"`
	Category               string          `json:"category" binding:"required,itemcategory"`
	PurchasePrice          decimal.Decimal `json:"purchasePrice" binding:"required"`
	PurchaseCurrency       string          `json:"purchaseCurrency" binding:"required,oneof=USD INR"`
	AdditionalCost         decimal.Decimal `json:"additionalCost"`
	AdditionalCostCurrency string          `json:"additionalCostCurrency" binding:"required,oneof=USD INR"`
	ShippingCost           decimal.Decimal `json:"shippingCost"`
	ShippingCurrency       string          `json:"shippingCurrency" binding:"required,oneof=USD INR"`
	DeliveryChargeUS       decimal.Decimal `json:"deliveryChargeUS"`
}

// RepriceRequest carries replacement cost inputs for an item. Applying it
// recomputes every derived field with the current settings.
type RepriceRequest struct {
	PurchasePrice          decimal.Decimal `json:"purchasePrice" binding:"required"`
	PurchaseCurrency       string          `json:"purchaseCurrency" binding:"required,oneof=USD INR"`
	AdditionalCost         decimal.Decimal `json:"additionalCost"`
	AdditionalCostCurrency string          `json:"additionalCostCurrency" binding:"required,oneof=USD INR"`
	ShippingCost           decimal.Decimal `json:"shippingCost"`
	ShippingCurrency       string          `json:"shippingCurrency" binding:"required,oneof=USD INR"`
	DeliveryChargeUS       decimal.Decimal `json:"deliveryChargeUS"`
}

// UpdateItemRequest is the closed set of partial updates an item accepts.
// Exactly one field must be set; the service rejects anything else.
type UpdateItemRequest struct {
	Name     *string         `json:"name,omitempty"`
	Category *string         `json:"category,omitempty" binding:"omitempty,itemcategory"`
	Reprice  *RepriceRequest `json:"reprice,omitempty"`
}

// ListItemsParams defines the query parameters for listing items.
type ListItemsParams struct {
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	Page     int        `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int        `form:"pageSize,default=50" binding:"omitempty,min=1,max=500"`
}

// ItemResponse defines the data returned for an item.
type ItemResponse struct {
	ItemID                      string          `json:"itemID"`
	Name                        string          `json:"name"`
	Category                    string          `json:"category"`
	PurchasePrice               decimal.Decimal `json:"purchasePrice"`
	PurchaseCurrency            string          `json:"purchaseCurrency"`
	AdditionalCost              decimal.Decimal `json:"additionalCost"`
	AdditionalCostCurrency      string          `json:"additionalCostCurrency"`
	ShippingCost                decimal.Decimal `json:"shippingCost"`
	ShippingCurrency            string          `json:"shippingCurrency"`
	DeliveryChargeUS            decimal.Decimal `json:"deliveryChargeUS"`
	TotalINR                    decimal.Decimal `json:"totalInr"`
	MarketingBudget             decimal.Decimal `json:"marketingBudget"`
	MarginPercent               decimal.Decimal `json:"marginPercent"`
	MarginValue                 decimal.Decimal `json:"marginValue"`
	FinalINRWithBudgetAndMargin decimal.Decimal `json:"finalInrWithBudgetAndMargin"`
	FinalPriceUSD               decimal.Decimal `json:"finalPriceUsd"`
	CreatedAt                   time.Time       `json:"createdAt"`
	LastUpdatedAt               time.Time       `json:"lastUpdatedAt"`
}

// ListItemsResponse wraps a page of items with the total count.
type ListItemsResponse struct {
	Items    []ItemResponse `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// ToItemResponse converts a domain.Item to an ItemResponse DTO.
func ToItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:                      item.ItemID,
		Name:                        item.Name,
		Category:                    string(item.Category),
		PurchasePrice:               item.PurchasePrice,
		PurchaseCurrency:            string(item.PurchaseCurrency),
		AdditionalCost:              item.AdditionalCost,
		AdditionalCostCurrency:      string(item.AdditionalCostCurrency),
		ShippingCost:                item.ShippingCost,
		ShippingCurrency:            string(item.ShippingCurrency),
		DeliveryChargeUS:            item.DeliveryChargeUS,
		TotalINR:                    item.TotalINR,
		MarketingBudget:             item.MarketingBudget,
		MarginPercent:               item.MarginPercent,
		MarginValue:                 item.MarginValue,
		FinalINRWithBudgetAndMargin: item.FinalINRWithBudgetAndMargin,
		FinalPriceUSD:               item.FinalPriceUSD,
		CreatedAt:                   item.CreatedAt,
		LastUpdatedAt:               item.LastUpdatedAt,
	}
}

// ToListItemResponse converts a slice of domain items to response DTOs.
func ToListItemResponse(items []domain.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}
