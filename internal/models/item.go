package models

import "github.com/shopspring/decimal"

// Item is the database representation of a priced item. Derived columns are
// stored exactly as computed; reads never recompute them.
type Item struct {
	ItemID   string `json:"itemID"` // Primary Key (UUID)
	Name     string `json:"name"`
	Category string `json:"category"`

	PurchasePrice          decimal.Decimal `json:"purchasePrice"`
	PurchaseCurrency       string          `json:"purchaseCurrency"`
	AdditionalCost         decimal.Decimal `json:"additionalCost"`
	AdditionalCostCurrency string          `json:"additionalCostCurrency"`
	ShippingCost           decimal.Decimal `json:"shippingCost"`
	ShippingCurrency       string          `json:"shippingCurrency"`
	DeliveryChargeUS       decimal.Decimal `json:"deliveryChargeUS"`

	TotalINR                    decimal.Decimal `json:"totalInr"`
	MarketingBudget             decimal.Decimal `json:"marketingBudget"`
	MarginPercent               decimal.Decimal `json:"marginPercent"`
	MarginValue                 decimal.Decimal `json:"marginValue"`
	FinalINRWithBudgetAndMargin decimal.Decimal `json:"finalInrWithBudgetAndMargin"`
	FinalPriceUSD               decimal.Decimal `json:"finalPriceUsd"`

	AuditFields
}
