package domain

import "github.com/shopspring/decimal"

// Category labels an item for display and analytics. It plays no role in pricing.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryApparel     Category = "Apparel"
	CategoryHomeKitchen Category = "Home & Kitchen"
	CategoryBooks       Category = "Books"
	CategoryToys        Category = "Toys"
	CategoryOther       Category = "Other"
)

// Item is one priced entry. The derived fields are computed once at creation
// (or on an explicit reprice) and stored as-is; they are never recomputed on read.
type Item struct {
	ItemID   string   `json:"itemID"` // Primary Key (UUID)
	Name     string   `json:"name"`
	Category Category `json:"category"`

	PurchasePrice          decimal.Decimal `json:"purchasePrice"`
	PurchaseCurrency       Currency        `json:"purchaseCurrency"`
	AdditionalCost         decimal.Decimal `json:"additionalCost"`
	AdditionalCostCurrency Currency        `json:"additionalCostCurrency"`
	ShippingCost           decimal.Decimal `json:"shippingCost"`
	ShippingCurrency       Currency        `json:"shippingCurrency"`
	DeliveryChargeUS       decimal.Decimal `json:"deliveryChargeUS"` // always USD

	// Derived fields, all rounded to 2 decimal places at computation time.
	TotalINR                    decimal.Decimal `json:"totalInr"`
	MarketingBudget             decimal.Decimal `json:"marketingBudget"`
	MarginPercent               decimal.Decimal `json:"marginPercent"`
	MarginValue                 decimal.Decimal `json:"marginValue"`
	FinalINRWithBudgetAndMargin decimal.Decimal `json:"finalInrWithBudgetAndMargin"`
	FinalPriceUSD               decimal.Decimal `json:"finalPriceUsd"`

	AuditFields
}
