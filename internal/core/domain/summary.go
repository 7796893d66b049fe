package domain

import "github.com/shopspring/decimal"

// CategoryTotal aggregates item count and total INR cost for one category.
type CategoryTotal struct {
	Category  Category        `json:"category"`
	ItemCount int             `json:"itemCount"`
	TotalINR  decimal.Decimal `json:"totalInr"`
}

// Summary is the reduction over a set of items against the current settings.
type Summary struct {
	ItemCount        int             `json:"itemCount"`
	Subtotal         decimal.Decimal `json:"subtotal"` // sum of totalInr
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	Total            decimal.Decimal `json:"total"`
	AvgMarginPercent decimal.Decimal `json:"avgMarginPercent"`
	AvgTotalINR      decimal.Decimal `json:"avgTotalInr"`
	ByCategory       []CategoryTotal `json:"byCategory"`
}
