package domain

import "github.com/shopspring/decimal"

// Settings is the single global configuration record: the current USD to INR
// exchange rate and the tax rate applied to item subtotals.
// Exactly one Settings record exists; updates replace it in place.
type Settings struct {
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"` // [0, 100]
	USDToINRRate   decimal.Decimal `json:"usdToInrRate"`   // strictly positive
	AuditFields
}

// DefaultSettings returns the hard-coded defaults used when no settings row
// has been persisted yet.
func DefaultSettings() Settings {
	return Settings{
		TaxRatePercent: decimal.RequireFromString("8.25"),
		USDToINRRate:   decimal.RequireFromString("83.25"),
	}
}
