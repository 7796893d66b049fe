package models

import "github.com/shopspring/decimal"

// Settings is the database representation of the singleton settings row.
type Settings struct {
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	USDToINRRate   decimal.Decimal `json:"usdToInrRate"`
	AuditFields
}
