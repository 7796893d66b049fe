package domain

import "github.com/shopspring/decimal"

// ItemUpdateKind discriminates the closed set of partial updates an item accepts.
// The store layer never executes arbitrary field names.
type ItemUpdateKind string

const (
	UpdateRename       ItemUpdateKind = "RENAME"
	UpdateRecategorize ItemUpdateKind = "RECATEGORIZE"
	UpdateReprice      ItemUpdateKind = "REPRICE"
)

// RepriceInputs carries the replacement cost inputs for a reprice update.
// A reprice always recomputes every derived field with the current settings.
type RepriceInputs struct {
	PurchasePrice          decimal.Decimal
	PurchaseCurrency       Currency
	AdditionalCost         decimal.Decimal
	AdditionalCostCurrency Currency
	ShippingCost           decimal.Decimal
	ShippingCurrency       Currency
	DeliveryChargeUS       decimal.Decimal
}

// ItemUpdate is a tagged union: exactly one of the variant fields is meaningful,
// selected by Kind.
type ItemUpdate struct {
	Kind     ItemUpdateKind
	Name     string        // UpdateRename
	Category Category      // UpdateRecategorize
	Reprice  RepriceInputs // UpdateReprice
}
