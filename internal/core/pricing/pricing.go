// Package pricing implements the resale price derivation: currency conversion
// between USD and INR, the tiered margin lookup, and the summary reduction.
// Everything here is pure; settings are passed explicitly on every call and no
// state is retained between invocations.
//
// Rounding policy: every stored derived value is rounded to two decimal places
// immediately after it is computed, using round-half-away-from-zero
// (decimal.Round). Values are never re-rounded on read.
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/priceworks/price_calculator_app/internal/apperrors"
	"github.com/priceworks/price_calculator_app/internal/core/domain"
)

var (
	marketingBudgetRate = decimal.RequireFromString("0.10")

	// Margin tier boundaries on the rounded INR total. Boundaries are inclusive
	// on the lower tier: 5000.00 takes 50%, 10000.00 takes 40%.
	tierLowBound  = decimal.NewFromInt(5000)
	tierMidBound  = decimal.NewFromInt(10000)
	marginLowPct  = decimal.NewFromInt(50)
	marginMidPct  = decimal.NewFromInt(40)
	marginHighPct = decimal.NewFromInt(30)

	hundred = decimal.NewFromInt(100)
)

// Convert converts an amount between the two supported currencies at the given
// USD to INR rate. Same-currency conversion is the identity and performs no
// rounding. An INR to USD conversion with a non-positive rate is rejected rather
// than silently dividing.
func Convert(amount decimal.Decimal, from, to domain.Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	switch {
	case from == domain.USD && to == domain.INR:
		return amount.Mul(rate), nil
	case from == domain.INR && to == domain.USD:
		if rate.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, apperrors.ErrInvalidRate
		}
		return amount.Div(rate), nil
	default:
		return decimal.Zero, apperrors.ErrUnsupportedCurrency
	}
}

// Inputs are the raw cost components of an item, before derivation.
type Inputs struct {
	PurchasePrice          decimal.Decimal
	PurchaseCurrency       domain.Currency
	AdditionalCost         decimal.Decimal
	AdditionalCostCurrency domain.Currency
	ShippingCost           decimal.Decimal
	ShippingCurrency       domain.Currency
	DeliveryChargeUS       decimal.Decimal // denominated in USD
}

// Derived holds every computed pricing field, each rounded to 2 decimal places.
type Derived struct {
	TotalINR                    decimal.Decimal
	MarketingBudget             decimal.Decimal
	MarginPercent               decimal.Decimal
	MarginValue                 decimal.Decimal
	FinalINRWithBudgetAndMargin decimal.Decimal
	FinalPriceUSD               decimal.Decimal
}

// PriceItem derives the full set of pricing fields for one item. It fails only
// when an input carries an unsupported currency; amount validation (e.g.
// purchase price > 0) is the caller's concern. A non-positive rate yields a
// FinalPriceUSD of zero instead of a division fault; the settings boundary is
// expected to have rejected such a rate already.
func PriceItem(in Inputs, settings domain.Settings) (Derived, error) {
	rate := settings.USDToINRRate

	totalINR := decimal.Zero
	for _, part := range []struct {
		amount   decimal.Decimal
		currency domain.Currency
	}{
		{in.PurchasePrice, in.PurchaseCurrency},
		{in.AdditionalCost, in.AdditionalCostCurrency},
		{in.ShippingCost, in.ShippingCurrency},
	} {
		inINR, err := Convert(part.amount, part.currency, domain.INR, rate)
		if err != nil {
			return Derived{}, err
		}
		totalINR = totalINR.Add(inINR)
	}

	// The US delivery charge is always USD.
	totalINR = totalINR.Add(in.DeliveryChargeUS.Mul(rate))
	totalINR = totalINR.Round(2)

	marketingBudget := totalINR.Mul(marketingBudgetRate).Round(2)

	marginPercent := marginPercentFor(totalINR)
	marginValue := totalINR.Mul(marginPercent).Div(hundred).Round(2)

	finalINR := totalINR.Add(marketingBudget).Add(marginValue).Round(2)

	finalUSD := decimal.Zero
	if rate.GreaterThan(decimal.Zero) {
		finalUSD = finalINR.DivRound(rate, 2)
	}

	return Derived{
		TotalINR:                    totalINR,
		MarketingBudget:             marketingBudget,
		MarginPercent:               marginPercent,
		MarginValue:                 marginValue,
		FinalINRWithBudgetAndMargin: finalINR,
		FinalPriceUSD:               finalUSD,
	}, nil
}

// marginPercentFor selects the margin tier for a total INR cost.
func marginPercentFor(totalINR decimal.Decimal) decimal.Decimal {
	switch {
	case totalINR.LessThanOrEqual(tierLowBound):
		return marginLowPct
	case totalINR.LessThanOrEqual(tierMidBound):
		return marginMidPct
	default:
		return marginHighPct
	}
}

// Summarize reduces a set of items to subtotal, tax, total and margin averages
// against the given settings. The empty set yields all zeros.
func Summarize(items []domain.Item, settings domain.Settings) domain.Summary {
	subtotal := decimal.Zero
	totalMargin := decimal.Zero
	perCategory := map[domain.Category]*domain.CategoryTotal{}

	for _, item := range items {
		subtotal = subtotal.Add(item.TotalINR)
		totalMargin = totalMargin.Add(item.MarginValue)

		ct, ok := perCategory[item.Category]
		if !ok {
			ct = &domain.CategoryTotal{Category: item.Category, TotalINR: decimal.Zero}
			perCategory[item.Category] = ct
		}
		ct.ItemCount++
		ct.TotalINR = ct.TotalINR.Add(item.TotalINR)
	}

	taxAmount := subtotal.Mul(settings.TaxRatePercent).Div(hundred).Round(2)
	total := subtotal.Add(taxAmount)

	avgMarginPercent := decimal.Zero
	if subtotal.GreaterThan(decimal.Zero) {
		avgMarginPercent = totalMargin.Div(subtotal).Mul(hundred).Round(2)
	}

	avgTotalINR := decimal.Zero
	if len(items) > 0 {
		avgTotalINR = subtotal.DivRound(decimal.NewFromInt(int64(len(items))), 2)
	}

	byCategory := make([]domain.CategoryTotal, 0, len(perCategory))
	for _, ct := range perCategory {
		byCategory = append(byCategory, *ct)
	}
	sort.Slice(byCategory, func(i, j int) bool {
		return byCategory[i].Category < byCategory[j].Category
	})

	return domain.Summary{
		ItemCount:        len(items),
		Subtotal:         subtotal,
		TaxAmount:        taxAmount,
		Total:            total,
		AvgMarginPercent: avgMarginPercent,
		AvgTotalINR:      avgTotalINR,
		ByCategory:       byCategory,
	}
}
