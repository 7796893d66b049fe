package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priceworks/price_calculator_app/internal/apperrors"
	"github.com/priceworks/price_calculator_app/internal/core/domain"
	"github.com/priceworks/price_calculator_app/internal/core/pricing"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func settingsWithRate(rate string) domain.Settings {
	return domain.Settings{
		TaxRatePercent: dec("8.25"),
		USDToINRRate:   dec(rate),
	}
}

func TestConvert_Identity(t *testing.T) {
	amount := dec("123.45")
	for _, curr := range []domain.Currency{domain.USD, domain.INR} {
		got, err := pricing.Convert(amount, curr, curr, dec("83.25"))
		require.NoError(t, err)
		assert.True(t, got.Equal(amount), "identity conversion must not change the amount")
	}
}

func TestConvert_USDToINR(t *testing.T) {
	got, err := pricing.Convert(dec("15"), domain.USD, domain.INR, dec("83.25"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("1248.75")))
}

func TestConvert_RoundTrip(t *testing.T) {
	rate := dec("83.25")
	amount := dec("4217.39")

	inr, err := pricing.Convert(amount, domain.USD, domain.INR, rate)
	require.NoError(t, err)
	back, err := pricing.Convert(inr, domain.INR, domain.USD, rate)
	require.NoError(t, err)

	diff := back.Sub(amount).Abs()
	assert.True(t, diff.LessThan(dec("0.01")), "round trip drifted by %s", diff)
}

func TestConvert_NonPositiveRate(t *testing.T) {
	for _, rate := range []string{"0", "-1.5"} {
		_, err := pricing.Convert(dec("100"), domain.INR, domain.USD, dec(rate))
		assert.ErrorIs(t, err, apperrors.ErrInvalidRate, "rate %s", rate)
	}
}

func TestConvert_UnsupportedCurrency(t *testing.T) {
	_, err := pricing.Convert(dec("100"), domain.Currency("EUR"), domain.INR, dec("83.25"))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)
}

// inrOnlyInputs builds inputs whose INR total is exactly the purchase price.
func inrOnlyInputs(purchase string) pricing.Inputs {
	return pricing.Inputs{
		PurchasePrice:          dec(purchase),
		PurchaseCurrency:       domain.INR,
		AdditionalCost:         decimal.Zero,
		AdditionalCostCurrency: domain.INR,
		ShippingCost:           decimal.Zero,
		ShippingCurrency:       domain.INR,
		DeliveryChargeUS:       decimal.Zero,
	}
}

func TestPriceItem_MarginTierBoundaries(t *testing.T) {
	tests := []struct {
		totalINR      string
		marginPercent string
	}{
		{"5000.00", "50"},
		{"5000.01", "40"},
		{"10000.00", "40"},
		{"10000.01", "30"},
	}

	settings := settingsWithRate("83.25")
	for _, tt := range tests {
		derived, err := pricing.PriceItem(inrOnlyInputs(tt.totalINR), settings)
		require.NoError(t, err)
		assert.True(t, derived.TotalINR.Equal(dec(tt.totalINR)))
		assert.True(t, derived.MarginPercent.Equal(dec(tt.marginPercent)),
			"total %s: want margin %s%%, got %s%%", tt.totalINR, tt.marginPercent, derived.MarginPercent)
	}
}

func TestPriceItem_MarketingBudgetIsTenPercent(t *testing.T) {
	derived, err := pricing.PriceItem(inrOnlyInputs("4321.00"), settingsWithRate("83.25"))
	require.NoError(t, err)
	assert.True(t, derived.MarketingBudget.Equal(dec("432.10")))
}

func TestPriceItem_WorkedScenario(t *testing.T) {
	// Purchase 4000 INR + additional 150 INR + shipping 1000 INR + delivery $15
	// at 83.25 gives a total of 6398.75, landing in the 40% tier.
	in := pricing.Inputs{
		PurchasePrice:          dec("4000"),
		PurchaseCurrency:       domain.INR,
		AdditionalCost:         dec("150"),
		AdditionalCostCurrency: domain.INR,
		ShippingCost:           dec("1000"),
		ShippingCurrency:       domain.INR,
		DeliveryChargeUS:       dec("15"),
	}

	derived, err := pricing.PriceItem(in, settingsWithRate("83.25"))
	require.NoError(t, err)

	assert.True(t, derived.TotalINR.Equal(dec("6398.75")), "totalINR = %s", derived.TotalINR)
	assert.True(t, derived.MarketingBudget.Equal(dec("639.88")), "marketingBudget = %s", derived.MarketingBudget)
	assert.True(t, derived.MarginPercent.Equal(dec("40")))
	assert.True(t, derived.MarginValue.Equal(dec("2559.50")), "marginValue = %s", derived.MarginValue)
	assert.True(t, derived.FinalINRWithBudgetAndMargin.Equal(dec("9598.13")), "finalINR = %s", derived.FinalINRWithBudgetAndMargin)
	// 9598.13 / 83.25 = 115.2928..., which rounds to 115.29.
	assert.True(t, derived.FinalPriceUSD.Equal(dec("115.29")), "finalUSD = %s", derived.FinalPriceUSD)
}

func TestPriceItem_USDInputsAreConverted(t *testing.T) {
	in := pricing.Inputs{
		PurchasePrice:          dec("10"),
		PurchaseCurrency:       domain.USD,
		AdditionalCost:         dec("150"),
		AdditionalCostCurrency: domain.INR,
		ShippingCost:           dec("5"),
		ShippingCurrency:       domain.USD,
		DeliveryChargeUS:       dec("15"),
	}

	derived, err := pricing.PriceItem(in, settingsWithRate("80"))
	require.NoError(t, err)
	// 10*80 + 150 + 5*80 + 15*80 = 2550
	assert.True(t, derived.TotalINR.Equal(dec("2550.00")), "totalINR = %s", derived.TotalINR)
	assert.True(t, derived.MarginPercent.Equal(dec("50")))
}

func TestPriceItem_ZeroRateYieldsZeroUSD(t *testing.T) {
	derived, err := pricing.PriceItem(inrOnlyInputs("5000"), settingsWithRate("0"))
	require.NoError(t, err)
	assert.True(t, derived.FinalPriceUSD.IsZero(), "finalUSD must resolve to 0, got %s", derived.FinalPriceUSD)
}

func TestPriceItem_UnsupportedCurrency(t *testing.T) {
	in := inrOnlyInputs("1000")
	in.ShippingCurrency = domain.Currency("GBP")
	_, err := pricing.PriceItem(in, settingsWithRate("83.25"))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)
}

func TestSummarize_Empty(t *testing.T) {
	summary := pricing.Summarize(nil, settingsWithRate("83.25"))

	assert.Zero(t, summary.ItemCount)
	assert.True(t, summary.Subtotal.IsZero())
	assert.True(t, summary.TaxAmount.IsZero())
	assert.True(t, summary.Total.IsZero())
	assert.True(t, summary.AvgMarginPercent.IsZero())
	assert.True(t, summary.AvgTotalINR.IsZero())
	assert.Empty(t, summary.ByCategory)
}

func TestSummarize_Totals(t *testing.T) {
	items := []domain.Item{
		{Category: domain.CategoryBooks, TotalINR: dec("4000.00"), MarginValue: dec("2000.00")},
		{Category: domain.CategoryToys, TotalINR: dec("6000.00"), MarginValue: dec("2400.00")},
	}

	summary := pricing.Summarize(items, settingsWithRate("83.25"))

	assert.Equal(t, 2, summary.ItemCount)
	assert.True(t, summary.Subtotal.Equal(dec("10000.00")))
	assert.True(t, summary.TaxAmount.Equal(dec("825.00")), "tax = %s", summary.TaxAmount)
	assert.True(t, summary.Total.Equal(dec("10825.00")))
	assert.True(t, summary.AvgMarginPercent.Equal(dec("44.00")), "avgMargin = %s", summary.AvgMarginPercent)
	assert.True(t, summary.AvgTotalINR.Equal(dec("5000.00")))

	require.Len(t, summary.ByCategory, 2)
	assert.Equal(t, domain.CategoryBooks, summary.ByCategory[0].Category)
	assert.True(t, summary.ByCategory[0].TotalINR.Equal(dec("4000.00")))
	assert.Equal(t, domain.CategoryToys, summary.ByCategory[1].Category)
}
