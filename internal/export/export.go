// Package export renders item collections into downloadable documents
// (CSV, XLSX, PDF). All exporters share one column layout so the three
// formats stay in sync.
package export

import (
	"time"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
)

// columnHeaders is the shared column layout, in order.
var columnHeaders = []string{
	"Item ID",
	"Name",
	"Category",
	"Purchase Price",
	"Purchase Currency",
	"Additional Cost",
	"Additional Cost Currency",
	"Shipping Cost",
	"Shipping Currency",
	"Delivery Charge (US)",
	"Total INR",
	"Marketing Budget",
	"Margin %",
	"Margin Value",
	"Final INR (Budget + Margin)",
	"Final Price USD",
	"Created At",
}

// itemRow flattens one item into string cells matching columnHeaders.
func itemRow(item domain.Item) []string {
	return []string{
		item.ItemID,
		item.Name,
		string(item.Category),
		item.PurchasePrice.StringFixed(2),
		string(item.PurchaseCurrency),
		item.AdditionalCost.StringFixed(2),
		string(item.AdditionalCostCurrency),
		item.ShippingCost.StringFixed(2),
		string(item.ShippingCurrency),
		item.DeliveryChargeUS.StringFixed(2),
		item.TotalINR.StringFixed(2),
		item.MarketingBudget.StringFixed(2),
		item.MarginPercent.StringFixed(2),
		item.MarginValue.StringFixed(2),
		item.FinalINRWithBudgetAndMargin.StringFixed(2),
		item.FinalPriceUSD.StringFixed(2),
		item.CreatedAt.Format(time.RFC3339),
	}
}
