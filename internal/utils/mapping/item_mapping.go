package mapping

import (
	"github.com/priceworks/price_calculator_app/internal/core/domain"
	"github.com/priceworks/price_calculator_app/internal/models"
)

// ToModelItem converts a domain Item to a model Item.
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:                      d.ItemID,
		Name:                        d.Name,
		Category:                    string(d.Category),
		PurchasePrice:               d.PurchasePrice,
		PurchaseCurrency:            string(d.PurchaseCurrency),
		AdditionalCost:              d.AdditionalCost,
		AdditionalCostCurrency:      string(d.AdditionalCostCurrency),
		ShippingCost:                d.ShippingCost,
		ShippingCurrency:            string(d.ShippingCurrency),
		DeliveryChargeUS:            d.DeliveryChargeUS,
		TotalINR:                    d.TotalINR,
		MarketingBudget:             d.MarketingBudget,
		MarginPercent:               d.MarginPercent,
		MarginValue:                 d.MarginValue,
		FinalINRWithBudgetAndMargin: d.FinalINRWithBudgetAndMargin,
		FinalPriceUSD:               d.FinalPriceUSD,
		AuditFields:                 ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model Item to a domain Item.
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:                      m.ItemID,
		Name:                        m.Name,
		Category:                    domain.Category(m.Category),
		PurchasePrice:               m.PurchasePrice,
		PurchaseCurrency:            domain.Currency(m.PurchaseCurrency),
		AdditionalCost:              m.AdditionalCost,
		AdditionalCostCurrency:      domain.Currency(m.AdditionalCostCurrency),
		ShippingCost:                m.ShippingCost,
		ShippingCurrency:            domain.Currency(m.ShippingCurrency),
		DeliveryChargeUS:            m.DeliveryChargeUS,
		TotalINR:                    m.TotalINR,
		MarketingBudget:             m.MarketingBudget,
		MarginPercent:               m.MarginPercent,
		MarginValue:                 m.MarginValue,
		FinalINRWithBudgetAndMargin: m.FinalINRWithBudgetAndMargin,
		FinalPriceUSD:               m.FinalPriceUSD,
		AuditFields:                 ToDomainAuditFields(m.AuditFields),
	}
}
