package mapping

import (
	"github.com/priceworks/price_calculator_app/internal/core/domain"
	"github.com/priceworks/price_calculator_app/internal/models"
)

// ToModelSettings converts domain Settings to model Settings.
func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		TaxRatePercent: d.TaxRatePercent,
		USDToINRRate:   d.USDToINRRate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSettings converts model Settings to domain Settings.
func ToDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		TaxRatePercent: m.TaxRatePercent,
		USDToINRRate:   m.USDToINRRate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
