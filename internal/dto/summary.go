package dto

import (
	"github.com/shopspring/decimal"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
)

// CategoryTotalResponse is one per-category aggregation row.
type CategoryTotalResponse struct {
	Category  string          `json:"category"`
	ItemCount int             `json:"itemCount"`
	TotalINR  decimal.Decimal `json:"totalInr"`
}

// SummaryResponse defines the aggregated totals returned by the summary endpoint.
type SummaryResponse struct {
	ItemCount        int                     `json:"itemCount"`
	Subtotal         decimal.Decimal         `json:"subtotal"`
	TaxAmount        decimal.Decimal         `json:"taxAmount"`
	Total            decimal.Decimal         `json:"total"`
	AvgMarginPercent decimal.Decimal         `json:"avgMarginPercent"`
	AvgTotalINR      decimal.Decimal         `json:"avgTotalInr"`
	ByCategory       []CategoryTotalResponse `json:"byCategory"`
}

// ToSummaryResponse converts a domain.Summary to a SummaryResponse DTO.
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	byCategory := make([]CategoryTotalResponse, len(s.ByCategory))
	for i, ct := range s.ByCategory {
		byCategory[i] = CategoryTotalResponse{
			Category:  string(ct.Category),
			ItemCount: ct.ItemCount,
			TotalINR:  ct.TotalINR,
		}
	}
	return SummaryResponse{
		ItemCount:        s.ItemCount,
		Subtotal:         s.Subtotal,
		TaxAmount:        s.TaxAmount,
		Total:            s.Total,
		AvgMarginPercent: s.AvgMarginPercent,
		AvgTotalINR:      s.AvgTotalINR,
		ByCategory:       byCategory,
	}
}
