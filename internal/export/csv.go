package export

import (
	"encoding/csv"
	"io"

	"github.com/priceworks/price_calculator_app/internal/apperrors"
	"github.com/priceworks/price_calculator_app/internal/core/domain"
)

// WriteCSV streams the items as a CSV document with a header row.
func WriteCSV(w io.Writer, items []domain.Item) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columnHeaders); err != nil {
		return apperrors.NewAppError(500, "failed to write CSV header", err)
	}
	for _, item := range items {
		if err := cw.Write(itemRow(item)); err != nil {
			return apperrors.NewAppError(500, "failed to write CSV row", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.NewAppError(500, "failed to flush CSV", err)
	}
	return nil
}
