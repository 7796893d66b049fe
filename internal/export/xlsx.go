package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/priceworks/price_calculator_app/internal/apperrors"
	"github.com/priceworks/price_calculator_app/internal/core/domain"
)

const xlsxSheetName = "Items"

// WriteXLSX renders the items as a single-sheet Excel workbook.
func WriteXLSX(w io.Writer, items []domain.Item) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheetName)
	if err != nil {
		return apperrors.NewAppError(500, "failed to create sheet", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return apperrors.NewAppError(500, "failed to remove default sheet", err)
	}

	headerCells := make([]interface{}, len(columnHeaders))
	for i, h := range columnHeaders {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(xlsxSheetName, "A1", &headerCells); err != nil {
		return apperrors.NewAppError(500, "failed to write header row", err)
	}

	for i, item := range items {
		row := itemRow(item)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperrors.NewAppError(500, "failed to compute cell name", err)
		}
		if err := f.SetSheetRow(xlsxSheetName, cell, &cells); err != nil {
			return apperrors.NewAppError(500, "failed to write item row", err)
		}
	}

	if err := f.Write(w); err != nil {
		return apperrors.NewAppError(500, "failed to write workbook", err)
	}
	return nil
}
