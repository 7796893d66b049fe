package export

import (
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/priceworks/price_calculator_app/internal/apperrors"
	"github.com/priceworks/price_calculator_app/internal/core/domain"
)

// pdfColumns is the condensed column set for the PDF table; the full layout
// does not fit a printable page.
var pdfColumns = []struct {
	header string
	width  float64
}{
	{"Name", 60},
	{"Category", 35},
	{"Total INR", 30},
	{"Margin %", 22},
	{"Final INR", 32},
	{"Final USD", 28},
	{"Created", 45},
}

// WritePDF renders the items as a landscape A4 table with repeated headers.
func WritePDF(w io.Writer, items []domain.Item) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Priced Items", false)

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 8, col.header, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 10, "Priced Items")
		pdf.Ln(12)
		writeHeader()
	})
	pdf.AddPage()

	for _, item := range items {
		row := itemRow(item)
		cells := []string{
			row[1],  // Name
			row[2],  // Category
			row[10], // Total INR
			row[12], // Margin %
			row[14], // Final INR
			row[15], // Final Price USD
			row[16], // Created At
		}
		for i, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return apperrors.NewAppError(500, "failed to render PDF", err)
	}
	return nil
}
