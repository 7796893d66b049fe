package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
)

func sampleItems() []domain.Item {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Item{
		{
			ItemID:                      "item-1",
			Name:                        "Wireless Mouse",
			Category:                    domain.CategoryElectronics,
			PurchasePrice:               decimal.NewFromInt(15),
			PurchaseCurrency:            domain.USD,
			AdditionalCostCurrency:      domain.INR,
			ShippingCost:                decimal.NewFromInt(100),
			ShippingCurrency:            domain.INR,
			DeliveryChargeUS:            decimal.NewFromInt(2),
			TotalINR:                    decimal.RequireFromString("1515.25"),
			MarketingBudget:             decimal.RequireFromString("151.53"),
			MarginPercent:               decimal.NewFromInt(50),
			MarginValue:                 decimal.RequireFromString("757.63"),
			FinalINRWithBudgetAndMargin: decimal.RequireFromString("2424.41"),
			FinalPriceUSD:               decimal.RequireFromString("29.12"),
			AuditFields: domain.AuditFields{
				CreatedAt:     created,
				LastUpdatedAt: created,
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleItems()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, columnHeaders, records[0])
	row := records[1]
	assert.Equal(t, "item-1", row[0])
	assert.Equal(t, "Wireless Mouse", row[1])
	assert.Equal(t, "Electronics", row[2])
	assert.Equal(t, "15.00", row[3])
	assert.Equal(t, "USD", row[4])
	assert.Equal(t, "1515.25", row[10])
	assert.Equal(t, "50.00", row[12])
	assert.Equal(t, "2424.41", row[14])
	assert.Equal(t, "29.12", row[15])
	assert.Equal(t, "2025-06-01T12:00:00Z", row[16])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, columnHeaders, records[0])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleItems()))

	// XLSX files are ZIP archives.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleItems()))

	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
	assert.Greater(t, buf.Len(), 500)
}

func TestItemRowMatchesHeaderWidth(t *testing.T) {
	row := itemRow(sampleItems()[0])
	assert.Len(t, row, len(columnHeaders))
}
