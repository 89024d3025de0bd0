package request

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/insights-api/internal/domain/insight"
)

func TestInsightsFilters_ToFilter(t *testing.T) {
	var f InsightsFilters
	err := json.Unmarshal([]byte(`{
		"date_range": "Select Date Range",
		"selected_date_range": ["2024-01-01", "2024-01-31"],
		"customer_group": "Retail",
		"supplier_group": "Raw Material",
		"customer": ["C-1", "C-2"],
		"supplier": "S-1"
	}`), &f)
	require.NoError(t, err)

	customer := f.ToFilter(insight.Customer)
	assert.Equal(t, "Retail", customer.Group)
	assert.Equal(t, []string{"C-1", "C-2"}, customer.Parties)
	assert.Equal(t, []string{"2024-01-01", "2024-01-31"}, customer.SelectedDateRange)

	supplier := f.ToFilter(insight.Supplier)
	assert.Equal(t, "Raw Material", supplier.Group)
	assert.Equal(t, []string{"S-1"}, supplier.Parties)
}

func TestPartyCodes_EmptyValues(t *testing.T) {
	var f InsightsFilters
	require.NoError(t, json.Unmarshal([]byte(`{"customer": "", "supplier": null}`), &f))

	assert.Nil(t, f.Customer)
	assert.Nil(t, f.Supplier)

	assert.Error(t, json.Unmarshal([]byte(`{"customer": 42}`), &f))
}

func TestDetailsRequest_DecodeObjectsAndStrings(t *testing.T) {
	tests := map[string]string{
		"objects": `{"doctype":"Sales Order","details":{"total_records":1,"total_qty":5},"filters":{"date_range":"Last Week"}}`,
		"strings": `{"doctype":"Sales Order","details":"{\"total_records\":1,\"total_qty\":5}","filters":"{\"date_range\":\"Last Week\"}"}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var req DetailsRequest
			require.NoError(t, json.Unmarshal([]byte(body), &req))

			totals, filters, err := req.Decode()
			require.NoError(t, err)

			assert.Equal(t, int64(1), totals.TotalRecords)
			assert.True(t, totals.TotalQty.Equal(decimal.NewFromInt(5)))
			assert.Equal(t, insight.RangeLastWeek, filters.DateRange)
		})
	}
}

func TestDetailsRequest_DecodeMissingParts(t *testing.T) {
	req := DetailsRequest{Doctype: "Payment Entry"}

	totals, filters, err := req.Decode()
	require.NoError(t, err)
	assert.Zero(t, totals.TotalRecords)
	assert.Empty(t, filters.DateRange)
}

func TestDetailsRequest_DecodeMalformed(t *testing.T) {
	req := DetailsRequest{Doctype: "Sales Order", Filters: json.RawMessage(`"{not json"`)}

	_, _, err := req.Decode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filters")
}
