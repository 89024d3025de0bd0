package insight

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/insights-api/pkg/money"
)

func dec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestRawAggregate_NormalizeNulls(t *testing.T) {
	a := RawAggregate{}.Normalize()

	assert.Equal(t, int64(0), a.TotalRecords)
	assert.True(t, a.TotalAmount.IsZero())
	assert.True(t, a.TotalTaxableAmount.IsZero())
	assert.True(t, a.TotalQty.IsZero())
	assert.True(t, a.PaidAmount.IsZero())
	assert.True(t, a.PendingAmount.IsZero())
	assert.False(t, a.Active())
}

func TestFormatSection_InactiveIsNil(t *testing.T) {
	order, err := Customer.Category("sales_order")
	require.NoError(t, err)

	assert.Nil(t, FormatSection(order, RawAggregate{}.Normalize(), money.DefaultFormatter()))

	// a zero count with stray sums is still inactive
	raw := RawAggregate{TotalRecords: sql.NullInt64{Int64: 0, Valid: true}, TotalAmount: dec("10")}
	assert.Nil(t, FormatSection(order, raw.Normalize(), money.DefaultFormatter()))
}

func TestFormatSection_Order(t *testing.T) {
	order, err := Customer.Category("sales_order")
	require.NoError(t, err)

	raw := RawAggregate{
		TotalRecords:       sql.NullInt64{Int64: 1, Valid: true},
		TotalTaxableAmount: dec("450"),
		TotalAmount:        dec("500"),
		TotalQty:           dec("5.75"),
	}

	s := FormatSection(order, raw.Normalize(), money.DefaultFormatter())
	require.NotNil(t, s)

	assert.Equal(t, int64(1), s.TotalRecords)
	assert.Equal(t, "500.00", s.TotalAmount)
	assert.Equal(t, int64(5), s.TotalQty)
	assert.Equal(t, "0.00", s.PaidAmount)
	assert.Equal(t, "0.00", s.PendingAmount)
	require.NotNil(t, s.TotalTaxableAmount)
	assert.Equal(t, "450.00", *s.TotalTaxableAmount)
}

func TestFormatSection_PaymentOmitsTaxable(t *testing.T) {
	entry, err := Supplier.Category("Payment Entry")
	require.NoError(t, err)

	raw := RawAggregate{
		TotalRecords: sql.NullInt64{Int64: 2, Valid: true},
		TotalAmount:  dec("1200"),
	}

	s := FormatSection(entry, raw.Normalize(), money.DefaultFormatter())
	require.NotNil(t, s)
	assert.Nil(t, s.TotalTaxableAmount)

	body, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "total_taxable_amount")
	assert.Contains(t, string(body), `"total_amount":"1,200.00"`)
}

func TestFormatSection_BillingPaidPlusPendingEqualsTotal(t *testing.T) {
	invoice, err := Customer.Category("sales_invoice")
	require.NoError(t, err)

	raw := RawAggregate{
		TotalRecords:       sql.NullInt64{Int64: 3, Valid: true},
		TotalTaxableAmount: dec("900"),
		TotalAmount:        dec("1044.50"),
		TotalQty:           dec("12"),
		PaidAmount:         dec("744.25"),
		PendingAmount:      dec("300.25"),
	}
	a := raw.Normalize()

	assert.True(t, a.PaidAmount.Add(a.PendingAmount).Equal(a.TotalAmount))

	s := FormatSection(invoice, a, money.DefaultFormatter())
	require.NotNil(t, s)
	assert.Equal(t, "744.25", s.PaidAmount)
	assert.Equal(t, "300.25", s.PendingAmount)
	assert.Equal(t, "1,044.50", s.TotalAmount)
}

func TestPartyReport_JSONKeepsNullSections(t *testing.T) {
	r := PartyReport{
		PartyType:   "Customer",
		PartyCode:   "CUST-001",
		DisplayName: "Acme",
		Sections: map[string]*CategorySummary{
			"sales_order":   {TotalRecords: 1, TotalAmount: "500.00"},
			"delivery_note": nil,
		},
	}
	assert.True(t, r.HasActivity())

	body, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"delivery_note":null`)
	assert.Contains(t, string(body), `"phone":null`)

	r.Sections["sales_order"] = nil
	assert.False(t, r.HasActivity())
}

func TestSummaryTotals_UnmarshalFromSummary(t *testing.T) {
	var totals SummaryTotals
	err := json.Unmarshal([]byte(`{"total_records":2,"total_qty":5,"total_amount":"70.00"}`), &totals)
	require.NoError(t, err)

	assert.Equal(t, int64(2), totals.TotalRecords)
	assert.True(t, totals.TotalQty.Equal(decimal.NewFromInt(5)))
}
