package insight

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sangkips/insights-api/pkg/money"
)

// RawAggregate is the single row returned by a category aggregate query.
// Every column is nullable: SUM over no rows yields NULL.
type RawAggregate struct {
	TotalRecords       sql.NullInt64
	TotalTaxableAmount decimal.NullDecimal
	TotalAmount        decimal.NullDecimal
	TotalQty           decimal.NullDecimal
	PaidAmount         decimal.NullDecimal
	PendingAmount      decimal.NullDecimal
}

// Aggregate is a RawAggregate with nulls coerced to zero
type Aggregate struct {
	TotalRecords       int64
	TotalTaxableAmount decimal.Decimal
	TotalAmount        decimal.Decimal
	TotalQty           decimal.Decimal
	PaidAmount         decimal.Decimal
	PendingAmount      decimal.Decimal
}

// Normalize replaces every NULL with zero
func (r RawAggregate) Normalize() Aggregate {
	return Aggregate{
		TotalRecords:       nullInt(r.TotalRecords),
		TotalTaxableAmount: nullDecimal(r.TotalTaxableAmount),
		TotalAmount:        nullDecimal(r.TotalAmount),
		TotalQty:           nullDecimal(r.TotalQty),
		PaidAmount:         nullDecimal(r.PaidAmount),
		PendingAmount:      nullDecimal(r.PendingAmount),
	}
}

// Active reports whether any document matched
func (a Aggregate) Active() bool {
	return a.TotalRecords > 0
}

func nullInt(v sql.NullInt64) int64 {
	if !v.Valid {
		return 0
	}
	return v.Int64
}

func nullDecimal(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

// CategorySummary is the display-ready rollup of one category for one party
type CategorySummary struct {
	TotalRecords       int64   `json:"total_records"`
	TotalAmount        string  `json:"total_amount"`
	TotalQty           int64   `json:"total_qty"`
	PaidAmount         string  `json:"paid_amount"`
	PendingAmount      string  `json:"pending_amount"`
	TotalTaxableAmount *string `json:"total_taxable_amount,omitempty"`
}

// FormatSection renders an aggregate for display. It returns nil for an
// inactive category so the section serializes as null.
func FormatSection(c Category, a Aggregate, f money.Formatter) *CategorySummary {
	if !a.Active() {
		return nil
	}

	s := &CategorySummary{
		TotalRecords:  a.TotalRecords,
		TotalAmount:   f.Money(a.TotalAmount),
		TotalQty:      a.TotalQty.IntPart(),
		PaidAmount:    f.Money(a.PaidAmount),
		PendingAmount: f.Money(a.PendingAmount),
	}
	if c.HasTaxableTotal() {
		taxable := f.Money(a.TotalTaxableAmount)
		s.TotalTaxableAmount = &taxable
	}
	return s
}

// PartyReport is the per-party result of an insights query
type PartyReport struct {
	PartyType   string                      `json:"party_type"`
	PartyCode   string                      `json:"party_code"`
	DisplayName string                      `json:"display_name"`
	Phone       *string                     `json:"phone"`
	Email       *string                     `json:"email"`
	Sections    map[string]*CategorySummary `json:"sections"`
}

// HasActivity reports whether at least one section is populated
func (r PartyReport) HasActivity() bool {
	for _, s := range r.Sections {
		if s != nil {
			return true
		}
	}
	return false
}

// SummaryTotals carries the party-level figures a client already holds
// when it asks for a drill-down. They populate the footer quantity cells.
type SummaryTotals struct {
	TotalRecords int64           `json:"total_records"`
	TotalQty     decimal.Decimal `json:"total_qty"`
}

// LineItem is one item-code group of an itemized category
type LineItem struct {
	ItemCode   string
	ItemName   string
	Qty        decimal.Decimal
	PendingQty decimal.Decimal
	Rate       decimal.Decimal
	Amount     decimal.Decimal
}

// PaymentRequestRow is one submitted payment request
type PaymentRequestRow struct {
	Name               string
	PaymentRequestType string
	TransactionDate    time.Time
	ReferenceDoctype   string
	ReferenceName      string
	GrandTotal         decimal.Decimal
}

// PaymentEntryRow is one submitted payment entry
type PaymentEntryRow struct {
	Name              string
	PaymentType       string
	PostingDate       time.Time
	ModeOfPayment     string
	UnallocatedAmount decimal.Decimal
	PaidAmount        decimal.Decimal
}
