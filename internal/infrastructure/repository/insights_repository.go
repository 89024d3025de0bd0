package repository

import (
	"context"
	"fmt"

	"github.com/sangkips/insights-api/internal/domain/enum"
	domainRepo "github.com/sangkips/insights-api/internal/domain/repository"
	"github.com/sangkips/insights-api/internal/domain/insight"
	"gorm.io/gorm"
)

type insightsRepository struct {
	db *gorm.DB
}

// NewInsightsRepository creates a new insights repository
func NewInsightsRepository(db *gorm.DB) domainRepo.InsightsRepository {
	return &insightsRepository{db: db}
}

// Table and column names in these queries come from the static category
// descriptors in the insight package. Party codes and dates are always bound.

func (r *insightsRepository) Aggregate(ctx context.Context, pt insight.PartyType, c insight.Category, partyCode string, dr insight.DateRange) (insight.RawAggregate, error) {
	var result insight.RawAggregate

	query, args := aggregateQuery(pt, c, partyCode, dr)
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&result).Error; err != nil {
		return insight.RawAggregate{}, fmt.Errorf("aggregate %s: %w", c.Table, err)
	}
	return result, nil
}

func aggregateQuery(pt insight.PartyType, c insight.Category, partyCode string, dr insight.DateRange) (string, []interface{}) {
	start, end := dr.Start.Format(insight.DateLayout), dr.End.Format(insight.DateLayout)

	if c.Kind.IsPayment() {
		amount := "grand_total"
		if c.Kind == enum.CategoryKindPaymentEntry {
			amount = "paid_amount"
		}
		query := fmt.Sprintf(`
		SELECT
			COUNT(name) AS total_records,
			SUM(%s) AS total_amount
		FROM %s
		WHERE party_type = ? AND %s = ? AND doc_status = ? AND %s BETWEEN ? AND ?
	`, amount, c.Table, c.PartyColumn, c.DateColumn)
		return query, []interface{}{pt.Key, partyCode, enum.DocStatusSubmitted, start, end}
	}

	payments := ""
	if c.TracksPayments() {
		payments = `,
			SUM(grand_total - outstanding_amount) AS paid_amount,
			SUM(outstanding_amount) AS pending_amount`
	}
	query := fmt.Sprintf(`
		SELECT
			COUNT(name) AS total_records,
			SUM(total) AS total_taxable_amount,
			SUM(grand_total) AS total_amount,
			SUM(total_qty) AS total_qty%s
		FROM %s
		WHERE %s = ? AND doc_status = ? AND %s BETWEEN ? AND ?
	`, payments, c.Table, c.PartyColumn, c.DateColumn)
	return query, []interface{}{partyCode, enum.DocStatusSubmitted, start, end}
}

func (r *insightsRepository) LineItems(ctx context.Context, pt insight.PartyType, c insight.Category, partyCode string, dr insight.DateRange) ([]insight.LineItem, error) {
	if !c.Kind.IsItemized() {
		return nil, fmt.Errorf("%w: %s has no line items", insight.ErrUnsupportedCategory, c.Key)
	}

	pending := "0"
	if c.CompletedQtyColumn != "" {
		pending = fmt.Sprintf("COALESCE(SUM(i.qty - i.%s), 0)", c.CompletedQtyColumn)
	}

	query := fmt.Sprintf(`
		SELECT
			i.item_code AS item_code,
			COALESCE(MAX(i.item_name), '') AS item_name,
			COALESCE(SUM(i.qty), 0) AS qty,
			%s AS pending_qty,
			COALESCE(AVG(i.rate), 0) AS rate,
			COALESCE(SUM(i.amount), 0) AS amount
		FROM %s i
		JOIN %s d ON d.name = i.parent
		WHERE d.%s = ? AND d.doc_status = ? AND d.%s BETWEEN ? AND ?
		GROUP BY i.item_code
		ORDER BY i.item_code
	`, pending, c.ItemTable, c.Table, c.PartyColumn, c.DateColumn)

	var items []insight.LineItem
	err := r.db.WithContext(ctx).Raw(query,
		partyCode, enum.DocStatusSubmitted,
		dr.Start.Format(insight.DateLayout), dr.End.Format(insight.DateLayout),
	).Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("line items %s: %w", c.ItemTable, err)
	}
	return items, nil
}

func (r *insightsRepository) PaymentRequests(ctx context.Context, pt insight.PartyType, c insight.Category, partyCode string, dr insight.DateRange) ([]insight.PaymentRequestRow, error) {
	query := fmt.Sprintf(`
		SELECT
			name,
			COALESCE(payment_request_type, '') AS payment_request_type,
			%s AS transaction_date,
			COALESCE(reference_doctype, '') AS reference_doctype,
			COALESCE(reference_name, '') AS reference_name,
			COALESCE(grand_total, 0) AS grand_total
		FROM %s
		WHERE party_type = ? AND %s = ? AND doc_status = ? AND %s BETWEEN ? AND ?
		ORDER BY %s, name
	`, c.DateColumn, c.Table, c.PartyColumn, c.DateColumn, c.DateColumn)

	var rows []insight.PaymentRequestRow
	err := r.db.WithContext(ctx).Raw(query,
		pt.Key, partyCode, enum.DocStatusSubmitted,
		dr.Start.Format(insight.DateLayout), dr.End.Format(insight.DateLayout),
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("payment requests: %w", err)
	}
	return rows, nil
}

func (r *insightsRepository) PaymentEntries(ctx context.Context, pt insight.PartyType, c insight.Category, partyCode string, dr insight.DateRange) ([]insight.PaymentEntryRow, error) {
	query := fmt.Sprintf(`
		SELECT
			name,
			COALESCE(payment_type, '') AS payment_type,
			%s AS posting_date,
			COALESCE(mode_of_payment, '') AS mode_of_payment,
			COALESCE(unallocated_amount, 0) AS unallocated_amount,
			COALESCE(paid_amount, 0) AS paid_amount
		FROM %s
		WHERE party_type = ? AND %s = ? AND doc_status = ? AND %s BETWEEN ? AND ?
		ORDER BY %s, name
	`, c.DateColumn, c.Table, c.PartyColumn, c.DateColumn, c.DateColumn)

	var rows []insight.PaymentEntryRow
	err := r.db.WithContext(ctx).Raw(query,
		pt.Key, partyCode, enum.DocStatusSubmitted,
		dr.Start.Format(insight.DateLayout), dr.End.Format(insight.DateLayout),
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("payment entries: %w", err)
	}
	return rows, nil
}
