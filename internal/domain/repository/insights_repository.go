package repository

import (
	"context"

	"github.com/sangkips/insights-api/internal/domain/insight"
)

// InsightsRepository defines the aggregation and drill-down queries over
// submitted transactional documents. Every query is scoped to one party,
// one category and an inclusive date window.
type InsightsRepository interface {
	// Aggregate returns the single rollup row for a category
	Aggregate(ctx context.Context, pt insight.PartyType, c insight.Category, partyCode string, r insight.DateRange) (insight.RawAggregate, error)

	// LineItems returns item-code groups for an itemized category
	LineItems(ctx context.Context, pt insight.PartyType, c insight.Category, partyCode string, r insight.DateRange) ([]insight.LineItem, error)

	// PaymentRequests lists individual payment requests
	PaymentRequests(ctx context.Context, pt insight.PartyType, c insight.Category, partyCode string, r insight.DateRange) ([]insight.PaymentRequestRow, error)

	// PaymentEntries lists individual payment entries
	PaymentEntries(ctx context.Context, pt insight.PartyType, c insight.Category, partyCode string, r insight.DateRange) ([]insight.PaymentEntryRow, error)
}
