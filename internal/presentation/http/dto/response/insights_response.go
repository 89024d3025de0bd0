package response

import (
	"github.com/sangkips/insights-api/internal/domain/enum"
	"github.com/sangkips/insights-api/internal/domain/insight"
)

// CategoryResponse describes one report column for clients building tables
type CategoryResponse struct {
	Key             string            `json:"key"`
	Label           string            `json:"label"`
	Kind            enum.CategoryKind `json:"kind"`
	HasTaxableTotal bool              `json:"has_taxable_total"`
	TracksPayments  bool              `json:"tracks_payments"`
}

// PartyTypeResponse lists the categories and range selectors of a party type
type PartyTypeResponse struct {
	PartyType   string             `json:"party_type"`
	GroupFilter string             `json:"group_filter"`
	PartyFilter string             `json:"party_filter"`
	Categories  []CategoryResponse `json:"categories"`
	DateRanges  []string           `json:"date_ranges"`
}

// NewPartyTypeResponse builds the metadata response for a party type
func NewPartyTypeResponse(pt insight.PartyType) PartyTypeResponse {
	categories := make([]CategoryResponse, 0, len(pt.Categories))
	for _, c := range pt.Categories {
		categories = append(categories, CategoryResponse{
			Key:             c.Key,
			Label:           c.Label,
			Kind:            c.Kind,
			HasTaxableTotal: c.HasTaxableTotal(),
			TracksPayments:  c.TracksPayments(),
		})
	}
	return PartyTypeResponse{
		PartyType:   pt.Key.String(),
		GroupFilter: pt.GroupColumn,
		PartyFilter: pt.Slug,
		Categories:  categories,
		DateRanges:  insight.NamedRanges(),
	}
}
