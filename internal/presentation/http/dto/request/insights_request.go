package request

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sangkips/insights-api/internal/application/service"
	"github.com/sangkips/insights-api/internal/domain/enum"
	"github.com/sangkips/insights-api/internal/domain/insight"
)

// PartyCodes accepts either a single code or a list of codes
type PartyCodes []string

func (p *PartyCodes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var code string
		if err := json.Unmarshal(data, &code); err != nil {
			return err
		}
		if code == "" {
			*p = nil
		} else {
			*p = PartyCodes{code}
		}
		return nil
	}
	var codes []string
	if err := json.Unmarshal(data, &codes); err != nil {
		return err
	}
	*p = codes
	return nil
}

// InsightsFilters is the filter payload for summaries and drill-downs
type InsightsFilters struct {
	DateRange         string     `json:"date_range"`
	SelectedDateRange []string   `json:"selected_date_range"`
	CustomerGroup     string     `json:"customer_group"`
	SupplierGroup     string     `json:"supplier_group"`
	Customer          PartyCodes `json:"customer"`
	Supplier          PartyCodes `json:"supplier"`
}

// ToFilter picks the group and party fields that belong to the party type
func (f InsightsFilters) ToFilter(pt insight.PartyType) service.InsightsFilter {
	filter := service.InsightsFilter{
		DateRange:         f.DateRange,
		SelectedDateRange: f.SelectedDateRange,
	}
	switch pt.Key {
	case enum.PartyTypeCustomer:
		filter.Group = f.CustomerGroup
		filter.Parties = f.Customer
	case enum.PartyTypeSupplier:
		filter.Group = f.SupplierGroup
		filter.Parties = f.Supplier
	}
	return filter
}

// DetailsRequest asks for the drill-down table behind one category summary.
// Details and Filters may be JSON objects or JSON-encoded strings.
type DetailsRequest struct {
	Doctype string          `json:"doctype" binding:"required"`
	Details json.RawMessage `json:"details"`
	Filters json.RawMessage `json:"filters"`
}

// Decode unpacks the embedded details and filters
func (r DetailsRequest) Decode() (insight.SummaryTotals, InsightsFilters, error) {
	var totals insight.SummaryTotals
	var filters InsightsFilters

	if err := DecodeEmbedded(r.Details, &totals); err != nil {
		return totals, filters, fmt.Errorf("details: %w", err)
	}
	if err := DecodeEmbedded(r.Filters, &filters); err != nil {
		return totals, filters, fmt.Errorf("filters: %w", err)
	}
	return totals, filters, nil
}

// DecodeEmbedded decodes raw into dst. raw may hold the object itself or a
// string containing its JSON encoding. Empty input leaves dst untouched.
func DecodeEmbedded(raw []byte, dst interface{}) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return err
		}
		if inner == "" {
			return nil
		}
		raw = []byte(inner)
	}
	return json.Unmarshal(raw, dst)
}
