package insight

import (
	"errors"
	"strings"

	"github.com/sangkips/insights-api/internal/domain/enum"
)

var (
	// ErrUnsupportedPartyType is returned for party types with no descriptor
	ErrUnsupportedPartyType = errors.New("unsupported party type")
	// ErrUnsupportedCategory is returned for document categories a party type does not track
	ErrUnsupportedCategory = errors.New("unsupported category")
)

// PartyType parameterizes the insights pipeline for one side of the ledger
type PartyType struct {
	Key         enum.PartyType
	Slug        string
	Table       string
	NameColumn  string
	GroupColumn string
	Categories  []Category
}

var (
	Customer = PartyType{
		Key:         enum.PartyTypeCustomer,
		Slug:        "customer",
		Table:       "customers",
		NameColumn:  "customer_name",
		GroupColumn: "customer_group",
		Categories:  customerCategories,
	}
	Supplier = PartyType{
		Key:         enum.PartyTypeSupplier,
		Slug:        "supplier",
		Table:       "suppliers",
		NameColumn:  "supplier_name",
		GroupColumn: "supplier_group",
		Categories:  supplierCategories,
	}
)

// PartyTypes returns every registered party type
func PartyTypes() []PartyType {
	return []PartyType{Customer, Supplier}
}

// LookupPartyType resolves "customer", "Customers", "supplier" and the like
func LookupPartyType(s string) (PartyType, error) {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = strings.TrimSuffix(slug, "s")
	for _, pt := range PartyTypes() {
		if pt.Slug == slug {
			return pt, nil
		}
	}
	return PartyType{}, ErrUnsupportedPartyType
}

// Category finds a category by key ("sales_order") or display label ("Sales Order")
func (p PartyType) Category(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for _, c := range p.Categories {
		if c.Key == name || strings.EqualFold(c.Label, name) {
			return c, nil
		}
	}
	return Category{}, ErrUnsupportedCategory
}

// CategoryKeys returns category keys in display order
func (p PartyType) CategoryKeys() []string {
	keys := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		keys = append(keys, c.Key)
	}
	return keys
}

// Party is a customer or supplier as read from the registry
type Party struct {
	Code        string
	DisplayName string
	Group       string
	Phone       *string
	Email       *string
}

// PartyFilter narrows the registry. Filters are conjunctive; zero value selects all.
type PartyFilter struct {
	Group string
	Codes []string
}
