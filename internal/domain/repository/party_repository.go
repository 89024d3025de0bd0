package repository

import (
	"context"

	"github.com/sangkips/insights-api/internal/domain/insight"
)

// PartyRepository reads the customer and supplier registries
type PartyRepository interface {
	// List returns parties of the given type matching the filter, ordered by code
	List(ctx context.Context, pt insight.PartyType, filter insight.PartyFilter) ([]insight.Party, error)
}
