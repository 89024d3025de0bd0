package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sangkips/insights-api/internal/domain/insight"
	"github.com/sangkips/insights-api/internal/domain/repository"
	"github.com/sangkips/insights-api/pkg/apperror"
	"github.com/sangkips/insights-api/pkg/money"
)

// InsightsFilter is the decoded filter payload shared by summaries and drill-downs
type InsightsFilter struct {
	DateRange         string
	SelectedDateRange []string
	Group             string
	Parties           []string
}

// InsightsService builds per-party activity summaries
type InsightsService struct {
	partyRepo    repository.PartyRepository
	insightsRepo repository.InsightsRepository
	formatter    money.Formatter
	now          func() time.Time
}

// NewInsightsService creates a new insights service
func NewInsightsService(
	partyRepo repository.PartyRepository,
	insightsRepo repository.InsightsRepository,
	formatter money.Formatter,
) *InsightsService {
	return &InsightsService{
		partyRepo:    partyRepo,
		insightsRepo: insightsRepo,
		formatter:    formatter,
		now:          time.Now,
	}
}

// GetInsights returns one report per party with activity in the resolved window,
// in registry order. Queries run sequentially and the first failure aborts the batch.
func (s *InsightsService) GetInsights(ctx context.Context, pt insight.PartyType, filter InsightsFilter) ([]insight.PartyReport, error) {
	logger := zerolog.Ctx(ctx)

	dr, err := resolveDateRange(ctx, filter, s.now())
	if err != nil {
		return nil, err
	}

	parties, err := s.partyRepo.List(ctx, pt, insight.PartyFilter{Group: filter.Group, Codes: filter.Parties})
	if err != nil {
		return nil, fmt.Errorf("select %s parties: %w", pt.Slug, err)
	}

	reports := make([]insight.PartyReport, 0, len(parties))
	for _, party := range parties {
		report, err := s.partyReport(ctx, pt, party, dr)
		if err != nil {
			return nil, err
		}
		if report.HasActivity() {
			reports = append(reports, report)
		}
	}

	logger.Debug().
		Str("party_type", pt.Slug).
		Stringer("range", dr).
		Int("parties", len(parties)).
		Int("active", len(reports)).
		Msg("insights computed")

	return reports, nil
}

func (s *InsightsService) partyReport(ctx context.Context, pt insight.PartyType, party insight.Party, dr insight.DateRange) (insight.PartyReport, error) {
	report := insight.PartyReport{
		PartyType:   pt.Key.String(),
		PartyCode:   party.Code,
		DisplayName: party.DisplayName,
		Phone:       party.Phone,
		Email:       party.Email,
		Sections:    make(map[string]*insight.CategorySummary, len(pt.Categories)),
	}

	for _, c := range pt.Categories {
		raw, err := s.insightsRepo.Aggregate(ctx, pt, c, party.Code, dr)
		if err != nil {
			return insight.PartyReport{}, fmt.Errorf("%s %s: %w", party.Code, c.Key, err)
		}
		report.Sections[c.Key] = insight.FormatSection(c, raw.Normalize(), s.formatter)
	}

	return report, nil
}

// resolveDateRange maps a malformed explicit range to a client error.
// Inverted ranges pass through and are only logged.
func resolveDateRange(ctx context.Context, filter InsightsFilter, now time.Time) (insight.DateRange, error) {
	dr, err := insight.ResolveDateRange(filter.DateRange, filter.SelectedDateRange, now)
	if err != nil {
		return insight.DateRange{}, apperror.NewInvalidFiltersError(err)
	}
	if dr.Inverted() {
		zerolog.Ctx(ctx).Warn().Stringer("range", dr).Msg("selected date range is inverted, no documents will match")
	}
	return dr, nil
}
