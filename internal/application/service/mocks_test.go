package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sangkips/insights-api/internal/domain/insight"
)

type mockPartyRepository struct {
	mock.Mock
}

func (m *mockPartyRepository) List(ctx context.Context, pt insight.PartyType, filter insight.PartyFilter) ([]insight.Party, error) {
	args := m.Called(ctx, pt, filter)
	if parties, ok := args.Get(0).([]insight.Party); ok {
		return parties, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockInsightsRepository struct {
	mock.Mock
}

func (m *mockInsightsRepository) Aggregate(ctx context.Context, pt insight.PartyType, c insight.Category, partyCode string, r insight.DateRange) (insight.RawAggregate, error) {
	args := m.Called(ctx, pt, c, partyCode, r)
	return args.Get(0).(insight.RawAggregate), args.Error(1)
}

func (m *mockInsightsRepository) LineItems(ctx context.Context, pt insight.PartyType, c insight.Category, partyCode string, r insight.DateRange) ([]insight.LineItem, error) {
	args := m.Called(ctx, pt, c, partyCode, r)
	if items, ok := args.Get(0).([]insight.LineItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInsightsRepository) PaymentRequests(ctx context.Context, pt insight.PartyType, c insight.Category, partyCode string, r insight.DateRange) ([]insight.PaymentRequestRow, error) {
	args := m.Called(ctx, pt, c, partyCode, r)
	if rows, ok := args.Get(0).([]insight.PaymentRequestRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInsightsRepository) PaymentEntries(ctx context.Context, pt insight.PartyType, c insight.Category, partyCode string, r insight.DateRange) ([]insight.PaymentEntryRow, error) {
	args := m.Called(ctx, pt, c, partyCode, r)
	if rows, ok := args.Get(0).([]insight.PaymentEntryRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func categoryKey(key string) interface{} {
	return mock.MatchedBy(func(c insight.Category) bool { return c.Key == key })
}
