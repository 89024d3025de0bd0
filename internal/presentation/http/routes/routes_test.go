package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/insights-api/internal/application/service"
	"github.com/sangkips/insights-api/internal/config"
	"github.com/sangkips/insights-api/internal/domain/insight"
	"github.com/sangkips/insights-api/internal/presentation/http/handler"
	"github.com/sangkips/insights-api/internal/presentation/http/middleware"
	"github.com/sangkips/insights-api/pkg/money"
)

type stubPartyRepository struct{}

func (stubPartyRepository) List(context.Context, insight.PartyType, insight.PartyFilter) ([]insight.Party, error) {
	return []insight.Party{}, nil
}

type stubInsightsRepository struct{}

func (stubInsightsRepository) Aggregate(context.Context, insight.PartyType, insight.Category, string, insight.DateRange) (insight.RawAggregate, error) {
	return insight.RawAggregate{}, nil
}

func (stubInsightsRepository) LineItems(context.Context, insight.PartyType, insight.Category, string, insight.DateRange) ([]insight.LineItem, error) {
	return []insight.LineItem{
		{ItemCode: "ITEM-A", ItemName: "Widget", Qty: decimal.NewFromInt(3), Rate: decimal.NewFromInt(10), Amount: decimal.NewFromInt(30)},
	}, nil
}

func (stubInsightsRepository) PaymentRequests(context.Context, insight.PartyType, insight.Category, string, insight.DateRange) ([]insight.PaymentRequestRow, error) {
	return nil, nil
}

func (stubInsightsRepository) PaymentEntries(context.Context, insight.PartyType, insight.Category, string, insight.DateRange) ([]insight.PaymentEntryRow, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, limiter *middleware.ClientRateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	formatter := money.DefaultFormatter()
	drilldown, err := service.NewDrilldownService(stubInsightsRepository{}, formatter)
	require.NoError(t, err)

	h := handler.NewInsightsHandler(
		service.NewInsightsService(stubPartyRepository{}, stubInsightsRepository{}, formatter),
		drilldown,
	)
	return Setup(&Handlers{Insights: h}, &Deps{
		Cfg:         &config.Config{App: config.AppConfig{Name: "insights-api"}},
		Logger:      zerolog.Nop(),
		RateLimiter: limiter,
	})
}

func request(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSetup_RegistersInsightsRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name        string
		method      string
		target      string
		body        string
		contentType string
	}{
		{name: "health", method: http.MethodGet, target: "/health", contentType: "application/json"},
		{name: "post summary", method: http.MethodPost, target: "/api/v1/insights/customers", body: `{}`, contentType: "application/json"},
		{name: "get summary", method: http.MethodGet, target: "/api/v1/insights/suppliers", contentType: "application/json"},
		{name: "categories", method: http.MethodGet, target: "/api/v1/insights/customers/categories", contentType: "application/json"},
		{name: "details", method: http.MethodPost, target: "/api/v1/insights/customers/CUST-0001/details", body: `{"doctype":"Sales Order","details":{"total_records":1,"total_qty":3}}`, contentType: "text/html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := request(router, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestSetup_CategoriesAndDetailsShareCodeSegment(t *testing.T) {
	router := newTestRouter(t, nil)

	// "categories" is a static GET route; a party code in the same position only routes to details.
	rec := request(router, http.MethodGet, "/api/v1/insights/customers/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sales_order"`)

	rec = request(router, http.MethodPost, "/api/v1/insights/customers/categories/details", `{"doctype":"sales_order"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "categories")

	rec = request(router, http.MethodGet, "/api/v1/insights/customers/CUST-0001/details", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetup_UnknownRoute(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := request(router, http.MethodGet, "/api/v1/reports", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetup_RateLimiterGuardsAPI(t *testing.T) {
	limiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{RequestsPerSecond: 1, BurstSize: 1})
	t.Cleanup(limiter.Close)
	router := newTestRouter(t, limiter)

	first := request(router, http.MethodGet, "/api/v1/insights/customers/categories", "")
	second := request(router, http.MethodGet, "/api/v1/insights/customers/categories", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// /health sits outside the limited group
	assert.Equal(t, http.StatusOK, request(router, http.MethodGet, "/health", "").Code)
}
