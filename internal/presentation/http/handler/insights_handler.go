package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sangkips/insights-api/internal/application/service"
	"github.com/sangkips/insights-api/internal/presentation/http/dto/request"
	"github.com/sangkips/insights-api/internal/presentation/http/dto/response"
	"github.com/sangkips/insights-api/pkg/apperror"
)

// InsightsHandler handles party insight HTTP requests
type InsightsHandler struct {
	insightsService  *service.InsightsService
	drilldownService *service.DrilldownService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService *service.InsightsService, drilldownService *service.DrilldownService) *InsightsHandler {
	return &InsightsHandler{
		insightsService:  insightsService,
		drilldownService: drilldownService,
	}
}

// GetInsights handles computing per-party summaries.
// POST reads filters from the body, GET from the "filters" query parameter.
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	pt, err := partyTypeParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var filters request.InsightsFilters
	if c.Request.Method == http.MethodGet {
		err = request.DecodeEmbedded([]byte(c.Query("filters")), &filters)
	} else if err = c.ShouldBindJSON(&filters); errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		response.Error(c, apperror.NewInvalidFiltersError(err))
		return
	}

	reports, err := h.insightsService.GetInsights(c.Request.Context(), pt, filters.ToFilter(pt))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, "Insights retrieved successfully", reports)
}

// GetDetails handles rendering the drill-down table for one party and category
func (h *InsightsHandler) GetDetails(c *gin.Context) {
	pt, err := partyTypeParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields, ok := bindingFieldErrors(err); ok {
			response.ValidationError(c, fields)
			return
		}
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	totals, filters, err := req.Decode()
	if err != nil {
		response.Error(c, apperror.NewInvalidFiltersError(err))
		return
	}

	html, err := h.drilldownService.Render(c.Request.Context(), pt, req.Doctype, c.Param("code"), filters.ToFilter(pt), totals)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.HTML(c, http.StatusOK, html)
}

// ListCategories handles describing the categories reported for a party type
func (h *InsightsHandler) ListCategories(c *gin.Context) {
	pt, err := partyTypeParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", response.NewPartyTypeResponse(pt))
}

func (h *InsightsHandler) fail(c *gin.Context, err error) {
	if !apperror.IsAppError(err) {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("insights request failed")
	}
	_ = c.Error(err)
	response.Error(c, err)
}
