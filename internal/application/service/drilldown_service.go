package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sangkips/insights-api/internal/domain/enum"
	"github.com/sangkips/insights-api/internal/domain/insight"
	"github.com/sangkips/insights-api/internal/domain/repository"
	"github.com/sangkips/insights-api/pkg/apperror"
	"github.com/sangkips/insights-api/pkg/money"
)

// drilldownRequest is everything a renderer needs for one table
type drilldownRequest struct {
	partyType insight.PartyType
	category  insight.Category
	partyCode string
	dateRange insight.DateRange
	totals    insight.SummaryTotals
}

type renderFunc func(ctx context.Context, req drilldownRequest) (string, error)

// DrilldownService renders line-level tables behind a category summary
type DrilldownService struct {
	insightsRepo repository.InsightsRepository
	formatter    money.Formatter
	renderers    map[enum.CategoryKind]renderFunc
	now          func() time.Time
}

// NewDrilldownService creates a drill-down service. It fails when any category
// of a registered party type has no renderer.
func NewDrilldownService(insightsRepo repository.InsightsRepository, formatter money.Formatter) (*DrilldownService, error) {
	s := &DrilldownService{
		insightsRepo: insightsRepo,
		formatter:    formatter,
		now:          time.Now,
	}
	s.renderers = map[enum.CategoryKind]renderFunc{
		enum.CategoryKindOrder:          s.renderItems,
		enum.CategoryKindFulfillment:    s.renderItems,
		enum.CategoryKindBilling:        s.renderItems,
		enum.CategoryKindPaymentRequest: s.renderPaymentRequests,
		enum.CategoryKindPaymentEntry:   s.renderPaymentEntries,
	}

	if err := validateRenderers(s.renderers, insight.PartyTypes()); err != nil {
		return nil, err
	}
	return s, nil
}

func validateRenderers(renderers map[enum.CategoryKind]renderFunc, partyTypes []insight.PartyType) error {
	var errs []error
	for _, pt := range partyTypes {
		for _, c := range pt.Categories {
			if _, ok := renderers[c.Kind]; !ok {
				errs = append(errs, fmt.Errorf("%w: no renderer for %s %s (%s)", insight.ErrUnsupportedCategory, pt.Slug, c.Key, c.Kind))
			}
		}
	}
	return errors.Join(errs...)
}

// Render builds the drill-down table for one party and category.
// doctype is a category key or display label.
func (s *DrilldownService) Render(
	ctx context.Context,
	pt insight.PartyType,
	doctype string,
	partyCode string,
	filter InsightsFilter,
	totals insight.SummaryTotals,
) (string, error) {
	c, err := pt.Category(doctype)
	if err != nil {
		return "", apperror.NewUnsupportedCategoryError(doctype, err)
	}
	if partyCode == "" {
		return "", apperror.NewBadRequestError(pt.Key.String() + " code is required")
	}

	dr, err := resolveDateRange(ctx, filter, s.now())
	if err != nil {
		return "", err
	}

	render, ok := s.renderers[c.Kind]
	if !ok {
		return "", apperror.NewUnsupportedCategoryError(doctype, insight.ErrUnsupportedCategory)
	}

	return render(ctx, drilldownRequest{
		partyType: pt,
		category:  c,
		partyCode: partyCode,
		dateRange: dr,
		totals:    totals,
	})
}

func heading(req drilldownRequest) headingView {
	return headingView{
		PartyLabel:    req.partyType.Key.String(),
		PartyCode:     req.partyCode,
		CategoryLabel: req.category.Label,
		TotalRecords:  req.totals.TotalRecords,
	}
}

// renderItems handles order, fulfillment and billing categories. The footer
// quantity comes from the caller's summary; pending and amount are summed here.
func (s *DrilldownService) renderItems(ctx context.Context, req drilldownRequest) (string, error) {
	items, err := s.insightsRepo.LineItems(ctx, req.partyType, req.category, req.partyCode, req.dateRange)
	if err != nil {
		return "", fmt.Errorf("%s %s line items: %w", req.partyCode, req.category.Key, err)
	}

	view := itemTableView{
		Heading:     heading(req),
		ShowPending: req.category.Kind == enum.CategoryKindOrder,
		Rows:        make([]itemRowView, 0, len(items)),
	}

	pending, amount := decimal.Zero, decimal.Zero
	for _, item := range items {
		view.Rows = append(view.Rows, itemRowView{
			ItemCode:   item.ItemCode,
			ItemName:   item.ItemName,
			Qty:        s.formatter.Float(item.Qty),
			PendingQty: s.formatter.Float(item.PendingQty),
			Rate:       s.formatter.Currency(item.Rate),
			Amount:     s.formatter.Currency(item.Amount),
		})
		pending = pending.Add(item.PendingQty)
		amount = amount.Add(item.Amount)
	}

	view.Footer = itemRowView{
		Qty:        s.formatter.Float(req.totals.TotalQty),
		PendingQty: s.formatter.Float(pending),
		Amount:     s.formatter.Currency(amount),
	}

	return execute("items", view)
}

func (s *DrilldownService) renderPaymentRequests(ctx context.Context, req drilldownRequest) (string, error) {
	rows, err := s.insightsRepo.PaymentRequests(ctx, req.partyType, req.category, req.partyCode, req.dateRange)
	if err != nil {
		return "", fmt.Errorf("%s payment requests: %w", req.partyCode, err)
	}

	view := paymentRequestTableView{
		Heading: heading(req),
		Rows:    make([]paymentRequestRowView, 0, len(rows)),
	}

	total := decimal.Zero
	for _, row := range rows {
		view.Rows = append(view.Rows, paymentRequestRowView{
			Type:             row.PaymentRequestType,
			Date:             s.formatter.Date(row.TransactionDate),
			ReferenceDoctype: row.ReferenceDoctype,
			ReferenceName:    row.ReferenceName,
			Amount:           s.formatter.Currency(row.GrandTotal),
		})
		total = total.Add(row.GrandTotal)
	}
	view.TotalAmount = s.formatter.Currency(total)

	return execute("payment_requests", view)
}

func (s *DrilldownService) renderPaymentEntries(ctx context.Context, req drilldownRequest) (string, error) {
	rows, err := s.insightsRepo.PaymentEntries(ctx, req.partyType, req.category, req.partyCode, req.dateRange)
	if err != nil {
		return "", fmt.Errorf("%s payment entries: %w", req.partyCode, err)
	}

	view := paymentEntryTableView{
		Heading: heading(req),
		Rows:    make([]paymentEntryRowView, 0, len(rows)),
	}

	unallocated, paid := decimal.Zero, decimal.Zero
	for _, row := range rows {
		view.Rows = append(view.Rows, paymentEntryRowView{
			Type:          row.PaymentType,
			Date:          s.formatter.Date(row.PostingDate),
			ModeOfPayment: row.ModeOfPayment,
			Unallocated:   s.formatter.Currency(row.UnallocatedAmount),
			Paid:          s.formatter.Currency(row.PaidAmount),
		})
		unallocated = unallocated.Add(row.UnallocatedAmount)
		paid = paid.Add(row.PaidAmount)
	}
	view.TotalUnallocated = s.formatter.Currency(unallocated)
	view.TotalPaid = s.formatter.Currency(paid)

	return execute("payment_entries", view)
}

func execute(name string, view interface{}) (string, error) {
	var buf bytes.Buffer
	if err := drilldownTemplates.ExecuteTemplate(&buf, name, view); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
