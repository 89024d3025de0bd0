package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/sangkips/insights-api/internal/application/service"
	"github.com/sangkips/insights-api/internal/domain/insight"
)

// InsightsRunner computes party summaries
type InsightsRunner interface {
	GetInsights(ctx context.Context, pt insight.PartyType, filter service.InsightsFilter) ([]insight.PartyReport, error)
}

// DetailsRenderer renders drill-down tables
type DetailsRenderer interface {
	Render(ctx context.Context, pt insight.PartyType, doctype, partyCode string, filter service.InsightsFilter, totals insight.SummaryTotals) (string, error)
}

// Deps are the services the commands run against
type Deps struct {
	Insights  InsightsRunner
	Drilldown DetailsRenderer
	Migrate   func(ctx context.Context) error
	Seed      func(ctx context.Context) error
}

// Factory connects to the store and builds Deps. It runs only when a command
// needs it, so help and flag errors never touch the database.
type Factory func(ctx context.Context) (*Deps, error)

// NewRootCmd builds the insights command tree
func NewRootCmd(factory Factory, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "insights",
		Short:         "Customer and supplier activity insights",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(
		NewSummaryCmd(factory),
		NewDetailsCmd(factory),
		NewMigrateCmd(factory),
		NewSeedCmd(factory),
	)
	return root
}

// rangeFlags are shared by summary and details
type rangeFlags struct {
	selector string
	from     string
	to       string
	group    string
	parties  []string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.selector, "range", insight.RangeLastMonth,
		"Named range: \"Last Week\", \"Last Month\", \"Last 3 Months\", \"Last Year\"")
	cmd.Flags().StringVar(&f.from, "from", "", "Explicit range start (YYYY-MM-DD); implies a custom range")
	cmd.Flags().StringVar(&f.to, "to", "", "Explicit range end (YYYY-MM-DD); implies a custom range")
}

func (f *rangeFlags) filter() service.InsightsFilter {
	filter := service.InsightsFilter{
		DateRange: f.selector,
		Group:     f.group,
		Parties:   f.parties,
	}
	if f.from != "" || f.to != "" {
		filter.DateRange = insight.RangeSelectCustom
		filter.SelectedDateRange = []string{f.from, f.to}
	}
	return filter
}
