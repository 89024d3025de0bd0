package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sangkips/insights-api/internal/domain/insight"
)

type DetailsCmd struct {
	factory      Factory
	flags        rangeFlags
	doctype      string
	totalRecords int64
	totalQty     string
}

func NewDetailsCmd(factory Factory) *cobra.Command {
	dc := &DetailsCmd{factory: factory}
	cmd := &cobra.Command{
		Use:     "details <customer|supplier> <party-code>",
		Short:   "Print the drill-down table for one party and category as HTML",
		Args:    cobra.ExactArgs(2),
		Example: "  insights details customer CUST-0001 --doctype \"Sales Order\" --total-records 1 --total-qty 5",
		RunE:    dc.run,
	}

	dc.flags.register(cmd)
	cmd.Flags().StringVar(&dc.doctype, "doctype", "", "Category key or label, e.g. \"Sales Order\"")
	cmd.Flags().Int64Var(&dc.totalRecords, "total-records", 0, "Record count from the summary")
	cmd.Flags().StringVar(&dc.totalQty, "total-qty", "0", "Quantity total from the summary")

	_ = cmd.MarkFlagRequired("doctype")

	return cmd
}

func (dc *DetailsCmd) run(cmd *cobra.Command, args []string) error {
	pt, err := insight.LookupPartyType(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q", err, args[0])
	}

	qty, err := decimal.NewFromString(dc.totalQty)
	if err != nil {
		return fmt.Errorf("invalid --total-qty %q: %w", dc.totalQty, err)
	}

	deps, err := dc.factory(cmd.Context())
	if err != nil {
		return err
	}

	html, err := deps.Drilldown.Render(cmd.Context(), pt, dc.doctype, args[1], dc.flags.filter(), insight.SummaryTotals{
		TotalRecords: dc.totalRecords,
		TotalQty:     qty,
	})
	if err != nil {
		return fmt.Errorf("failed to render %s details: %w", dc.doctype, err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
	return err
}
