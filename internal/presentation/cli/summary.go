package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sangkips/insights-api/internal/domain/insight"
)

type SummaryCmd struct {
	factory Factory
	flags   rangeFlags
	compact bool
}

func NewSummaryCmd(factory Factory) *cobra.Command {
	sc := &SummaryCmd{factory: factory}
	cmd := &cobra.Command{
		Use:     "summary <customer|supplier>",
		Short:   "Print per-party activity summaries as JSON",
		Args:    cobra.ExactArgs(1),
		Example: "  insights summary customer --range \"Last Week\" --group Retail\n  insights summary supplier --from 2024-01-01 --to 2024-01-31",
		RunE:    sc.run,
	}

	sc.flags.register(cmd)
	cmd.Flags().StringVar(&sc.flags.group, "group", "", "Only parties in this customer or supplier group")
	cmd.Flags().StringSliceVar(&sc.flags.parties, "party", nil, "Only these party codes (repeatable)")
	cmd.Flags().BoolVar(&sc.compact, "compact", false, "Print JSON on a single line")

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, args []string) error {
	pt, err := insight.LookupPartyType(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q", err, args[0])
	}

	deps, err := sc.factory(cmd.Context())
	if err != nil {
		return err
	}

	reports, err := deps.Insights.GetInsights(cmd.Context(), pt, sc.flags.filter())
	if err != nil {
		return fmt.Errorf("failed to compute %s insights: %w", pt.Slug, err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !sc.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(reports)
}
