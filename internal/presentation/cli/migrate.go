package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewMigrateCmd(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the registry and document tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			if err := deps.Migrate(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return err
		},
	}
}

func NewSeedCmd(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a small demo dataset dated relative to today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			if err := deps.Seed(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "demo data ready")
			return err
		},
	}
}
