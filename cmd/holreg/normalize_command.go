package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nonmodernist/holreg-database/internal/credits"
	"github.com/nonmodernist/holreg-database/internal/store"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize",
		Short: "Split credit fields into people and junction links",
		Long: `Normalize parses the pipe-separated director, writer, producer, and
literary credit fields into individual people, deduplicated by exact name,
and links each one to the film with billing order preserved. Rerunning is
safe; existing people and links are reused.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			summary, err := credits.NewNormalizer(st, logger).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("normalize credits: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Processed %d films, %d distinct people\n",
				summary.FilmsProcessed, summary.DistinctPeople)
			for _, role := range store.Roles {
				fmt.Fprintf(out, "  %-9s %d links\n", role, summary.LinksByRole[role])
			}
			return nil
		},
	}
}
