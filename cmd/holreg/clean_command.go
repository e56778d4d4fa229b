package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nonmodernist/holreg-database/internal/cleaning"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Scrub catalog artifacts out of film fields",
		Long: `Clean scans every film for catalog artifacts such as trailing person
identifiers in crew fields and ragged separator spacing, then reports the
rewrites it would make. Nothing is written without --apply; an applied run
snapshots the films table first so a bad pass can be rolled back by hand.`,
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

			cleaner := cleaning.New(st, logger)
			plan, err := cleaner.BuildPlan(cmd.Context())
			if err != nil {
				return fmt.Errorf("build cleaning plan: %w", err)
			}

			out := cmd.OutOrStdout()
			if plan.Empty() {
				fmt.Fprintf(out, "Scanned %d films; nothing to clean\n", plan.FilmsScanned)
				return nil
			}

			rows := make([][]string, 0, len(plan.Changes))
			for _, change := range plan.Changes {
				rows = append(rows, []string{
					change.Title, change.Field, change.Before, change.After,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Film", "Field", "Before", "After"},
				rows))
			fmt.Fprintf(out, "%d changes across %d films\n", len(plan.Changes), plan.FilmsScanned)

			if !apply {
				fmt.Fprintln(out, "Dry run; re-run with --apply to write these changes")
				return nil
			}

			backup, err := cleaner.Apply(cmd.Context(), plan)
			if err != nil {
				return fmt.Errorf("apply cleaning plan: %w", err)
			}
			fmt.Fprintf(out, "Applied %d changes (films snapshot: %s)\n", len(plan.Changes), backup)
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Write the planned changes to the database")

	return cmd
}
