package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nonmodernist/holreg-database/internal/vocab"
)

func newTagCommand(ctx *commandContext) *cobra.Command {
	var apply bool
	var reset bool

	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Assign controlled vocabulary terms from raw subject strings",
		Long: `Tag resolves each film's raw AFI subject tokens against the curated
mappings, the vocabulary itself, and keyword patterns, then assigns the
matching controlled terms with relevance weights. Without --apply it only
reports what would be assigned and which subjects resolved to nothing.

--reset clears each film's automatic tags before reassigning, which is the
right move after editing the mappings: assignments the current rules no
longer make are dropped instead of lingering. Hand-assigned tags are never
touched.`,
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

			summary, err := vocab.NewTagger(st, logger).Run(cmd.Context(), apply, reset)
			if err != nil {
				return fmt.Errorf("tag films: %w", err)
			}

			out := cmd.OutOrStdout()
			verb := "Would assign"
			if apply {
				verb = "Assigned"
			}
			fmt.Fprintf(out, "%s %d terms across %d of %d films\n",
				verb, summary.Assignments, summary.FilmsTagged, summary.FilmsProcessed)

			if unmapped := summary.UnmappedSubjects(); len(unmapped) > 0 {
				fmt.Fprintf(out, "Unresolved subjects (%d):\n", len(unmapped))
				for _, subject := range unmapped {
					fmt.Fprintf(out, "  %4d  %s\n", summary.Unmapped[subject], subject)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Write the assignments to the database")
	cmd.Flags().BoolVar(&reset, "reset", false, "Drop automatic tags before reassigning (after mapping curation)")

	return cmd
}
