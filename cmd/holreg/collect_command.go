package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nonmodernist/holreg-database/internal/afi"
)

func newCollectCommand(ctx *commandContext) *cobra.Command {
	var listPath string
	var delaySeconds float64

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Search the AFI Catalog for listed films and record the matches",
		Long: `Collect reads a title,year research list, searches the AFI Catalog for
each entry, and records exact matches in the database. Entries that find
no exact match are reported so the list can be corrected by hand.

Searches are spaced out to stay polite to the catalog's server; rerunning
a collection is safe and only updates what changed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(listPath) == "" {
				return fmt.Errorf("a research list is required (--list)")
			}

			entries, err := afi.ReadList(listPath)
			if err != nil {
				return fmt.Errorf("read research list: %w", err)
			}

			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			client, err := afi.New(cfg.AFI.BaseURL, cfg.AFI.UserAgent,
				time.Duration(cfg.AFI.RequestTimeout)*time.Second)
			if err != nil {
				return fmt.Errorf("create catalog client: %w", err)
			}

			delay := cfg.AFI.RequestDelay
			if cmd.Flags().Changed("delay") {
				delay = delaySeconds
			}
			collector := afi.NewCollector(client, st, logger,
				time.Duration(delay*float64(time.Second)))

			summary, err := collector.Collect(cmd.Context(), entries)
			if err != nil {
				return fmt.Errorf("collect: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Collection run %s\n", summary.RunID)
			fmt.Fprintf(out, "  Requested: %d\n", summary.Requested)
			fmt.Fprintf(out, "  Matched:   %d (%d new, %d updated)\n",
				summary.Matched, summary.Created, summary.Updated)
			if len(summary.Unmatched) > 0 {
				fmt.Fprintf(out, "  Unmatched: %d\n", len(summary.Unmatched))
				for _, entry := range summary.Unmatched {
					fmt.Fprintf(out, "    - %s (%d)\n", entry.Title, entry.Year)
				}
			}
			if len(summary.Failed) > 0 {
				fmt.Fprintf(out, "  Failed:    %d (retry these)\n", len(summary.Failed))
				for _, entry := range summary.Failed {
					fmt.Fprintf(out, "    - %s (%d)\n", entry.Title, entry.Year)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&listPath, "list", "l", "", "Path to the title,year research list")
	cmd.Flags().Float64Var(&delaySeconds, "delay", 0, "Seconds between catalog searches (overrides config)")

	return cmd
}
