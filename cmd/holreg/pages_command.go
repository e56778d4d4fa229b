package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nonmodernist/holreg-database/internal/site"
)

func newPagesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "Generate static HTML pages from the exported JSON",
		Long: `Pages renders film pages, author pages, and both index pages from the
JSON documents written by export. Run export first; pages reads only the
data directory, never the database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			generator, err := site.New(cfg.Paths.DataDir, cfg.Paths.SiteDir, logger)
			if err != nil {
				return fmt.Errorf("prepare site generator: %w", err)
			}
			summary, err := generator.GenerateAll()
			if err != nil {
				return fmt.Errorf("generate pages: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d film pages, %d author pages, and %d indexes to %s\n",
				summary.FilmPages, summary.AuthorPages, summary.IndexPages, cfg.Paths.SiteDir)
			return nil
		},
	}
}
