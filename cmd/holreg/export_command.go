package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nonmodernist/holreg-database/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the database to JSON documents for the site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
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

			exporter := export.New(st, logger, export.Options{
				OutputDir:        cfg.Paths.DataDir,
				PrettyJSON:       cfg.Export.PrettyJSON,
				DecadePartitions: cfg.Export.DecadePartitions,
				SiteTitle:        cfg.Site.Title,
				SiteSubtitle:     cfg.Site.Subtitle,
			})
			summary, err := exporter.ExportAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Exported %d films into %d files under %s\n",
				summary.Films, len(summary.Files), cfg.Paths.DataDir)
			for _, file := range summary.Files {
				fmt.Fprintf(out, "  %s\n", file)
			}
			return nil
		},
	}
}
