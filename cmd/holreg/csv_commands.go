package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nonmodernist/holreg-database/internal/csvio"
)

func newCSVCommand(ctx *commandContext) *cobra.Command {
	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Round-trip the database through CSV files for version control",
	}

	csvCmd.AddCommand(newCSVExportCommand(ctx))
	csvCmd.AddCommand(newCSVImportCommand(ctx))

	return csvCmd
}

func newCSVExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export every table to one CSV file per table",
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

			summary, err := csvio.ExportAll(cmd.Context(), st, cfg.Paths.CSVDir, logger)
			if err != nil {
				return fmt.Errorf("csv export: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, table := range summary.Tables {
				fmt.Fprintf(out, "  %-28s %d rows\n", table.Table+".csv", table.Rows)
			}
			fmt.Fprintf(out, "Exported %d tables to %s\n", len(summary.Tables), cfg.Paths.CSVDir)
			return nil
		},
	}
}

func newCSVImportCommand(ctx *commandContext) *cobra.Command {
	var rebuild bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the CSV files back into the database",
		Long: `Import replaces each table's rows with the contents of its CSV file.
With --rebuild the database file is removed first, so the schema is
recreated from scratch before the rows are loaded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			if rebuild {
				if err := os.Remove(cfg.Paths.DatabasePath); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("remove database for rebuild: %w", err)
				}
			}

			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			summary, err := csvio.ImportAll(cmd.Context(), st, cfg.Paths.CSVDir, logger)
			if err != nil {
				return fmt.Errorf("csv import: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, table := range summary.Tables {
				fmt.Fprintf(out, "  %-28s %d rows\n", table.Table, table.Rows)
			}
			fmt.Fprintf(out, "Imported %d tables from %s\n", len(summary.Tables), cfg.Paths.CSVDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&rebuild, "rebuild", false, "Delete the database file and rebuild it from the CSV files")

	return cmd
}
