package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nonmodernist/holreg-database/internal/store"
)

type statusReport struct {
	Database     string              `json:"database"`
	IntegrityOK  bool                `json:"integrity_ok"`
	Films        int                 `json:"films"`
	FilmsTagged  int                 `json:"films_tagged"`
	People       int                 `json:"people"`
	Terms        int                 `json:"terms"`
	Mappings     int                 `json:"mappings"`
	Assignments  int                 `json:"assignments"`
	Credits      map[string]int      `json:"credits"`
	TermsByFacet map[string]int      `json:"terms_by_facet"`
	Completeness []completenessEntry `json:"completeness"`
	Tables       []tableEntry        `json:"tables"`
}

type completenessEntry struct {
	Field   string  `json:"field"`
	Present int     `json:"present"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

type tableEntry struct {
	Table string `json:"table"`
	Rows  int    `json:"rows"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show database health, row counts, and field completeness",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			report, err := buildStatusReport(cmd, st, cfg.Paths.DatabasePath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(report)
			}

			fmt.Fprintf(out, "Database: %s\n", report.Database)
			if report.IntegrityOK {
				fmt.Fprintln(out, "Integrity: ok")
			} else {
				fmt.Fprintln(out, "Integrity: FAILED")
			}
			fmt.Fprintf(out, "Films: %d (%d tagged)  People: %d  Terms: %d  Mappings: %d  Assignments: %d\n",
				report.Films, report.FilmsTagged, report.People,
				report.Terms, report.Mappings, report.Assignments)
			for _, role := range store.Roles {
				fmt.Fprintf(out, "  %-9s %d credits\n", role, report.Credits[string(role)])
			}

			if len(report.Completeness) > 0 {
				rows := make([][]string, 0, len(report.Completeness))
				for _, entry := range report.Completeness {
					rows = append(rows, []string{
						entry.Field,
						fmt.Sprintf("%d/%d", entry.Present, entry.Total),
						fmt.Sprintf("%.1f%%", entry.Percent),
					})
				}
				fmt.Fprintln(out, "Field completeness:")
				fmt.Fprintln(out, renderTable(
					[]string{"Field", "Filled", "Percent"},
					rows, 2, 3))
			}

			tableRows := make([][]string, 0, len(report.Tables))
			for _, entry := range report.Tables {
				tableRows = append(tableRows, []string{entry.Table, fmt.Sprintf("%d", entry.Rows)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Table", "Rows"},
				tableRows, 2))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")

	return cmd
}

func buildStatusReport(cmd *cobra.Command, st *store.Store, dbPath string) (*statusReport, error) {
	cmdCtx := cmd.Context()

	ok, err := st.IntegrityCheck(cmdCtx)
	if err != nil {
		return nil, fmt.Errorf("integrity check: %w", err)
	}
	stats, err := st.Stats(cmdCtx)
	if err != nil {
		return nil, fmt.Errorf("database stats: %w", err)
	}
	completeness, err := st.Completeness(cmdCtx)
	if err != nil {
		return nil, fmt.Errorf("field completeness: %w", err)
	}
	facets, err := st.TermsByFacet(cmdCtx)
	if err != nil {
		return nil, fmt.Errorf("terms by facet: %w", err)
	}
	tables, err := st.Tables(cmdCtx)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	report := &statusReport{
		Database:     dbPath,
		IntegrityOK:  ok,
		Films:        stats.Films,
		FilmsTagged:  stats.FilmsTagged,
		People:       stats.People,
		Terms:        stats.Terms,
		Mappings:     stats.Mappings,
		Assignments:  stats.Assignments,
		Credits:      make(map[string]int, len(stats.CreditsByRole)),
		TermsByFacet: facets,
	}
	for role, count := range stats.CreditsByRole {
		report.Credits[string(role)] = count
	}
	for _, entry := range completeness {
		percent := 0.0
		if entry.Total > 0 {
			percent = float64(entry.Present) / float64(entry.Total) * 100
		}
		report.Completeness = append(report.Completeness, completenessEntry{
			Field:   entry.Field,
			Present: entry.Present,
			Total:   entry.Total,
			Percent: percent,
		})
	}
	for _, table := range tables {
		report.Tables = append(report.Tables, tableEntry{Table: table.Table, Rows: table.Rows})
	}
	return report, nil
}
