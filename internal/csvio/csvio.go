// Package csvio round-trips database tables through CSV files so the
// research data can be tracked in version control alongside the code.
package csvio

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nonmodernist/holreg-database/internal/logging"
	"github.com/nonmodernist/holreg-database/internal/store"
)

// ExportSummary reports what an export run wrote.
type ExportSummary struct {
	Tables []TableFile
}

// ImportSummary reports what an import run loaded.
type ImportSummary struct {
	Tables []TableFile
}

// TableFile pairs a table name with the row count moved through its CSV file.
type TableFile struct {
	Table string
	Rows  int
}

// ExportAll writes one CSV file per user table into dir. Values are
// written as their SQLite text representation; NULL becomes an empty
// cell.
func ExportAll(ctx context.Context, st *store.Store, dir string, logger *slog.Logger) (*ExportSummary, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.WithComponent(logger, "csvio")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	tables, err := userTables(ctx, st.DB())
	if err != nil {
		return nil, err
	}

	summary := &ExportSummary{}
	for _, table := range tables {
		rows, err := exportTable(ctx, st.DB(), table, filepath.Join(dir, table+".csv"))
		if err != nil {
			return nil, err
		}
		logger.Info("table exported", logging.String("table", table), logging.Int("rows", rows))
		summary.Tables = append(summary.Tables, TableFile{Table: table, Rows: rows})
	}
	return summary, nil
}

// ImportAll loads every CSV file in dir into the table matching its
// base name. Each table's existing rows are replaced. Files without a
// matching table are an error so typos do not silently drop data.
func ImportAll(ctx context.Context, st *store.Store, dir string, logger *slog.Logger) (*ImportSummary, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.WithComponent(logger, "csvio")

	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("list csv files: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no csv files found in %s", dir)
	}
	sort.Strings(matches)

	tables, err := userTables(ctx, st.DB())
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(tables))
	for _, table := range tables {
		known[table] = true
	}

	for _, path := range matches {
		table := strings.TrimSuffix(filepath.Base(path), ".csv")
		if !known[table] {
			return nil, fmt.Errorf("csv file %s has no matching table", filepath.Base(path))
		}
	}

	// One transaction for the whole import: tables reference each other,
	// so foreign keys are only checked once every file has landed.
	tx, err := st.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "PRAGMA defer_foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("defer foreign keys: %w", err)
	}

	summary := &ImportSummary{}
	for _, path := range matches {
		table := strings.TrimSuffix(filepath.Base(path), ".csv")
		rows, err := importTable(ctx, tx, table, path)
		if err != nil {
			return nil, err
		}
		logger.Info("table imported", logging.String("table", table), logging.Int("rows", rows))
		summary.Tables = append(summary.Tables, TableFile{Table: table, Rows: rows})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}
	return summary, nil
}

func userTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func exportTable(ctx context.Context, db *sql.DB, table, path string) (int, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %q", table))
	if err != nil {
		return 0, fmt.Errorf("read table %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return 0, fmt.Errorf("columns of %s: %w", table, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return 0, fmt.Errorf("write header for %s: %w", table, err)
	}

	values := make([]sql.NullString, len(columns))
	scanTargets := make([]any, len(columns))
	for i := range values {
		scanTargets[i] = &values[i]
	}

	count := 0
	record := make([]string, len(columns))
	for rows.Next() {
		if err := rows.Scan(scanTargets...); err != nil {
			return 0, fmt.Errorf("scan row of %s: %w", table, err)
		}
		for i, value := range values {
			if value.Valid {
				record[i] = value.String
			} else {
				record[i] = ""
			}
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("write row of %s: %w", table, err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("read table %s: %w", table, err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("flush %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", path, err)
	}
	return count, nil
}

func importTable(ctx context.Context, tx *sql.Tx, table, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read header of %s: %w", path, err)
	}

	placeholders := make([]string, len(header))
	quoted := make([]string, len(header))
	for i, column := range header {
		placeholders[i] = "?"
		quoted[i] = fmt.Sprintf("%q", column)
	}
	insert := fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		table, strings.Join(quoted, ", "), strings.Join(placeholders, ", "))

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %q", table)); err != nil {
		return 0, fmt.Errorf("clear table %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return 0, fmt.Errorf("prepare insert for %s: %w", table, err)
	}
	defer stmt.Close()

	count := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read row of %s: %w", path, err)
		}
		args := make([]any, len(record))
		for i, value := range record {
			if value == "" {
				args[i] = nil
			} else {
				args[i] = value
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("insert row into %s: %w", table, err)
		}
		count++
	}
	return count, nil
}
