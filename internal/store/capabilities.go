package store

import (
	"context"
	"fmt"
)

// Capabilities records optional columns that researchers sometimes add to a
// working database by hand. Queries consult this once-per-open snapshot
// instead of probing the schema on every call.
type Capabilities struct {
	FilmSurvivalStatus   bool
	TermScopeNote        bool
	TermModernEquivalent bool
}

func (s *Store) resolveCapabilities(ctx context.Context) error {
	filmCols, err := s.tableColumns(ctx, "films")
	if err != nil {
		return err
	}
	termCols, err := s.tableColumns(ctx, "controlled_terms")
	if err != nil {
		return err
	}
	s.caps = Capabilities{
		FilmSurvivalStatus:   filmCols["survival_status"],
		TermScopeNote:        termCols["scope_note"],
		TermModernEquivalent: termCols["modern_equivalent"],
	}
	return nil
}

func (s *Store) tableColumns(ctx context.Context, table string) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("inspect %s columns: %w", table, err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid        int
			name       string
			ctype      string
			notNull    int
			defaultVal any
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &defaultVal, &primaryKey); err != nil {
			return nil, err
		}
		columns[name] = true
	}
	return columns, rows.Err()
}
