package store

import (
	"context"
	"fmt"
)

// AuthorGroup collects the films adapted from one source author, keyed by the
// raw literary credits string.
type AuthorGroup struct {
	Author string
	Films  []*Film
}

// DecadeTheme is one (decade, term) cell of the themes-over-time grid.
type DecadeTheme struct {
	Decade    int
	Term      string
	Facet     string
	FilmCount int
}

// ThemePair counts how often two controlled terms are assigned to the same
// film.
type ThemePair struct {
	TermA string
	TermB string
	Count int
}

// Stats summarizes the database for status reports.
type Stats struct {
	Films         int
	FilmsTagged   int
	People        int
	Companies     int
	Terms         int
	Mappings      int
	Assignments   int
	CreditsByRole map[Role]int
}

// AuthorGroups buckets films by their literary credits string, ordered by
// author. Films without a literary credit are skipped.
func (s *Store) AuthorGroups(ctx context.Context) ([]AuthorGroup, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+s.filmSelect()+` FROM films
		 WHERE literary_credits IS NOT NULL AND TRIM(literary_credits) != ''
		 ORDER BY literary_credits, release_year, title`)
	if err != nil {
		return nil, fmt.Errorf("list films by author: %w", err)
	}
	defer rows.Close()

	films, err := s.collectFilms(rows)
	if err != nil {
		return nil, err
	}

	var groups []AuthorGroup
	for _, film := range films {
		if len(groups) == 0 || groups[len(groups)-1].Author != film.LiteraryCredits {
			groups = append(groups, AuthorGroup{Author: film.LiteraryCredits})
		}
		last := &groups[len(groups)-1]
		last.Films = append(last.Films, film)
	}
	return groups, nil
}

// ThemesByDecade returns tag counts per decade and term for the trend
// analysis export. Only assignments at or above minWeight count; films
// without a release year are excluded.
func (s *Store) ThemesByDecade(ctx context.Context, minWeight int) ([]DecadeTheme, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT (f.release_year / 10) * 10 AS decade, ct.term, ct.facet, COUNT(DISTINCT f.id) AS films
		FROM film_subjects_controlled fsc
		JOIN films f ON f.id = fsc.film_id
		JOIN controlled_terms ct ON ct.term_id = fsc.term_id
		WHERE f.release_year IS NOT NULL AND fsc.relevance_weight >= ?
		GROUP BY decade, ct.term_id
		ORDER BY decade, films DESC, ct.term`, minWeight)
	if err != nil {
		return nil, fmt.Errorf("themes by decade: %w", err)
	}
	defer rows.Close()

	var themes []DecadeTheme
	for rows.Next() {
		var theme DecadeTheme
		if err := rows.Scan(&theme.Decade, &theme.Term, &theme.Facet, &theme.FilmCount); err != nil {
			return nil, err
		}
		themes = append(themes, theme)
	}
	return themes, rows.Err()
}

// CoOccurringThemes returns cross-facet term pairs assigned together at or
// above minWeight on at least minCount films, strongest pairs first. Pairs
// within one facet are noise for this analysis (every Settings film pairs
// with some Plot Element) so they are excluded.
func (s *Store) CoOccurringThemes(ctx context.Context, minWeight, minCount, limit int) ([]ThemePair, error) {
	if minCount < 1 {
		minCount = 1
	}
	if limit < 1 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.term, b.term, COUNT(DISTINCT x.film_id) AS shared
		FROM film_subjects_controlled x
		JOIN film_subjects_controlled y ON x.film_id = y.film_id AND x.term_id < y.term_id
		JOIN controlled_terms a ON a.term_id = x.term_id
		JOIN controlled_terms b ON b.term_id = y.term_id
		WHERE a.facet != b.facet AND x.relevance_weight >= ? AND y.relevance_weight >= ?
		GROUP BY x.term_id, y.term_id
		HAVING shared >= ?
		ORDER BY shared DESC, a.term, b.term
		LIMIT ?`, minWeight, minWeight, minCount, limit)
	if err != nil {
		return nil, fmt.Errorf("co-occurring themes: %w", err)
	}
	defer rows.Close()

	var pairs []ThemePair
	for rows.Next() {
		var pair ThemePair
		if err := rows.Scan(&pair.TermA, &pair.TermB, &pair.Count); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, rows.Err()
}

// Stats gathers the row counts shown by the status command.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{CreditsByRole: make(map[Role]int)}

	scalars := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(1) FROM films", &stats.Films},
		{"SELECT COUNT(DISTINCT film_id) FROM film_subjects_controlled", &stats.FilmsTagged},
		{"SELECT COUNT(1) FROM people", &stats.People},
		{"SELECT COUNT(1) FROM production_companies", &stats.Companies},
		{"SELECT COUNT(1) FROM controlled_terms", &stats.Terms},
		{"SELECT COUNT(1) FROM subject_mappings", &stats.Mappings},
		{"SELECT COUNT(1) FROM film_subjects_controlled", &stats.Assignments},
	}
	for _, scalar := range scalars {
		if err := s.db.QueryRowContext(ctx, scalar.query).Scan(scalar.dest); err != nil {
			return nil, fmt.Errorf("gather stats: %w", err)
		}
	}

	for _, role := range Roles {
		count, err := s.CreditCount(ctx, role)
		if err != nil {
			return nil, err
		}
		stats.CreditsByRole[role] = count
	}
	return stats, nil
}

// FieldCompleteness is the filled-in rate of one films column.
type FieldCompleteness struct {
	Field   string
	Present int
	Total   int
}

// completenessFields are the films columns whose fill rate the status
// report tracks, in display order.
var completenessFields = []string{
	"release_year", "director", "writer", "producer",
	"genre", "subjects", "literary_credits", "source_citations",
}

// Completeness reports, per tracked films column, how many rows carry a
// non-empty value.
func (s *Store) Completeness(ctx context.Context) ([]FieldCompleteness, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM films").Scan(&total); err != nil {
		return nil, fmt.Errorf("count films: %w", err)
	}

	results := make([]FieldCompleteness, 0, len(completenessFields))
	for _, field := range completenessFields {
		var present int
		// field names come from the fixed list above, not user input.
		query := fmt.Sprintf(
			`SELECT COUNT(1) FROM films WHERE %q IS NOT NULL AND %q != ''`, field, field)
		if err := s.db.QueryRowContext(ctx, query).Scan(&present); err != nil {
			return nil, fmt.Errorf("completeness of %s: %w", field, err)
		}
		results = append(results, FieldCompleteness{Field: field, Present: present, Total: total})
	}
	return results, nil
}

// TermsByFacet counts vocabulary terms per facet, ordered by facet.
func (s *Store) TermsByFacet(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT facet, COUNT(1) FROM controlled_terms GROUP BY facet`)
	if err != nil {
		return nil, fmt.Errorf("terms by facet: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var facet string
		var count int
		if err := rows.Scan(&facet, &count); err != nil {
			return nil, err
		}
		counts[facet] = count
	}
	return counts, rows.Err()
}
