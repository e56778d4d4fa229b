package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InsertTerm adds a controlled vocabulary term, returning the existing id
// when the term is already present.
func (s *Store) InsertTerm(ctx context.Context, term, facet string) (int64, error) {
	if term == "" {
		return 0, errors.New("term is empty")
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO controlled_terms (term, facet, created_at) VALUES (?, ?, ?)`,
		term, facet, timestamp(time.Now())); err != nil {
		return 0, fmt.Errorf("insert term %q: %w", term, err)
	}
	return s.TermID(ctx, term)
}

// TermID returns the id of a controlled term, or ErrNotFound.
func (s *Store) TermID(ctx context.Context, term string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		"SELECT term_id FROM controlled_terms WHERE term = ?", term).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: term %q", ErrNotFound, term)
	}
	if err != nil {
		return 0, fmt.Errorf("look up term %q: %w", term, err)
	}
	return id, nil
}

// ListTerms returns the vocabulary ordered by facet then term. Scope notes
// are included when the database carries that column.
func (s *Store) ListTerms(ctx context.Context) ([]*ControlledTerm, error) {
	query := "SELECT term_id, term, facet, created_at FROM controlled_terms ORDER BY facet, term"
	if s.caps.TermScopeNote {
		query = `SELECT term_id, term, facet, created_at, COALESCE(scope_note, '')
			FROM controlled_terms ORDER BY facet, term`
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()

	var terms []*ControlledTerm
	for rows.Next() {
		var (
			term      ControlledTerm
			createdAt string
		)
		dest := []any{&term.ID, &term.Term, &term.Facet, &createdAt}
		if s.caps.TermScopeNote {
			dest = append(dest, &term.ScopeNote)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		if parsed, err := parseTimeString(createdAt); err == nil {
			term.CreatedAt = parsed
		}
		terms = append(terms, &term)
	}
	return terms, rows.Err()
}

// SetTermNotes fills in a term's scope note and modern equivalent where the
// database carries those hand-added columns. On a plain schema it is a no-op.
func (s *Store) SetTermNotes(ctx context.Context, termID int64, scopeNote, modernEquivalent string) error {
	if s.caps.TermScopeNote && scopeNote != "" {
		if _, err := s.db.ExecContext(ctx,
			"UPDATE controlled_terms SET scope_note = ? WHERE term_id = ?", scopeNote, termID); err != nil {
			return fmt.Errorf("set scope note for term %d: %w", termID, err)
		}
	}
	if s.caps.TermModernEquivalent && modernEquivalent != "" {
		if _, err := s.db.ExecContext(ctx,
			"UPDATE controlled_terms SET modern_equivalent = ? WHERE term_id = ?", modernEquivalent, termID); err != nil {
			return fmt.Errorf("set modern equivalent for term %d: %w", termID, err)
		}
	}
	return nil
}

// UpsertMapping records how a raw AFI subject string resolves to a controlled
// term. A subject maps to exactly one term; re-inserting replaces the target.
func (s *Store) UpsertMapping(ctx context.Context, afiSubject string, termID int64, confidence float64, notes string) error {
	if afiSubject == "" {
		return errors.New("afi subject is empty")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subject_mappings (afi_subject, controlled_term_id, confidence_score, mapping_notes)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(afi_subject) DO UPDATE SET
			controlled_term_id = excluded.controlled_term_id,
			confidence_score = excluded.confidence_score,
			mapping_notes = excluded.mapping_notes`,
		afiSubject, termID, confidence, nullableString(notes))
	if err != nil {
		return fmt.Errorf("upsert mapping %q: %w", afiSubject, err)
	}
	return nil
}

// Mappings returns every subject mapping keyed by the raw AFI subject.
func (s *Store) Mappings(ctx context.Context) (map[string]Mapping, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mapping_id, afi_subject, controlled_term_id, confidence_score, COALESCE(mapping_notes, '')
		FROM subject_mappings`)
	if err != nil {
		return nil, fmt.Errorf("list mappings: %w", err)
	}
	defer rows.Close()

	mappings := make(map[string]Mapping)
	for rows.Next() {
		var mapping Mapping
		if err := rows.Scan(&mapping.ID, &mapping.AFISubject, &mapping.TermID, &mapping.Confidence, &mapping.Notes); err != nil {
			return nil, err
		}
		mappings[mapping.AFISubject] = mapping
	}
	return mappings, rows.Err()
}

// AssignTerm tags a film with a controlled term at the given relevance
// weight. When the pair already exists the stored weight only ever rises;
// two evidence paths to the same term keep the stronger claim.
func (s *Store) AssignTerm(ctx context.Context, filmID, termID int64, weight int, assignmentType string) error {
	if weight < 1 || weight > 3 {
		return fmt.Errorf("relevance weight %d out of range", weight)
	}
	if assignmentType == "" {
		assignmentType = "auto_mapped"
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO film_subjects_controlled (film_id, term_id, relevance_weight, assignment_type, assigned_date)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(film_id, term_id) DO UPDATE SET
			relevance_weight = MAX(relevance_weight, excluded.relevance_weight)`,
		filmID, termID, weight, assignmentType, timestamp(time.Now()))
	if err != nil {
		return fmt.Errorf("assign term %d to film %d: %w", termID, filmID, err)
	}
	return nil
}

// TagsForFilm returns a film's controlled subject tags, strongest first.
func (s *Store) TagsForFilm(ctx context.Context, filmID int64) ([]TagAssignment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT fsc.film_id, fsc.term_id, ct.term, ct.facet, fsc.relevance_weight, fsc.assignment_type
		FROM film_subjects_controlled fsc
		JOIN controlled_terms ct ON ct.term_id = fsc.term_id
		WHERE fsc.film_id = ?
		ORDER BY fsc.relevance_weight DESC, ct.term`, filmID)
	if err != nil {
		return nil, fmt.Errorf("list tags for film %d: %w", filmID, err)
	}
	defer rows.Close()

	var tags []TagAssignment
	for rows.Next() {
		var tag TagAssignment
		if err := rows.Scan(&tag.FilmID, &tag.TermID, &tag.Term, &tag.Facet, &tag.Weight, &tag.AssignmentType); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// ClearTags removes a film's automatic tags ahead of a re-tag. Hand-assigned
// tags survive.
func (s *Store) ClearTags(ctx context.Context, filmID int64) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM film_subjects_controlled WHERE film_id = ? AND assignment_type != 'manual'`, filmID)
	if err != nil {
		return fmt.Errorf("clear tags for film %d: %w", filmID, err)
	}
	return nil
}

// VocabularyUsage returns every term with the number of films tagged with it,
// most used first. Unused terms are included with a zero count.
func (s *Store) VocabularyUsage(ctx context.Context) ([]*ControlledTerm, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ct.term_id, ct.term, ct.facet, ct.created_at, COUNT(fsc.film_id)
		FROM controlled_terms ct
		LEFT JOIN film_subjects_controlled fsc ON fsc.term_id = ct.term_id
		GROUP BY ct.term_id
		ORDER BY COUNT(fsc.film_id) DESC, ct.term`)
	if err != nil {
		return nil, fmt.Errorf("vocabulary usage: %w", err)
	}
	defer rows.Close()

	var terms []*ControlledTerm
	for rows.Next() {
		var (
			term      ControlledTerm
			createdAt string
		)
		if err := rows.Scan(&term.ID, &term.Term, &term.Facet, &createdAt, &term.UsageCount); err != nil {
			return nil, err
		}
		if parsed, err := parseTimeString(createdAt); err == nil {
			term.CreatedAt = parsed
		}
		terms = append(terms, &term)
	}
	return terms, rows.Err()
}
