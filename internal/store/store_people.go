package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// UpsertPerson returns the id for the person with exactly this name,
// inserting a new row when the name has never been seen. Identity is the
// exact name string; two spellings are two people until a researcher merges
// them by hand. When the existing row lacks an AFI id and the caller supplies
// one, the id is backfilled.
func (s *Store) UpsertPerson(ctx context.Context, name, nameNormalized, afiID string) (int64, error) {
	if name == "" {
		return 0, errors.New("person name is empty")
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO people (name, name_normalized, afi_id, created_at) VALUES (?, ?, ?, ?)`,
		name, nullableString(nameNormalized), nullableString(afiID), timestamp(time.Now())); err != nil {
		return 0, fmt.Errorf("insert person %q: %w", name, err)
	}

	var (
		id       int64
		existing sql.NullString
	)
	if err := s.db.QueryRowContext(ctx,
		"SELECT person_id, afi_id FROM people WHERE name = ?", name).Scan(&id, &existing); err != nil {
		return 0, fmt.Errorf("look up person %q: %w", name, err)
	}
	if afiID != "" && !existing.Valid {
		if _, err := s.db.ExecContext(ctx,
			"UPDATE people SET afi_id = ? WHERE person_id = ?", afiID, id); err != nil {
			return 0, fmt.Errorf("backfill afi id for %q: %w", name, err)
		}
	}
	return id, nil
}

// PersonByName returns the person with exactly this name, or ErrNotFound.
func (s *Store) PersonByName(ctx context.Context, name string) (*Person, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT person_id, name, name_normalized, afi_id, created_at FROM people WHERE name = ?`, name)
	person, err := scanPerson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: person %q", ErrNotFound, name)
	}
	return person, err
}

// LinkCredit records that a person holds a role on a film at the given
// billing position. Repeating a link is a no-op, which keeps normalization
// runs idempotent.
func (s *Store) LinkCredit(ctx context.Context, role Role, filmID, personID int64, position int, roleNote string) error {
	table, ok := junctionTables[role]
	if !ok {
		return fmt.Errorf("unknown role %q", role)
	}
	if position < 1 {
		position = 1
	}
	_, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT OR IGNORE INTO %s (film_id, person_id, position, role_note) VALUES (?, ?, ?, ?)`, table),
		filmID, personID, position, nullableString(roleNote))
	if err != nil {
		return fmt.Errorf("link %s credit film=%d person=%d: %w", role, filmID, personID, err)
	}
	return nil
}

// CreditsForFilm returns a film's credits for one role in billing order.
func (s *Store) CreditsForFilm(ctx context.Context, role Role, filmID int64) ([]CreditRow, error) {
	table, ok := junctionTables[role]
	if !ok {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT j.film_id, j.person_id, p.name, j.position, COALESCE(j.role_note, '')
			FROM %s j JOIN people p ON p.person_id = j.person_id
			WHERE j.film_id = ? ORDER BY j.position, p.name`, table),
		filmID)
	if err != nil {
		return nil, fmt.Errorf("list %s credits for film %d: %w", role, filmID, err)
	}
	defer rows.Close()

	var credits []CreditRow
	for rows.Next() {
		var credit CreditRow
		if err := rows.Scan(&credit.FilmID, &credit.PersonID, &credit.Name, &credit.Position, &credit.RoleNote); err != nil {
			return nil, err
		}
		credits = append(credits, credit)
	}
	return credits, rows.Err()
}

// Filmography returns the films a person is credited on in one role, in
// corpus order.
func (s *Store) Filmography(ctx context.Context, role Role, personID int64) ([]*Film, error) {
	table, ok := junctionTables[role]
	if !ok {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+s.filmSelect()+fmt.Sprintf(
			` FROM films WHERE id IN (SELECT film_id FROM %s WHERE person_id = ?)
			ORDER BY release_year, title`, table),
		personID)
	if err != nil {
		return nil, fmt.Errorf("filmography for person %d: %w", personID, err)
	}
	defer rows.Close()
	return s.collectFilms(rows)
}

// CreditCount reports how many junction rows exist for a role.
func (s *Store) CreditCount(ctx context.Context, role Role) (int, error) {
	table, ok := junctionTables[role]
	if !ok {
		return 0, fmt.Errorf("unknown role %q", role)
	}
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM "+table).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

func scanPerson(row rowScanner) (*Person, error) {
	var (
		person     Person
		normalized sql.NullString
		afiID      sql.NullString
		createdAt  string
	)
	if err := row.Scan(&person.ID, &person.Name, &normalized, &afiID, &createdAt); err != nil {
		return nil, err
	}
	person.NameNormalized = normalized.String
	person.AFIID = afiID.String
	if parsed, err := parseTimeString(createdAt); err == nil {
		person.CreatedAt = parsed
	}
	return &person, nil
}
