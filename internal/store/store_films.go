package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

const filmColumns = `id, afi_movie_id, title, release_year, release_date, director, director_id,
	writer, producer, genre, sub_genre, film_type, subjects, literary_credits,
	source_citations, filming_location, created_at`

// cleanableFields are the films columns the cleaning and normalization
// passes may rewrite. UpdateFilmField rejects anything else.
var cleanableFields = map[string]bool{
	"director":         true,
	"director_id":      true,
	"writer":           true,
	"producer":         true,
	"genre":            true,
	"sub_genre":        true,
	"subjects":         true,
	"literary_credits": true,
	"source_citations": true,
	"filming_location": true,
}

// UpsertFilm inserts a film keyed by its AFI movie id, or refreshes the
// catalog fields of the existing row. It reports the row id and whether a new
// row was created. Re-running a collect over the same list is a no-op apart
// from field refreshes.
func (s *Store) UpsertFilm(ctx context.Context, film *Film) (int64, bool, error) {
	if film.AFIMovieID == "" {
		return 0, false, errors.New("film is missing an AFI movie id")
	}

	var existing int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM films WHERE afi_movie_id = ?", film.AFIMovieID).Scan(&existing)
	switch {
	case err == nil:
		_, err = s.db.ExecContext(ctx, `
			UPDATE films SET
				title = ?, release_year = ?, release_date = ?, director = ?, director_id = ?,
				writer = ?, producer = ?, genre = ?, sub_genre = ?, film_type = ?,
				subjects = ?, literary_credits = ?, source_citations = ?, filming_location = ?
			WHERE id = ?`,
			nullableString(film.Title), nullableInt(film.ReleaseYear), nullableString(film.ReleaseDate),
			nullableString(film.Director), nullableString(film.DirectorID),
			nullableString(film.Writer), nullableString(film.Producer),
			nullableString(film.Genre), nullableString(film.SubGenre), nullableString(film.FilmType),
			nullableString(film.Subjects), nullableString(film.LiteraryCredits),
			nullableString(film.SourceCitations), nullableString(film.FilmingLocation),
			existing)
		if err != nil {
			return 0, false, fmt.Errorf("update film %s: %w", film.AFIMovieID, err)
		}
		film.ID = existing
		return existing, false, nil
	case errors.Is(err, sql.ErrNoRows):
		if film.CreatedAt.IsZero() {
			film.CreatedAt = time.Now()
		}
		result, err := s.db.ExecContext(ctx, `
			INSERT INTO films (
				afi_movie_id, title, release_year, release_date, director, director_id,
				writer, producer, genre, sub_genre, film_type, subjects, literary_credits,
				source_citations, filming_location, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			film.AFIMovieID, nullableString(film.Title), nullableInt(film.ReleaseYear),
			nullableString(film.ReleaseDate), nullableString(film.Director), nullableString(film.DirectorID),
			nullableString(film.Writer), nullableString(film.Producer),
			nullableString(film.Genre), nullableString(film.SubGenre), nullableString(film.FilmType),
			nullableString(film.Subjects), nullableString(film.LiteraryCredits),
			nullableString(film.SourceCitations), nullableString(film.FilmingLocation),
			timestamp(film.CreatedAt))
		if err != nil {
			return 0, false, fmt.Errorf("insert film %s: %w", film.AFIMovieID, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return 0, false, err
		}
		film.ID = id
		return id, true, nil
	default:
		return 0, false, fmt.Errorf("look up film %s: %w", film.AFIMovieID, err)
	}
}

// FilmByAFIMovieID returns the film collected under the given catalog id, or
// ErrNotFound.
func (s *Store) FilmByAFIMovieID(ctx context.Context, afiMovieID string) (*Film, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+s.filmSelect()+" FROM films WHERE afi_movie_id = ?", afiMovieID)
	film, err := s.scanFilm(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: film %s", ErrNotFound, afiMovieID)
	}
	return film, err
}

// ListFilms returns every film ordered by release year then title, the
// canonical corpus order used by exports and reports.
func (s *Store) ListFilms(ctx context.Context) ([]*Film, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+s.filmSelect()+" FROM films ORDER BY release_year, title")
	if err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	defer rows.Close()
	return s.collectFilms(rows)
}

// FilmsWithSubjects returns films that carry a non-empty raw subjects field,
// in corpus order. These are the tagger's inputs.
func (s *Store) FilmsWithSubjects(ctx context.Context) ([]*Film, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+s.filmSelect()+` FROM films
		 WHERE subjects IS NOT NULL AND TRIM(subjects) != ''
		 ORDER BY release_year, title`)
	if err != nil {
		return nil, fmt.Errorf("list films with subjects: %w", err)
	}
	defer rows.Close()
	return s.collectFilms(rows)
}

// UpdateFilmField rewrites a single cleanable column on one film. The column
// must be in the cleaning allow-list; empty values store as NULL.
func (s *Store) UpdateFilmField(ctx context.Context, filmID int64, field, value string) error {
	if !cleanableFields[field] {
		return fmt.Errorf("field %q is not cleanable", field)
	}
	result, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE films SET %s = ? WHERE id = ?", field),
		nullableString(value), filmID)
	if err != nil {
		return fmt.Errorf("update films.%s: %w", field, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: film %d", ErrNotFound, filmID)
	}
	return nil
}

// SnapshotFilms copies the films table into a timestamped backup table before
// a destructive pass and returns the backup table's name.
func (s *Store) SnapshotFilms(ctx context.Context) (string, error) {
	name := "films_backup_" + time.Now().UTC().Format("20060102_150405")
	if _, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`CREATE TABLE %q AS SELECT * FROM films`, name)); err != nil {
		return "", fmt.Errorf("snapshot films: %w", err)
	}
	return name, nil
}

// ReplaceCompanies swaps a film's company rows for the given set. Companies
// have no identity beyond (film, name, type), so replacement keeps re-collects
// idempotent.
func (s *Store) ReplaceCompanies(ctx context.Context, filmID int64, companies []Company) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM production_companies WHERE film_id = ?", filmID); err != nil {
		return fmt.Errorf("clear companies for film %d: %w", filmID, err)
	}
	for _, company := range companies {
		name := strings.TrimSpace(company.Name)
		if name == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO production_companies (film_id, company_name, company_type) VALUES (?, ?, ?)`,
			filmID, name, string(company.Type)); err != nil {
			return fmt.Errorf("insert company %q for film %d: %w", name, filmID, err)
		}
	}
	return tx.Commit()
}

// CompaniesForFilm returns a film's companies, production credits first.
func (s *Store) CompaniesForFilm(ctx context.Context, filmID int64) ([]Company, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, film_id, company_name, company_type FROM production_companies
		 WHERE film_id = ? ORDER BY company_type DESC, id`, filmID)
	if err != nil {
		return nil, fmt.Errorf("list companies for film %d: %w", filmID, err)
	}
	defer rows.Close()

	var companies []Company
	for rows.Next() {
		var company Company
		var kind string
		if err := rows.Scan(&company.ID, &company.FilmID, &company.Name, &kind); err != nil {
			return nil, err
		}
		company.Type = CompanyType(kind)
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func (s *Store) filmSelect() string {
	if s.caps.FilmSurvivalStatus {
		return filmColumns + ", survival_status"
	}
	return filmColumns
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanFilm(row rowScanner) (*Film, error) {
	var (
		film        Film
		afiMovieID  sql.NullString
		title       sql.NullString
		releaseYear sql.NullInt64
		nullables   [12]sql.NullString
		createdAt   string
		survival    sql.NullString
	)
	dest := []any{
		&film.ID, &afiMovieID, &title, &releaseYear,
		&nullables[0], &nullables[1], &nullables[2], &nullables[3], &nullables[4],
		&nullables[5], &nullables[6], &nullables[7], &nullables[8], &nullables[9],
		&nullables[10], &nullables[11], &createdAt,
	}
	if s.caps.FilmSurvivalStatus {
		dest = append(dest, &survival)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	film.AFIMovieID = afiMovieID.String
	film.Title = title.String
	film.ReleaseYear = int(releaseYear.Int64)
	film.ReleaseDate = nullables[0].String
	film.Director = nullables[1].String
	film.DirectorID = nullables[2].String
	film.Writer = nullables[3].String
	film.Producer = nullables[4].String
	film.Genre = nullables[5].String
	film.SubGenre = nullables[6].String
	film.FilmType = nullables[7].String
	film.Subjects = nullables[8].String
	film.LiteraryCredits = nullables[9].String
	film.SourceCitations = nullables[10].String
	film.FilmingLocation = nullables[11].String
	film.SurvivalStatus = survival.String
	if parsed, err := parseTimeString(createdAt); err == nil {
		film.CreatedAt = parsed
	}
	return &film, nil
}

func (s *Store) collectFilms(rows *sql.Rows) ([]*Film, error) {
	var films []*Film
	for rows.Next() {
		film, err := s.scanFilm(rows)
		if err != nil {
			return nil, err
		}
		films = append(films, film)
	}
	return films, rows.Err()
}
