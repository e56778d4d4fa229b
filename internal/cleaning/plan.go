package cleaning

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nonmodernist/holreg-database/internal/logging"
	"github.com/nonmodernist/holreg-database/internal/store"
)

// Change is one planned field rewrite.
type Change struct {
	FilmID int64
	Title  string
	Field  string
	Rule   string
	Before string
	After  string
}

// Plan is the full set of rewrites a cleaning pass would make.
type Plan struct {
	Changes      []Change
	FilmsScanned int
}

// Empty reports whether the plan has nothing to do.
func (p *Plan) Empty() bool {
	return len(p.Changes) == 0
}

// Cleaner builds and applies cleaning plans against a store.
type Cleaner struct {
	store  *store.Store
	logger *slog.Logger
	rules  []Rule
}

// New creates a cleaner with the standard rule set.
func New(st *store.Store, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Cleaner{
		store:  st,
		logger: logging.WithComponent(logger, "cleaning"),
		rules:  Rules(),
	}
}

// BuildPlan scans every film and records the rewrites the rule set would
// make. Nothing is written.
func (c *Cleaner) BuildPlan(ctx context.Context) (*Plan, error) {
	films, err := c.store.ListFilms(ctx)
	if err != nil {
		return nil, err
	}

	plan := &Plan{FilmsScanned: len(films)}
	for _, film := range films {
		for _, rule := range c.rules {
			for _, field := range rule.Fields {
				before := fieldValue(film, field)
				if before == "" {
					continue
				}
				after := rule.Clean(before)
				if after == before {
					continue
				}
				plan.Changes = append(plan.Changes, Change{
					FilmID: film.ID,
					Title:  film.Title,
					Field:  field,
					Rule:   rule.Name,
					Before: before,
					After:  after,
				})
				// Later rules see the cleaned value.
				setFieldValue(film, field, after)
			}
		}
	}
	c.logger.Info("cleaning plan built",
		logging.Int("films", plan.FilmsScanned),
		logging.Int("changes", len(plan.Changes)))
	return plan, nil
}

// Apply snapshots the films table, then writes every change in the plan. The
// backup table's name is returned so the status output can point at it.
func (c *Cleaner) Apply(ctx context.Context, plan *Plan) (string, error) {
	if plan.Empty() {
		return "", nil
	}
	backup, err := c.store.SnapshotFilms(ctx)
	if err != nil {
		return "", err
	}
	c.logger.Info("films table snapshotted", logging.String("backup", backup))

	for _, change := range plan.Changes {
		if err := c.store.UpdateFilmField(ctx, change.FilmID, change.Field, change.After); err != nil {
			return backup, fmt.Errorf("apply change to film %d field %s: %w", change.FilmID, change.Field, err)
		}
	}
	c.logger.Info("cleaning plan applied", logging.Int("changes", len(plan.Changes)))
	return backup, nil
}

func fieldValue(film *store.Film, field string) string {
	switch field {
	case "director":
		return film.Director
	case "writer":
		return film.Writer
	case "producer":
		return film.Producer
	case "genre":
		return film.Genre
	case "sub_genre":
		return film.SubGenre
	case "subjects":
		return film.Subjects
	case "literary_credits":
		return film.LiteraryCredits
	case "source_citations":
		return film.SourceCitations
	case "filming_location":
		return film.FilmingLocation
	}
	return ""
}

func setFieldValue(film *store.Film, field, value string) {
	switch field {
	case "director":
		film.Director = value
	case "writer":
		film.Writer = value
	case "producer":
		film.Producer = value
	case "genre":
		film.Genre = value
	case "sub_genre":
		film.SubGenre = value
	case "subjects":
		film.Subjects = value
	case "literary_credits":
		film.LiteraryCredits = value
	case "source_citations":
		film.SourceCitations = value
	case "filming_location":
		film.FilmingLocation = value
	}
}
