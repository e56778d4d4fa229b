package credits

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nonmodernist/holreg-database/internal/logging"
	"github.com/nonmodernist/holreg-database/internal/store"
)

// Normalizer converts the films table's raw credit strings into people rows
// and role junctions.
type Normalizer struct {
	store  *store.Store
	logger *slog.Logger
}

// NormalizeSummary reports what one normalization pass touched.
type NormalizeSummary struct {
	FilmsProcessed int
	LinksByRole    map[store.Role]int
	DistinctPeople int
}

// NewNormalizer builds a normalizer over the given store.
func NewNormalizer(st *store.Store, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Normalizer{
		store:  st,
		logger: logging.WithComponent(logger, "normalize"),
	}
}

// Run parses every film's credit fields, upserting each person and linking
// them to the film in billing order. The pass is idempotent: people are
// deduplicated by exact name and junction links are insert-or-ignore, so
// re-running after new collects only adds what is new.
func (n *Normalizer) Run(ctx context.Context) (*NormalizeSummary, error) {
	films, err := n.store.ListFilms(ctx)
	if err != nil {
		return nil, err
	}

	summary := &NormalizeSummary{LinksByRole: make(map[store.Role]int)}
	seen := make(map[string]struct{})

	for _, film := range films {
		for _, role := range store.Roles {
			field := creditField(film, role)
			if field == "" {
				continue
			}
			for position, credit := range Parse(field) {
				personID, err := n.store.UpsertPerson(ctx, credit.Name, SearchKey(credit.Name), credit.AFIID)
				if err != nil {
					return nil, fmt.Errorf("normalize %q on film %d: %w", credit.Name, film.ID, err)
				}
				if err := n.store.LinkCredit(ctx, role, film.ID, personID, position+1, ""); err != nil {
					return nil, err
				}
				seen[credit.Name] = struct{}{}
				summary.LinksByRole[role]++
			}
		}
		summary.FilmsProcessed++
	}
	summary.DistinctPeople = len(seen)

	n.logger.Info("credit normalization finished",
		logging.Int("films", summary.FilmsProcessed),
		logging.Int("people", summary.DistinctPeople),
		logging.Int("directors", summary.LinksByRole[store.RoleDirector]),
		logging.Int("writers", summary.LinksByRole[store.RoleWriter]),
		logging.Int("producers", summary.LinksByRole[store.RoleProducer]),
		logging.Int("authors", summary.LinksByRole[store.RoleAuthor]))
	return summary, nil
}

func creditField(film *store.Film, role store.Role) string {
	switch role {
	case store.RoleDirector:
		return film.Director
	case store.RoleWriter:
		return film.Writer
	case store.RoleProducer:
		return film.Producer
	case store.RoleAuthor:
		return film.LiteraryCredits
	}
	return ""
}
