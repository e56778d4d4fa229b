package vocab

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nonmodernist/holreg-database/internal/logging"
	"github.com/nonmodernist/holreg-database/internal/store"
)

// Seeder installs the shipped vocabulary and mappings into a database.
type Seeder struct {
	store  *store.Store
	logger *slog.Logger
}

// SeedSummary reports what a seeding pass installed.
type SeedSummary struct {
	Terms    int
	Mappings int
}

// NewSeeder builds a seeder over the given store.
func NewSeeder(st *store.Store, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Seeder{store: st, logger: logging.WithComponent(logger, "vocab")}
}

// Seed inserts every shipped term and mapping. Terms and mappings already in
// the database are left alone, so seeding an established database is safe;
// researcher-added terms are never touched.
func (s *Seeder) Seed(ctx context.Context) (*SeedSummary, error) {
	summary := &SeedSummary{}

	for _, seed := range SeedTerms() {
		termID, err := s.store.InsertTerm(ctx, seed.Term, seed.Facet)
		if err != nil {
			return nil, err
		}
		if err := s.store.SetTermNotes(ctx, termID, seed.ScopeNote, seed.ModernEquivalent); err != nil {
			return nil, err
		}
		summary.Terms++
	}

	existing, err := s.store.Mappings(ctx)
	if err != nil {
		return nil, err
	}
	for _, seed := range SeedMappings() {
		if _, ok := existing[seed.AFISubject]; ok {
			continue
		}
		termID, err := s.store.TermID(ctx, seed.Term)
		if err != nil {
			return nil, fmt.Errorf("seed mapping %q: %w", seed.AFISubject, err)
		}
		if err := s.store.UpsertMapping(ctx, seed.AFISubject, termID, seed.Confidence, seed.Notes); err != nil {
			return nil, err
		}
		summary.Mappings++
	}

	s.logger.Info("vocabulary seeded",
		logging.Int("terms", summary.Terms),
		logging.Int("mappings", summary.Mappings))
	return summary, nil
}
