package afi

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nonmodernist/holreg-database/internal/logging"
	"github.com/nonmodernist/holreg-database/internal/store"
)

// Collector drives list-based collection runs: search, exact-match, land in
// the database, wait, repeat.
type Collector struct {
	searcher Searcher
	store    *store.Store
	logger   *slog.Logger
	delay    time.Duration
	cache    map[string]*SearchResponse
}

// Summary reports the outcome of one collection run.
type Summary struct {
	RunID     string
	Requested int
	Matched   int
	Created   int
	Updated   int
	Unmatched []ListEntry
	Failed    []ListEntry
}

// NewCollector builds a collector. delay spaces out catalog requests; the
// catalog is a small institution's server and collection runs are never
// urgent.
func NewCollector(searcher Searcher, st *store.Store, logger *slog.Logger, delay time.Duration) *Collector {
	if logger == nil {
		logger = logging.NewNop()
	}
	if delay <= 0 {
		delay = time.Second
	}
	return &Collector{
		searcher: searcher,
		store:    st,
		logger:   logging.WithComponent(logger, "collector"),
		delay:    delay,
		cache:    make(map[string]*SearchResponse),
	}
}

// Collect processes the list in order. Entries without an exact match are
// reported, never guessed at. A failed search skips just that entry; the
// rest of the list still runs, and the failures come back in the summary
// so they can be retried.
func (c *Collector) Collect(ctx context.Context, entries []ListEntry) (*Summary, error) {
	summary := &Summary{RunID: uuid.NewString(), Requested: len(entries)}
	log := c.logger.With(logging.String("run_id", summary.RunID))
	log.Info("starting collection run", logging.Int("films", len(entries)))

	for i, entry := range entries {
		if i > 0 {
			if err := sleepCtx(ctx, c.delay); err != nil {
				return summary, err
			}
		}
		log.Info("searching catalog",
			logging.String("title", entry.Title),
			logging.Int("year", entry.Year),
			logging.Int("position", i+1))

		resp, err := c.search(ctx, entry.Title)
		if err != nil {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			log.Warn("search failed",
				logging.String("title", entry.Title),
				logging.Int("year", entry.Year),
				logging.Error(err))
			summary.Failed = append(summary.Failed, entry)
			continue
		}

		doc := ExactMatch(resp, entry.Title, entry.Year)
		if doc == nil {
			log.Warn("no exact match",
				logging.String("title", entry.Title),
				logging.Int("year", entry.Year),
				logging.Int("results", len(resp.Documents())))
			summary.Unmatched = append(summary.Unmatched, entry)
			continue
		}

		created, err := c.land(ctx, doc, entry.Year)
		if err != nil {
			return summary, err
		}
		summary.Matched++
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
		log.Info("saved film",
			logging.String("title", doc.MovieName),
			logging.String("afi_movie_id", doc.MovieID),
			logging.Bool("created", created))
	}

	log.Info("collection run finished",
		logging.Int("matched", summary.Matched),
		logging.Int("unmatched", len(summary.Unmatched)),
		logging.Int("failed", len(summary.Failed)))
	return summary, nil
}

func (c *Collector) search(ctx context.Context, title string) (*SearchResponse, error) {
	key := strings.ToLower(strings.TrimSpace(title))
	if cached, ok := c.cache[key]; ok {
		return cached, nil
	}
	resp, err := c.searcher.Search(ctx, title)
	if err != nil {
		return nil, err
	}
	c.cache[key] = resp
	return resp, nil
}

func (c *Collector) land(ctx context.Context, doc *Document, year int) (bool, error) {
	film := &store.Film{
		AFIMovieID:      doc.MovieID,
		Title:           doc.MovieName,
		ReleaseYear:     year,
		ReleaseDate:     doc.ReleaseDate,
		Director:        doc.Director,
		DirectorID:      doc.DirectorID,
		Writer:          doc.Writer,
		Producer:        doc.Producer,
		Genre:           doc.Genre.Joined(),
		SubGenre:        doc.SubGenre,
		FilmType:        doc.FilmType,
		Subjects:        doc.Subjects.Joined(),
		LiteraryCredits: doc.LiteraryNoteCredits,
		SourceCitations: doc.SourceCitations,
		FilmingLocation: doc.NoteGeo,
	}
	filmID, created, err := c.store.UpsertFilm(ctx, film)
	if err != nil {
		return false, err
	}

	companies := make([]store.Company, 0, len(doc.ProductionCompany)+len(doc.DistributionCompany))
	for _, name := range doc.ProductionCompany {
		companies = append(companies, store.Company{Name: name, Type: store.CompanyProduction})
	}
	for _, name := range doc.DistributionCompany {
		companies = append(companies, store.Company{Name: name, Type: store.CompanyDistribution})
	}
	if err := c.store.ReplaceCompanies(ctx, filmID, companies); err != nil {
		return false, err
	}
	return created, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
