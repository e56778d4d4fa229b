package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nonmodernist/holreg-database/internal/logging"
	"github.com/nonmodernist/holreg-database/internal/store"
)

// Exporter writes the site's JSON data files from a research database.
type Exporter struct {
	store    *store.Store
	logger   *slog.Logger
	outDir   string
	pretty   bool
	decades  bool
	title    string
	subtitle string
}

// Options configures an export run.
type Options struct {
	OutputDir        string
	PrettyJSON       bool
	DecadePartitions bool
	SiteTitle        string
	SiteSubtitle     string
}

// Summary lists the files an export produced.
type Summary struct {
	Files []string
	Films int
}

// New builds an exporter.
func New(st *store.Store, logger *slog.Logger, opts Options) *Exporter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Exporter{
		store:    st,
		logger:   logging.WithComponent(logger, "export"),
		outDir:   opts.OutputDir,
		pretty:   opts.PrettyJSON,
		decades:  opts.DecadePartitions,
		title:    opts.SiteTitle,
		subtitle: opts.SiteSubtitle,
	}
}

// ExportAll writes every data file the site needs.
func (e *Exporter) ExportAll(ctx context.Context) (*Summary, error) {
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	summary := &Summary{}

	films, err := e.exportFilms(ctx, summary)
	if err != nil {
		return nil, err
	}
	if err := e.exportAuthors(ctx, summary); err != nil {
		return nil, err
	}
	if err := e.exportVocabulary(ctx, summary); err != nil {
		return nil, err
	}
	if err := e.exportAnalysis(ctx, summary); err != nil {
		return nil, err
	}
	if err := e.exportSearchIndex(ctx, films, summary); err != nil {
		return nil, err
	}
	if err := e.exportMetadata(ctx, films, summary); err != nil {
		return nil, err
	}

	e.logger.Info("export finished",
		logging.Int("files", len(summary.Files)),
		logging.Int("films", summary.Films),
		logging.String("dir", e.outDir))
	return summary, nil
}

func (e *Exporter) exportFilms(ctx context.Context, summary *Summary) ([]FilmDoc, error) {
	films, err := e.store.ListFilms(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]FilmDoc, 0, len(films))
	for _, film := range films {
		tags, err := e.store.TagsForFilm(ctx, film.ID)
		if err != nil {
			return nil, err
		}
		subjects := make([]SubjectDoc, 0, len(tags))
		for _, tag := range tags {
			subjects = append(subjects, SubjectDoc{Term: tag.Term, Facet: tag.Facet, Weight: tag.Weight})
		}
		docs = append(docs, FilmDoc{
			ID:                 film.ID,
			AFIMovieID:         film.AFIMovieID,
			Title:              film.Title,
			ReleaseYear:        film.ReleaseYear,
			ReleaseDate:        film.ReleaseDate,
			Director:           film.Director,
			DirectorID:         film.DirectorID,
			Writer:             film.Writer,
			Producer:           film.Producer,
			Genre:              film.Genre,
			SubGenre:           film.SubGenre,
			FilmType:           film.FilmType,
			Subjects:           film.Subjects,
			LiteraryCredits:    film.LiteraryCredits,
			SourceCitations:    film.SourceCitations,
			FilmingLocation:    film.FilmingLocation,
			SurvivalStatus:     film.SurvivalStatus,
			ControlledSubjects: subjects,
		})
	}
	summary.Films = len(docs)

	if err := e.write("films.json", docs, summary); err != nil {
		return nil, err
	}
	if !e.decades {
		return docs, nil
	}

	byDecade := make(map[int][]FilmDoc)
	for _, doc := range docs {
		if doc.ReleaseYear == 0 {
			continue
		}
		decade := (doc.ReleaseYear / 10) * 10
		byDecade[decade] = append(byDecade[decade], doc)
	}
	decades := make([]int, 0, len(byDecade))
	for decade := range byDecade {
		decades = append(decades, decade)
	}
	sort.Ints(decades)
	for _, decade := range decades {
		name := fmt.Sprintf("films_%ds.json", decade)
		if err := e.write(name, byDecade[decade], summary); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

func (e *Exporter) exportAuthors(ctx context.Context, summary *Summary) error {
	groups, err := e.store.AuthorGroups(ctx)
	if err != nil {
		return err
	}

	docs := make([]AuthorDoc, 0, len(groups))
	for _, group := range groups {
		doc := AuthorDoc{Name: group.Author, AdaptationCount: len(group.Films)}
		for _, film := range group.Films {
			doc.Films = append(doc.Films, AuthorFilmDoc{
				ID:             film.ID,
				Title:          film.Title,
				Year:           film.ReleaseYear,
				SurvivalStatus: film.SurvivalStatus,
			})
			if film.ReleaseYear == 0 {
				continue
			}
			if doc.FirstAdaptation == 0 || film.ReleaseYear < doc.FirstAdaptation {
				doc.FirstAdaptation = film.ReleaseYear
			}
			if film.ReleaseYear > doc.LastAdaptation {
				doc.LastAdaptation = film.ReleaseYear
			}
		}
		if doc.FirstAdaptation > 0 {
			doc.YearSpan = doc.LastAdaptation - doc.FirstAdaptation
		}
		docs = append(docs, doc)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].AdaptationCount != docs[j].AdaptationCount {
			return docs[i].AdaptationCount > docs[j].AdaptationCount
		}
		return docs[i].Name < docs[j].Name
	})
	return e.write("authors.json", docs, summary)
}

func (e *Exporter) exportVocabulary(ctx context.Context, summary *Summary) error {
	terms, err := e.store.VocabularyUsage(ctx)
	if err != nil {
		return err
	}
	withNotes := e.store.Capabilities().TermScopeNote
	var scopeNotes map[int64]string
	if withNotes {
		listed, err := e.store.ListTerms(ctx)
		if err != nil {
			return err
		}
		scopeNotes = make(map[int64]string, len(listed))
		for _, term := range listed {
			scopeNotes[term.ID] = term.ScopeNote
		}
	}

	byFacet := make(map[string]*FacetDoc)
	var order []string
	for _, term := range terms {
		facet, ok := byFacet[term.Facet]
		if !ok {
			facet = &FacetDoc{Facet: term.Facet}
			byFacet[term.Facet] = facet
			order = append(order, term.Facet)
		}
		doc := TermDoc{Term: term.Term, UsageCount: term.UsageCount}
		if withNotes {
			doc.ScopeNote = scopeNotes[term.ID]
		}
		facet.Terms = append(facet.Terms, doc)
		facet.TermCount++
		facet.TotalUsage += term.UsageCount
	}
	sort.Strings(order)

	docs := make([]FacetDoc, 0, len(order))
	for _, name := range order {
		facet := byFacet[name]
		sort.Slice(facet.Terms, func(i, j int) bool { return facet.Terms[i].Term < facet.Terms[j].Term })
		docs = append(docs, *facet)
	}
	return e.write("controlled_vocabulary.json", docs, summary)
}

func (e *Exporter) exportAnalysis(ctx context.Context, summary *Summary) error {
	rows, err := e.store.ThemesByDecade(ctx, 2)
	if err != nil {
		return err
	}

	trends := make(map[string]*ThemeTrendDoc)
	var order []string
	for _, row := range rows {
		trend, ok := trends[row.Term]
		if !ok {
			trend = &ThemeTrendDoc{Facet: row.Facet, Term: row.Term, Decades: make(map[string]int)}
			trends[row.Term] = trend
			order = append(order, row.Term)
		}
		trend.Decades[strconv.Itoa(row.Decade)+"s"] += row.FilmCount
		trend.Total += row.FilmCount
	}

	var themeDocs []ThemeTrendDoc
	for _, term := range order {
		trend := trends[term]
		if trend.Total > 2 {
			themeDocs = append(themeDocs, *trend)
		}
	}
	sort.SliceStable(themeDocs, func(i, j int) bool {
		if themeDocs[i].Facet != themeDocs[j].Facet {
			return themeDocs[i].Facet < themeDocs[j].Facet
		}
		return themeDocs[i].Total > themeDocs[j].Total
	})

	pairs, err := e.store.CoOccurringThemes(ctx, 2, 4, 50)
	if err != nil {
		return err
	}
	pairDocs := make([]CoOccurrenceDoc, 0, len(pairs))
	for _, pair := range pairs {
		pairDocs = append(pairDocs, CoOccurrenceDoc{Theme1: pair.TermA, Theme2: pair.TermB, Count: pair.Count})
	}

	analysis := AnalysisDoc{ThemesByDecade: themeDocs, CoOccurringThemes: pairDocs}
	if analysis.ThemesByDecade == nil {
		analysis.ThemesByDecade = []ThemeTrendDoc{}
	}
	return e.write("themes_analysis.json", analysis, summary)
}

func (e *Exporter) exportSearchIndex(ctx context.Context, films []FilmDoc, summary *Summary) error {
	entries := make([]SearchEntryDoc, 0, len(films))
	for _, film := range films {
		parts := []string{film.Title}
		if film.ReleaseYear > 0 {
			parts = append(parts, strconv.Itoa(film.ReleaseYear))
		}
		parts = append(parts, film.LiteraryCredits, film.Director, film.Subjects)
		for _, subject := range film.ControlledSubjects {
			parts = append(parts, subject.Term)
		}
		kept := parts[:0]
		for _, part := range parts {
			if part != "" {
				kept = append(kept, part)
			}
		}
		entries = append(entries, SearchEntryDoc{
			ID:         film.ID,
			Title:      film.Title,
			Year:       film.ReleaseYear,
			Author:     film.LiteraryCredits,
			Searchable: strings.ToLower(strings.Join(kept, " ")),
		})
	}
	return e.write("search_index.json", entries, summary)
}

func (e *Exporter) exportMetadata(ctx context.Context, films []FilmDoc, summary *Summary) error {
	authors := make(map[string]struct{})
	var start, end int
	for _, film := range films {
		if film.LiteraryCredits != "" {
			authors[film.LiteraryCredits] = struct{}{}
		}
		if film.ReleaseYear == 0 {
			continue
		}
		if start == 0 || film.ReleaseYear < start {
			start = film.ReleaseYear
		}
		if film.ReleaseYear > end {
			end = film.ReleaseYear
		}
	}
	terms, err := e.store.ListTerms(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	metadata := MetadataDoc{
		Title:     e.title,
		Subtitle:  e.subtitle,
		Generated: now.Format(time.RFC3339),
		Statistics: StatisticsDoc{
			TotalFilms:           len(films),
			TotalAuthors:         len(authors),
			YearRange:            YearRangeDoc{Start: start, End: end},
			TotalControlledTerms: len(terms),
		},
		LastUpdated: now.Format("January 2, 2006"),
	}
	return e.write("metadata.json", metadata, summary)
}

func (e *Exporter) write(name string, payload any, summary *Summary) error {
	var (
		data []byte
		err  error
	)
	if e.pretty {
		data, err = json.MarshalIndent(payload, "", "  ")
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(e.outDir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	summary.Files = append(summary.Files, name)
	return nil
}
