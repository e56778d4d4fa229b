package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nonmodernist/holreg-database/internal/store"
	"github.com/nonmodernist/holreg-database/internal/vocab"
)

func exportedStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	films := []*store.Film{
		{AFIMovieID: "1", Title: "Freckles", ReleaseYear: 1928,
			Director: "Leo Meehan", LiteraryCredits: "Gene Stratton-Porter",
			Subjects: "Orphans|Rural life"},
		{AFIMovieID: "2", Title: "Laddie", ReleaseYear: 1926,
			Director: "James Leo Meehan", LiteraryCredits: "Gene Stratton-Porter"},
		{AFIMovieID: "3", Title: "Ramona", ReleaseYear: 1936,
			LiteraryCredits: "Helen Hunt Jackson", Subjects: "Indians of North America"},
	}
	for _, film := range films {
		if _, _, err := st.UpsertFilm(ctx, film); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := vocab.NewSeeder(st, nil).Seed(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := vocab.NewTagger(st, nil).Run(ctx, true, false); err != nil {
		t.Fatal(err)
	}
	return st
}

func runExport(t *testing.T, st *store.Store) (string, *Summary) {
	t.Helper()
	dir := t.TempDir()
	exporter := New(st, nil, Options{
		OutputDir:        dir,
		PrettyJSON:       true,
		DecadePartitions: true,
		SiteTitle:        "Hollywood Adaptations of American Women Writers",
		SiteSubtitle:     "Film Adaptations Database (1910-1960)",
	})
	summary, err := exporter.ExportAll(context.Background())
	if err != nil {
		t.Fatalf("ExportAll() error = %v", err)
	}
	return dir, summary
}

func decodeFile(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode %s: %v", name, err)
	}
}

func TestExportFilmsOrderingAndNullHandling(t *testing.T) {
	st := exportedStore(t)
	dir, summary := runExport(t, st)

	if summary.Films != 3 {
		t.Errorf("Films = %d", summary.Films)
	}

	var films []map[string]any
	decodeFile(t, dir, "films.json", &films)
	if len(films) != 3 {
		t.Fatalf("got %d films", len(films))
	}
	// Year then title: Laddie 1926, Freckles 1928, Ramona 1936.
	if films[0]["title"] != "Laddie" || films[2]["title"] != "Ramona" {
		t.Errorf("ordering wrong: %v, %v", films[0]["title"], films[2]["title"])
	}

	// Empty fields are dropped, not nulled.
	if _, ok := films[2]["director"]; ok {
		t.Error("empty director should be omitted from the document")
	}
	if _, ok := films[0]["writer"]; ok {
		t.Error("empty writer should be omitted from the document")
	}

	// controlled_subjects is always present, even with no tags.
	for _, film := range films {
		subjects, ok := film["controlled_subjects"]
		if !ok {
			t.Fatalf("film %v missing controlled_subjects", film["title"])
		}
		if subjects == nil {
			t.Errorf("film %v controlled_subjects is null", film["title"])
		}
	}

	// Ramona's exact mapping landed in the export.
	ramona := films[2]
	text, _ := json.Marshal(ramona["controlled_subjects"])
	if !strings.Contains(string(text), "Native Americans") {
		t.Errorf("Ramona subjects = %s", text)
	}
}

func TestExportDecadePartitions(t *testing.T) {
	st := exportedStore(t)
	dir, _ := runExport(t, st)

	var twenties []map[string]any
	decodeFile(t, dir, "films_1920s.json", &twenties)
	if len(twenties) != 2 {
		t.Errorf("1920s partition has %d films, want 2", len(twenties))
	}
	var thirties []map[string]any
	decodeFile(t, dir, "films_1930s.json", &thirties)
	if len(thirties) != 1 {
		t.Errorf("1930s partition has %d films, want 1", len(thirties))
	}
}

func TestExportAuthors(t *testing.T) {
	st := exportedStore(t)
	dir, _ := runExport(t, st)

	var authors []AuthorDoc
	decodeFile(t, dir, "authors.json", &authors)
	if len(authors) != 2 {
		t.Fatalf("got %d authors", len(authors))
	}
	// Most adapted first.
	if authors[0].Name != "Gene Stratton-Porter" || authors[0].AdaptationCount != 2 {
		t.Errorf("first author = %+v", authors[0])
	}
	if authors[0].FirstAdaptation != 1926 || authors[0].LastAdaptation != 1928 || authors[0].YearSpan != 2 {
		t.Errorf("year span wrong: %+v", authors[0])
	}
	if len(authors[0].Films) != 2 || authors[0].Films[0].Year != 1926 {
		t.Errorf("author films = %+v", authors[0].Films)
	}
}

func TestExportVocabularyAndMetadata(t *testing.T) {
	st := exportedStore(t)
	dir, _ := runExport(t, st)

	var facets []FacetDoc
	decodeFile(t, dir, "controlled_vocabulary.json", &facets)
	if len(facets) == 0 {
		t.Fatal("no facets exported")
	}
	for i := 1; i < len(facets); i++ {
		if facets[i-1].Facet > facets[i].Facet {
			t.Errorf("facets out of order: %q > %q", facets[i-1].Facet, facets[i].Facet)
		}
	}
	var orphanUsage int
	for _, facet := range facets {
		for _, term := range facet.Terms {
			if term.Term == "Orphans" {
				orphanUsage = term.UsageCount
			}
		}
	}
	if orphanUsage != 1 {
		t.Errorf("Orphans usage = %d, want 1", orphanUsage)
	}

	var metadata MetadataDoc
	decodeFile(t, dir, "metadata.json", &metadata)
	if metadata.Statistics.TotalFilms != 3 || metadata.Statistics.TotalAuthors != 2 {
		t.Errorf("statistics = %+v", metadata.Statistics)
	}
	if metadata.Statistics.YearRange.Start != 1926 || metadata.Statistics.YearRange.End != 1936 {
		t.Errorf("year range = %+v", metadata.Statistics.YearRange)
	}
	if metadata.Title == "" || metadata.Generated == "" {
		t.Errorf("metadata incomplete: %+v", metadata)
	}
}

func TestExportSearchIndex(t *testing.T) {
	st := exportedStore(t)
	dir, _ := runExport(t, st)

	var entries []SearchEntryDoc
	decodeFile(t, dir, "search_index.json", &entries)
	if len(entries) != 3 {
		t.Fatalf("got %d entries", len(entries))
	}
	for _, entry := range entries {
		if entry.Searchable != strings.ToLower(entry.Searchable) {
			t.Errorf("searchable text not lowercased: %q", entry.Searchable)
		}
		if entry.Title == "Freckles" {
			if !strings.Contains(entry.Searchable, "gene stratton-porter") ||
				!strings.Contains(entry.Searchable, "orphans") {
				t.Errorf("searchable missing fields: %q", entry.Searchable)
			}
		}
	}
}
