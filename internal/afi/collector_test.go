package afi

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nonmodernist/holreg-database/internal/testsupport"
)

type stubSearcher struct {
	responses map[string]*SearchResponse
	calls     int
}

func (s *stubSearcher) Search(ctx context.Context, title string) (*SearchResponse, error) {
	s.calls++
	if resp, ok := s.responses[title]; ok {
		return resp, nil
	}
	return &SearchResponse{}, nil
}

func responseWith(docs ...Document) *SearchResponse {
	resp := &SearchResponse{}
	for _, doc := range docs {
		resp.MovieSearch.Results = append(resp.MovieSearch.Results, Result{Document: doc})
	}
	return resp
}

func TestCollectorLandsExactMatches(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	searcher := &stubSearcher{responses: map[string]*SearchResponse{
		"Ramona": responseWith(Document{
			MovieID:             "4051",
			MovieName:           "Ramona",
			ReleaseYear:         "1928",
			Director:            "Edwin Carewe",
			Genre:               StringList{"Drama"},
			Subjects:            StringList{"Mexican Americans", "California"},
			LiteraryNoteCredits: "Helen Hunt Jackson",
			ProductionCompany:   StringList{"Inspiration Pictures, Inc."},
			DistributionCompany: StringList{"United Artists Corp."},
		}),
	}}

	collector := NewCollector(searcher, st, nil, time.Millisecond)
	summary, err := collector.Collect(context.Background(), []ListEntry{
		{Title: "Ramona", Year: 1928},
		{Title: "The Shepherd of the Hills", Year: 1919},
	})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if summary.Matched != 1 || summary.Created != 1 {
		t.Errorf("summary = %+v, want one created match", summary)
	}
	if len(summary.Unmatched) != 1 || summary.Unmatched[0].Title != "The Shepherd of the Hills" {
		t.Errorf("Unmatched = %+v", summary.Unmatched)
	}
	if summary.RunID == "" {
		t.Error("run id should be set")
	}

	ctx := context.Background()
	film, err := st.FilmByAFIMovieID(ctx, "4051")
	if err != nil {
		t.Fatalf("film not landed: %v", err)
	}
	if film.Subjects != "Mexican Americans|California" {
		t.Errorf("Subjects = %q", film.Subjects)
	}
	if film.LiteraryCredits != "Helen Hunt Jackson" {
		t.Errorf("LiteraryCredits = %q", film.LiteraryCredits)
	}

	companies, err := st.CompaniesForFilm(ctx, film.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(companies) != 2 {
		t.Fatalf("got %d companies, want 2", len(companies))
	}
}

type failingSearcher struct {
	inner   Searcher
	failFor map[string]error
}

func (s *failingSearcher) Search(ctx context.Context, title string) (*SearchResponse, error) {
	if err, ok := s.failFor[title]; ok {
		return nil, err
	}
	return s.inner.Search(ctx, title)
}

func TestCollectorSearchFailureSkipsEntry(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	searcher := &failingSearcher{
		failFor: map[string]error{
			"The Girl of the Limberlost": errors.New("connection reset by peer"),
		},
		inner: &stubSearcher{responses: map[string]*SearchResponse{
			"Ramona": responseWith(Document{
				MovieID:     "4051",
				MovieName:   "Ramona",
				ReleaseYear: "1928",
			}),
		}},
	}

	collector := NewCollector(searcher, st, nil, time.Millisecond)
	summary, err := collector.Collect(context.Background(), []ListEntry{
		{Title: "The Girl of the Limberlost", Year: 1924},
		{Title: "Ramona", Year: 1928},
	})
	if err != nil {
		t.Fatalf("Collect() error = %v, want nil; a bad connection on one entry must not end the run", err)
	}

	if summary.Matched != 1 || summary.Created != 1 {
		t.Errorf("summary = %+v, want the entry after the failure to land", summary)
	}
	if len(summary.Failed) != 1 || summary.Failed[0].Title != "The Girl of the Limberlost" {
		t.Errorf("Failed = %+v", summary.Failed)
	}
	if len(summary.Unmatched) != 0 {
		t.Errorf("Unmatched = %+v, failures should be reported separately", summary.Unmatched)
	}

	if _, err := st.FilmByAFIMovieID(context.Background(), "4051"); err != nil {
		t.Errorf("film after the failed entry not landed: %v", err)
	}
}

func TestCollectorStopsOnCancelledContext(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	searcher := &failingSearcher{
		failFor: map[string]error{"Ramona": context.Canceled},
		inner:   &stubSearcher{},
	}
	cancel()

	collector := NewCollector(searcher, st, nil, time.Millisecond)
	_, err := collector.Collect(ctx, []ListEntry{
		{Title: "Ramona", Year: 1928},
		{Title: "Freckles", Year: 1917},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Collect() error = %v, want context.Canceled", err)
	}
}

func TestCollectorRecollectIsIdempotent(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	searcher := &stubSearcher{responses: map[string]*SearchResponse{
		"Freckles": responseWith(Document{
			MovieID:           "27953",
			MovieName:         "Freckles",
			ReleaseYear:       "1928",
			ProductionCompany: StringList{"FBO Pictures Corp."},
		}),
	}}

	collector := NewCollector(searcher, st, nil, time.Millisecond)
	entries := []ListEntry{{Title: "Freckles", Year: 1928}}

	first, err := collector.Collect(context.Background(), entries)
	if err != nil {
		t.Fatal(err)
	}
	second, err := collector.Collect(context.Background(), entries)
	if err != nil {
		t.Fatal(err)
	}
	if first.Created != 1 || second.Created != 0 || second.Updated != 1 {
		t.Errorf("first = %+v second = %+v", first, second)
	}
	// Second run hits the instance cache, not the catalog.
	if searcher.calls != 1 {
		t.Errorf("searcher called %d times, want 1", searcher.calls)
	}

	ctx := context.Background()
	film, err := st.FilmByAFIMovieID(ctx, "27953")
	if err != nil {
		t.Fatal(err)
	}
	companies, err := st.CompaniesForFilm(ctx, film.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(companies) != 1 {
		t.Errorf("companies duplicated across runs: %d rows", len(companies))
	}
}

func TestReadList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "films.csv")
	content := "title,year\nRamona,1928\n# paused for now\n\"Uncle Tom's Cabin\",1927\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadList(path)
	if err != nil {
		t.Fatalf("ReadList() error = %v", err)
	}
	want := []ListEntry{{"Ramona", 1928}, {"Uncle Tom's Cabin", 1927}}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestReadListRoundTripsFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "films.csv")
	testsupport.WriteFilmList(t, path, []testsupport.ListEntry{
		{Title: "Freckles", Year: 1917},
		{Title: "Michael O'Halloran", Year: 1923},
	})

	entries, err := ReadList(path)
	if err != nil {
		t.Fatalf("ReadList() error = %v", err)
	}
	if len(entries) != 2 || entries[1].Title != "Michael O'Halloran" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestReadListRejectsBadYears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "films.csv")
	if err := os.WriteFile(path, []byte("Ramona,nineteen-twenty-eight\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadList(path); err == nil {
		t.Fatal("expected error for unparseable year")
	}
}
