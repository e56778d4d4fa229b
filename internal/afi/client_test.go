package afi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const searchPayload = `{
	"MovieSearch": {
		"Results": [
			{"Document": {
				"MovieId": "4051",
				"MovieName": "Ramona",
				"ReleaseYear": 1928,
				"Director": "Edwin Carewe",
				"Genre": ["Drama"],
				"Subjects": "Mexican Americans|California|Ranch life",
				"LiteraryNoteCredits": "Helen Hunt Jackson",
				"ProductionCompany": ["Inspiration Pictures, Inc."],
				"DistributionCompany": ["United Artists Corp."]
			}},
			{"Document": {
				"MovieId": "9999",
				"MovieName": "Ramona",
				"ReleaseYear": "1936"
			}}
		]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := New(server.URL, "test-agent", 5*time.Second)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestClientSearchDecodesResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/Search/Search" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostFormValue("searchText"); got != "Ramona" {
			t.Errorf("searchText = %q", got)
		}
		if got := r.PostFormValue("searchField"); got != "MovieName" {
			t.Errorf("searchField = %q", got)
		}
		if got := r.Header.Get("X-Requested-With"); got != "XMLHttpRequest" {
			t.Errorf("X-Requested-With = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchPayload))
	})

	resp, err := client.Search(context.Background(), "Ramona")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	docs := resp.Documents()
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}

	first := docs[0]
	if first.MovieID != "4051" || first.Director != "Edwin Carewe" {
		t.Errorf("unexpected first document: %+v", first)
	}
	// Numeric and quoted years both decode.
	if string(first.ReleaseYear) != "1928" || string(docs[1].ReleaseYear) != "1936" {
		t.Errorf("years = %q, %q", first.ReleaseYear, docs[1].ReleaseYear)
	}
	// Scalar subjects still land as a one-element list.
	if first.Subjects.Joined() != "Mexican Americans|California|Ranch life" {
		t.Errorf("Subjects = %q", first.Subjects.Joined())
	}
	if first.Genre.Joined() != "Drama" {
		t.Errorf("Genre = %q", first.Genre.Joined())
	}
}

func TestClientSearchRejectsServerErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	})

	if _, err := client.Search(context.Background(), "Freckles"); err == nil {
		t.Fatal("expected error for 503 response")
	}
}

func TestClientSearchRejectsEmptyTitle(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	if _, err := client.Search(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestExactMatch(t *testing.T) {
	resp := &SearchResponse{MovieSearch: MovieSearch{Results: []Result{
		{Document: Document{MovieID: "1", MovieName: "Ramona", ReleaseYear: "1928"}},
		{Document: Document{MovieID: "2", MovieName: "Ramona", ReleaseYear: "1936"}},
		{Document: Document{MovieID: "3", MovieName: "Ramona", ReleaseYear: "unknown"}},
		{Document: Document{MovieID: "4", MovieName: "The Ramona Story", ReleaseYear: "1928"}},
	}}}

	if doc := ExactMatch(resp, "RAMONA", 1936); doc == nil || doc.MovieID != "2" {
		t.Errorf("case-insensitive title match failed: %+v", doc)
	}
	if doc := ExactMatch(resp, "Ramona", 1910); doc != nil {
		t.Errorf("wrong year should not match, got %+v", doc)
	}
	if doc := ExactMatch(resp, "The Ramona Story", 1928); doc == nil || doc.MovieID != "4" {
		t.Errorf("exact title should match: %+v", doc)
	}
}
