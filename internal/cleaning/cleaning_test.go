package cleaning

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nonmodernist/holreg-database/internal/store"
)

func TestCleanCrewField(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"trailing catalog id", "Louis King|101085", "Louis King"},
		{"double pipe before id", "Leo Meehan||27953", "Leo Meehan"},
		{"co-credits survive", "Leo Meehan | James Leo Meehan", "Leo Meehan | James Leo Meehan"},
		{"tight separators widen", "A|B|C", "A | B | C"},
		{"id between names", "Louis King|101085|J. Walter Ruben", "Louis King | J. Walter Ruben"},
		{"already clean", "Edwin Carewe", "Edwin Carewe"},
		{"whitespace only", "  Edwin Carewe  ", "Edwin Carewe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanCrewField(tc.input); got != tc.want {
				t.Errorf("CleanCrewField(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestStandardizeSeparators(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Gene Stratton-Porter", "Gene Stratton-Porter"},
		{"  Fannie Hurst ", "Fannie Hurst"},
		{"Kate Douglas Wiggin|Charlotte Thompson", "Kate Douglas Wiggin | Charlotte Thompson"},
		{"Alice Hegan Rice||Anne Crawford Flexner", "Alice Hegan Rice | Anne Crawford Flexner"},
		{"|Mary Roberts Rinehart|", "Mary Roberts Rinehart"},
	}
	for _, tc := range cases {
		if got := StandardizeSeparators(tc.input); got != tc.want {
			t.Errorf("StandardizeSeparators(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestRulesAreIdempotent(t *testing.T) {
	inputs := []string{
		"Louis King|101085",
		"A|B||123|C",
		" Gene Stratton-Porter |  Leo Meehan ",
	}
	for _, rule := range Rules() {
		for _, input := range inputs {
			once := rule.Clean(input)
			if twice := rule.Clean(once); twice != once {
				t.Errorf("rule %q not idempotent: %q -> %q -> %q", rule.Name, input, once, twice)
			}
		}
	}
}

func openSeededStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })

	ctx := context.Background()
	films := []*store.Film{
		{AFIMovieID: "1", Title: "Thunderhead, Son of Flicka", ReleaseYear: 1945, Director: "Louis King|101085"},
		{AFIMovieID: "2", Title: "The Keeper of the Bees", ReleaseYear: 1925,
			Director:        "James Leo Meehan",
			LiteraryCredits: "Gene Stratton-Porter|J. Leo Meehan"},
		{AFIMovieID: "3", Title: "Ramona", ReleaseYear: 1928, Director: "Edwin Carewe"},
	}
	for _, film := range films {
		if _, _, err := st.UpsertFilm(ctx, film); err != nil {
			t.Fatal(err)
		}
	}
	return st
}

func TestBuildPlanFindsOnlyDirtyFields(t *testing.T) {
	st := openSeededStore(t)
	cleaner := New(st, nil)

	plan, err := cleaner.BuildPlan(context.Background())
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}
	if plan.FilmsScanned != 3 {
		t.Errorf("FilmsScanned = %d", plan.FilmsScanned)
	}
	if len(plan.Changes) != 2 {
		t.Fatalf("got %d changes, want 2: %+v", len(plan.Changes), plan.Changes)
	}
	for _, change := range plan.Changes {
		if change.Title == "Ramona" {
			t.Errorf("clean film should produce no changes: %+v", change)
		}
		if change.Before == change.After {
			t.Errorf("no-op change recorded: %+v", change)
		}
	}
}

func TestApplyWritesChangesAndSnapshots(t *testing.T) {
	st := openSeededStore(t)
	cleaner := New(st, nil)
	ctx := context.Background()

	plan, err := cleaner.BuildPlan(ctx)
	if err != nil {
		t.Fatal(err)
	}
	backup, err := cleaner.Apply(ctx, plan)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !strings.HasPrefix(backup, "films_backup_") {
		t.Errorf("backup table = %q", backup)
	}

	film, err := st.FilmByAFIMovieID(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}
	if film.Director != "Louis King" {
		t.Errorf("Director = %q after apply", film.Director)
	}

	film, err = st.FilmByAFIMovieID(ctx, "2")
	if err != nil {
		t.Fatal(err)
	}
	if film.LiteraryCredits != "Gene Stratton-Porter | J. Leo Meehan" {
		t.Errorf("LiteraryCredits = %q after apply", film.LiteraryCredits)
	}

	// A second pass finds nothing left to do.
	plan, err = cleaner.BuildPlan(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !plan.Empty() {
		t.Errorf("second plan not empty: %+v", plan.Changes)
	}

	tables, err := st.Tables(ctx)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, table := range tables {
		if table.Table == backup && table.Rows == 3 {
			found = true
		}
	}
	if !found {
		t.Errorf("backup table %q missing or wrong size", backup)
	}
}
