package csvio

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/nonmodernist/holreg-database/internal/store"
	"github.com/nonmodernist/holreg-database/internal/testsupport"
)

func openSeededStore(t *testing.T) *store.Store {
	t.Helper()
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	ctx := context.Background()
	filmID, _, err := st.UpsertFilm(ctx, &store.Film{
		AFIMovieID:      "1001",
		Title:           "Freckles",
		ReleaseYear:     1917,
		LiteraryCredits: "Gene Stratton-Porter",
	})
	if err != nil {
		t.Fatalf("upsert film: %v", err)
	}
	personID, err := st.UpsertPerson(ctx, "Marshall Neilan", "marshall neilan", "")
	if err != nil {
		t.Fatalf("upsert person: %v", err)
	}
	if err := st.LinkCredit(ctx, store.RoleDirector, filmID, personID, 1, ""); err != nil {
		t.Fatalf("link credit: %v", err)
	}
	termID, err := st.InsertTerm(ctx, "Orphans", "Family Relations")
	if err != nil {
		t.Fatalf("insert term: %v", err)
	}
	if err := st.AssignTerm(ctx, filmID, termID, 2, "automatic"); err != nil {
		t.Fatalf("assign term: %v", err)
	}
	return st
}

func TestExportAllWritesEveryTable(t *testing.T) {
	st := openSeededStore(t)
	dir := t.TempDir()

	summary, err := ExportAll(context.Background(), st, dir, nil)
	if err != nil {
		t.Fatalf("ExportAll returned error: %v", err)
	}
	if len(summary.Tables) == 0 {
		t.Fatal("export reported no tables")
	}

	for _, name := range []string{"films.csv", "people.csv", "film_directors.csv", "controlled_terms.csv", "film_subjects_controlled.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing export file %s: %v", name, err)
		}
	}

	file, err := os.Open(filepath.Join(dir, "films.csv"))
	if err != nil {
		t.Fatalf("open films.csv: %v", err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read films.csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("films.csv has %d records, want header plus one row", len(records))
	}
	header := records[0]
	if header[0] != "id" {
		t.Errorf("films.csv first column = %q, want id", header[0])
	}
}

func TestImportAllRestoresRows(t *testing.T) {
	st := openSeededStore(t)
	dir := t.TempDir()
	ctx := context.Background()

	if _, err := ExportAll(ctx, st, dir, nil); err != nil {
		t.Fatalf("ExportAll returned error: %v", err)
	}

	// Wipe the data, then restore it from the CSV files.
	for _, stmt := range []string{
		"DELETE FROM film_subjects_controlled", "DELETE FROM film_directors",
		"DELETE FROM controlled_terms", "DELETE FROM people", "DELETE FROM films",
	} {
		if _, err := st.DB().ExecContext(ctx, stmt); err != nil {
			t.Fatalf("wipe table: %v", err)
		}
	}

	summary, err := ImportAll(ctx, st, dir, nil)
	if err != nil {
		t.Fatalf("ImportAll returned error: %v", err)
	}
	imported := make(map[string]int)
	for _, table := range summary.Tables {
		imported[table.Table] = table.Rows
	}
	if imported["films"] != 1 || imported["people"] != 1 || imported["film_subjects_controlled"] != 1 {
		t.Fatalf("unexpected import counts: %v", imported)
	}

	film, err := st.FilmByAFIMovieID(ctx, "1001")
	if err != nil {
		t.Fatalf("film not restored: %v", err)
	}
	if film.Title != "Freckles" || film.ReleaseYear != 1917 {
		t.Errorf("restored film = %q (%d)", film.Title, film.ReleaseYear)
	}
	credits, err := st.CreditsForFilm(ctx, store.RoleDirector, film.ID)
	if err != nil {
		t.Fatalf("credits not restored: %v", err)
	}
	if len(credits) != 1 || credits[0].Name != "Marshall Neilan" {
		t.Errorf("restored credits = %+v", credits)
	}
}

func TestImportAllRejectsUnknownFile(t *testing.T) {
	st := openSeededStore(t)
	dir := t.TempDir()
	ctx := context.Background()

	if _, err := ExportAll(ctx, st, dir, nil); err != nil {
		t.Fatalf("ExportAll returned error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.csv"), []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}
	if _, err := ImportAll(ctx, st, dir, nil); err == nil {
		t.Fatal("ImportAll accepted a csv file with no matching table")
	}
}
