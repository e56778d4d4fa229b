package vocab

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nonmodernist/holreg-database/internal/store"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if _, err := NewSeeder(st, nil).Seed(context.Background()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	return st
}

func TestSeedIsRepeatable(t *testing.T) {
	st := seededStore(t)
	ctx := context.Background()

	terms, err := st.ListTerms(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != len(SeedTerms()) {
		t.Errorf("got %d terms, want %d", len(terms), len(SeedTerms()))
	}

	// Seeding again adds nothing and fails nothing.
	summary, err := NewSeeder(st, nil).Seed(ctx)
	if err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	if summary.Mappings != 0 {
		t.Errorf("second seed inserted %d mappings", summary.Mappings)
	}
	terms, err = st.ListTerms(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != len(SeedTerms()) {
		t.Errorf("term count changed on reseed: %d", len(terms))
	}
}

func TestSeedMappingsResolveToSeedTerms(t *testing.T) {
	terms := make(map[string]bool)
	for _, term := range SeedTerms() {
		terms[term.Term] = true
	}
	for _, mapping := range SeedMappings() {
		if !terms[mapping.Term] {
			t.Errorf("mapping %q points at unknown term %q", mapping.AFISubject, mapping.Term)
		}
	}
	for _, rule := range PatternRules() {
		if !terms[rule.Term] {
			t.Errorf("pattern %q points at unknown term %q", rule.Pattern, rule.Term)
		}
	}
}

func addFilm(t *testing.T, st *store.Store, afiID, title string, year int, subjects string) int64 {
	t.Helper()
	id, _, err := st.UpsertFilm(context.Background(), &store.Film{
		AFIMovieID: afiID, Title: title, ReleaseYear: year, Subjects: subjects,
	})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func tagByTerm(t *testing.T, st *store.Store, filmID int64) map[string]store.TagAssignment {
	t.Helper()
	tags, err := st.TagsForFilm(context.Background(), filmID)
	if err != nil {
		t.Fatal(err)
	}
	byTerm := make(map[string]store.TagAssignment, len(tags))
	for _, tag := range tags {
		byTerm[tag.Term] = tag
	}
	return byTerm
}

func TestTaggerExactMappingBeatsPattern(t *testing.T) {
	st := seededStore(t)
	ctx := context.Background()

	// "Indians of North America" has an exact mapping to Native Americans.
	// No pattern should intercept it.
	filmID := addFilm(t, st, "1", "Ramona", 1928, "Indians of North America|Ranch life")

	summary, err := NewTagger(st, nil).Run(ctx, true, false)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	tags := tagByTerm(t, st, filmID)
	if _, ok := tags["Native Americans"]; !ok {
		t.Errorf("exact mapping not applied, tags = %v", tags)
	}
	if summary.Unmapped["Ranch life"] != 1 {
		t.Errorf("Unmapped = %v, want Ranch life reported", summary.Unmapped)
	}
}

func TestTaggerWeighsConfidenceAndRepetition(t *testing.T) {
	st := seededStore(t)
	ctx := context.Background()

	// Murder maps with confidence 1.0 and repeats; Bigamy maps at 0.8 once.
	filmID := addFilm(t, st, "2", "Within the Law", 1923, "Murder|Murder|Bigamy|Orphans")

	if _, err := NewTagger(st, nil).Run(ctx, true, false); err != nil {
		t.Fatal(err)
	}
	tags := tagByTerm(t, st, filmID)

	if tag := tags["Murder"]; tag.Weight != 3 {
		t.Errorf("repeated high-confidence subject weight = %d, want 3", tag.Weight)
	}
	if tag := tags["Marriage"]; tag.Weight != 1 {
		t.Errorf("single low-confidence subject weight = %d, want 1", tag.Weight)
	}
	if tag := tags["Orphans"]; tag.Weight != 2 {
		t.Errorf("single high-confidence subject weight = %d, want 2", tag.Weight)
	}
}

func TestTaggerPatternAndCompoundFallbacks(t *testing.T) {
	st := seededStore(t)
	ctx := context.Background()

	filmID := addFilm(t, st, "3", "The Shepherd of the Hills", 1928,
		"Attempted murder|Marriage--Mixed|Grandmothers and grandchildren")

	if _, err := NewTagger(st, nil).Run(ctx, true, false); err != nil {
		t.Fatal(err)
	}
	tags := tagByTerm(t, st, filmID)

	if _, ok := tags["Murder"]; !ok {
		t.Error("pattern rule for murder did not fire")
	}
	if _, ok := tags["Marriage"]; !ok {
		t.Error("compound heading did not fall back to its base term")
	}
	if _, ok := tags["Family relationships"]; !ok {
		t.Error("grandmother pattern did not fire")
	}
}

func TestTaggerDryRunWritesNothing(t *testing.T) {
	st := seededStore(t)
	ctx := context.Background()

	filmID := addFilm(t, st, "4", "Stella Dallas", 1925, "Mothers and daughters|Class distinction")

	summary, err := NewTagger(st, nil).Run(ctx, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if summary.FilmsTagged != 1 || summary.Assignments != 2 {
		t.Errorf("summary = %+v", summary)
	}

	tags, err := st.TagsForFilm(ctx, filmID)
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 0 {
		t.Errorf("dry run wrote %d tags", len(tags))
	}
}

func TestTaggerResetDropsStaleAutoTags(t *testing.T) {
	st := seededStore(t)
	ctx := context.Background()

	filmID := addFilm(t, st, "6", "Ramona", 1928, "Indians of North America|Orphans")
	tagger := NewTagger(st, nil)
	if _, err := tagger.Run(ctx, true, false); err != nil {
		t.Fatal(err)
	}

	terms, err := st.ListTerms(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var ruralID int64
	for _, term := range terms {
		if term.Term == "Rural life" {
			ruralID = term.ID
		}
	}
	if ruralID == 0 {
		t.Fatal("Rural life missing from seed terms")
	}
	if err := st.AssignTerm(ctx, filmID, ruralID, 2, "manual"); err != nil {
		t.Fatal(err)
	}

	// The subject that produced Native Americans was removed by hand; a
	// reset pass must shed that assignment while the manual tag survives.
	if err := st.UpdateFilmField(ctx, filmID, "subjects", "Orphans"); err != nil {
		t.Fatal(err)
	}
	if _, err := tagger.Run(ctx, true, true); err != nil {
		t.Fatal(err)
	}

	tags := tagByTerm(t, st, filmID)
	if _, ok := tags["Native Americans"]; ok {
		t.Error("stale automatic tag survived a reset pass")
	}
	if _, ok := tags["Orphans"]; !ok {
		t.Error("current assignment missing after reset")
	}
	if tag, ok := tags["Rural life"]; !ok || tag.AssignmentType != "manual" {
		t.Errorf("manual tag lost in reset, tags = %v", tags)
	}
}

func TestTaggerRerunKeepsStrongestWeight(t *testing.T) {
	st := seededStore(t)
	ctx := context.Background()

	filmID := addFilm(t, st, "5", "The Harvester", 1927, "Murder|Murder")
	tagger := NewTagger(st, nil)
	if _, err := tagger.Run(ctx, true, false); err != nil {
		t.Fatal(err)
	}

	// Subjects were cleaned up between passes; the weaker evidence must not
	// pull the stored weight down.
	if err := st.UpdateFilmField(ctx, filmID, "subjects", "Murder"); err != nil {
		t.Fatal(err)
	}
	if _, err := tagger.Run(ctx, true, false); err != nil {
		t.Fatal(err)
	}

	tags := tagByTerm(t, st, filmID)
	if tag := tags["Murder"]; tag.Weight != 3 {
		t.Errorf("weight dropped to %d on rerun", tag.Weight)
	}
}
