package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ListEntry is one title/year pair for a research list fixture.
type ListEntry struct {
	Title string
	Year  int
}

// WriteFilmList writes a title,year CSV research list for collector tests.
func WriteFilmList(t testing.TB, path string, entries []ListEntry) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	var b strings.Builder
	b.WriteString("title,year\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s,%d\n", entry.Title, entry.Year)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
