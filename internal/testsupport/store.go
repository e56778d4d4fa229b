package testsupport

import (
	"testing"

	"github.com/nonmodernist/holreg-database/internal/config"
	"github.com/nonmodernist/holreg-database/internal/store"
)

// MustOpenStore opens the research database for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg.Paths.DatabasePath)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}
