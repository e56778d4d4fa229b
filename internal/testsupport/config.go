package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/nonmodernist/holreg-database/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DatabasePath = filepath.Join(base, "research.db")
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.SiteDir = filepath.Join(base, "site")
	cfg.Paths.CSVDir = filepath.Join(base, "csv")
	cfg.Paths.LogDir = ""
	cfg.AFI.RequestDelay = 0

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithAFIBaseURL points the catalog client at a test server.
func WithAFIBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.AFI.BaseURL = url
	}
}

// WithSiteTitle overrides the dataset title on the test config.
func WithSiteTitle(title string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Site.Title = title
	}
}
