package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/nonmodernist/holreg-database/internal/config"
	"github.com/nonmodernist/holreg-database/internal/store"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DatabasePath = filepath.Join(base, "research.db")
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.SiteDir = filepath.Join(base, "site")
	cfg.Paths.CSVDir = filepath.Join(base, "csv")
	cfg.AFI.RequestDelay = 0

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, &cfg)

	return &cliTestEnv{
		cfg:        &cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// seedStore opens the test database directly so fixtures can be inserted
// before the command under test runs. The handle is closed immediately;
// the database lock must be free when the command opens its own.
func seedStore(t *testing.T, env *cliTestEnv, seed func(*store.Store)) {
	t.Helper()
	st, err := store.Open(env.cfg.Paths.DatabasePath)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	seed(st)
	if err := st.Close(); err != nil {
		t.Fatalf("store.Close: %v", err)
	}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
