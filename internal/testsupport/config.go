package testsupport

import (
	"path/filepath"
	"testing"

	"docket/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DocumentsRoot = filepath.Join(base, "documents")
	cfg.Paths.MappingFile = filepath.Join(base, "peopleToPage.json")
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ReportsDir = filepath.Join(base, "reports")
	cfg.Requests.LogFile = filepath.Join(base, "reports", "request_log.csv")
	return &cfg
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
