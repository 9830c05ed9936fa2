package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir       string
	configPath    string
	documentsRoot string
	mappingPath   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:       base,
		configPath:    filepath.Join(base, "config.toml"),
		documentsRoot: filepath.Join(base, "documents"),
		mappingPath:   filepath.Join(base, "peopleToPage.json"),
	}

	content := fmt.Sprintf(`[paths]
documents_root = %q
mapping_file = %q
data_dir = %q
log_dir = %q
reports_dir = %q

[matching]
threshold = 0.85

[logging]
format = "json"
level = "error"
`,
		env.documentsRoot,
		env.mappingPath,
		filepath.Join(base, "data"),
		filepath.Join(base, "logs"),
		filepath.Join(base, "reports"),
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	mapping := `{"Smith, John": 37, "Aber, Jessica D": 7}`
	if err := os.WriteFile(env.mappingPath, []byte(mapping), 0o644); err != nil {
		t.Fatalf("write mapping file: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = []string{"--config", configPath}
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
