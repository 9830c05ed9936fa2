package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docket/internal/logging"
	"docket/internal/services"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "docket.log")
	logger, err := logging.New(logging.Options{Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("hello", logging.String("document", "a.pdf"))

	data := readFile(t, path)
	if !strings.Contains(data, `"msg":"hello"`) {
		t.Fatalf("expected log line in file, got %q", data)
	}
	if !strings.Contains(data, `"document":"a.pdf"`) {
		t.Fatalf("expected document attr in file, got %q", data)
	}
}

func TestWithContextAddsRunFields(t *testing.T) {
	ctx := services.WithRunID(context.Background(), "run-1")
	ctx = services.WithStage(ctx, "intake")
	ctx = services.WithDocument(ctx, "b.pdf")

	fields := logging.ContextFields(ctx)
	if len(fields) != 3 {
		t.Fatalf("expected 3 context fields, got %d", len(fields))
	}

	logger := logging.WithContext(ctx, nil)
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewNopIsSilent(t *testing.T) {
	logger := logging.NewNop()
	logger.Info("should not panic")
	logger.Error("still fine", logging.Error(nil))
}
