package auditor_test

import (
	"context"
	"path/filepath"
	"testing"

	"docket/internal/auditor"
	"docket/internal/directory"
	"docket/internal/ledger"
	"docket/internal/logging"
	"docket/internal/testsupport"
)

func seed(t *testing.T) (*ledger.Ledger, *directory.Directory, string) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	l := testsupport.MustOpenLedger(t, cfg)
	dir := directory.New([]directory.Entry{
		{Name: "Smith, John", Page: 37},
		{Name: "Aber, Jessica D", Page: 7},
	}, logging.NewNop())
	return l, dir, cfg.Paths.DocumentsRoot
}

func TestAuditCleanTree(t *testing.T) {
	l, dir, root := seed(t)
	ctx := context.Background()

	if err := l.Record(ctx, "Smith, John", "278T"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	testsupport.WriteFile(t, filepath.Join(root, "Page_37", "Smith_John", "John-Smith-2025-278T.pdf"), []byte("x"))
	testsupport.WriteFile(t, filepath.Join(root, "Page_07", "Aber_Jessica_D", "Jessica-D-Aber-2025-278.pdf"), []byte("x"))

	report, err := auditor.Audit(ctx, l, dir, root, logging.NewNop())
	if err != nil {
		t.Fatalf("Audit failed: %v", err)
	}
	if !report.Empty() {
		t.Fatalf("expected clean report, got %+v", report)
	}
}

func TestAuditUnknownName(t *testing.T) {
	l, dir, root := seed(t)
	testsupport.WriteFile(t, filepath.Join(root, "Page_37", "Smith_John", "John-Smith-2025-278T.pdf"), []byte("x"))
	testsupport.WriteFile(t, filepath.Join(root, "Page_12", "Vandergriff_Wilhelmina", "Wilhelmina-Vandergriff-2025-278.pdf"), []byte("x"))

	report, err := auditor.Audit(context.Background(), l, dir, root, logging.NewNop())
	if err != nil {
		t.Fatalf("Audit failed: %v", err)
	}
	if len(report.UnknownNames) != 1 || report.UnknownNames[0] != "Vandergriff_Wilhelmina" {
		t.Fatalf("unexpected unknown names %v", report.UnknownNames)
	}
}

func TestAuditMissingFile(t *testing.T) {
	l, dir, root := seed(t)
	ctx := context.Background()

	if err := l.Record(ctx, "Smith, John", "278T"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := l.Record(ctx, "Smith, John", "278TERM"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	testsupport.WriteFile(t, filepath.Join(root, "Page_37", "Smith_John", "John-Smith-2025-278T.pdf"), []byte("x"))
	testsupport.WriteFile(t, filepath.Join(root, "Page_07", "Aber_Jessica_D", "keep.pdf"), []byte("x"))

	report, err := auditor.Audit(ctx, l, dir, root, logging.NewNop())
	if err != nil {
		t.Fatalf("Audit failed: %v", err)
	}
	if len(report.MissingFiles) != 1 {
		t.Fatalf("unexpected missing files %v", report.MissingFiles)
	}
	missing := report.MissingFiles[0]
	if missing.PersonKey.String() != "john smith" || missing.DocType != "278TERM" {
		t.Fatalf("unexpected missing file %+v", missing)
	}
}

func TestAuditMissingName(t *testing.T) {
	l, dir, root := seed(t)
	ctx := context.Background()

	// Ledger-only person: requested before being dropped from the mapping.
	if err := l.Record(ctx, "Chorle, Erhard R", "278T"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	testsupport.WriteFile(t, filepath.Join(root, "Page_37", "Smith_John", "John-Smith-2025-278T.pdf"), []byte("x"))

	report, err := auditor.Audit(ctx, l, dir, root, logging.NewNop())
	if err != nil {
		t.Fatalf("Audit failed: %v", err)
	}
	want := []string{"erhard r chorle", "jessica d aber"}
	if len(report.MissingNames) != len(want) {
		t.Fatalf("unexpected missing names %v", report.MissingNames)
	}
	for i, name := range want {
		if report.MissingNames[i] != name {
			t.Fatalf("missing names = %v, want %v", report.MissingNames, want)
		}
	}
}

func TestAuditFolderOrderInsensitive(t *testing.T) {
	l, dir, root := seed(t)

	// Placement from a raw "First Last" query produces First_Last folders;
	// both orders must reconcile to the same person.
	testsupport.WriteFile(t, filepath.Join(root, "Page_37", "John_Smith", "John-Smith-2025-278T.pdf"), []byte("x"))
	testsupport.WriteFile(t, filepath.Join(root, "Page_07", "Aber_Jessica_D", "Jessica-D-Aber-2025-278.pdf"), []byte("x"))

	report, err := auditor.Audit(context.Background(), l, dir, root, logging.NewNop())
	if err != nil {
		t.Fatalf("Audit failed: %v", err)
	}
	if len(report.UnknownNames) != 0 || len(report.MissingNames) != 0 {
		t.Fatalf("expected folders to reconcile, got %+v", report)
	}
}

func TestAuditMissingRootIsEmptyTree(t *testing.T) {
	l, dir, root := seed(t)

	report, err := auditor.Audit(context.Background(), l, dir, filepath.Join(root, "does-not-exist"), logging.NewNop())
	if err != nil {
		t.Fatalf("Audit failed: %v", err)
	}
	if len(report.MissingNames) != dir.Len() {
		t.Fatalf("expected every directory person missing, got %v", report.MissingNames)
	}
}

func TestAuditIgnoresUnmatchedBucket(t *testing.T) {
	l, dir, root := seed(t)
	testsupport.WriteFile(t, filepath.Join(root, "Page_37", "Smith_John", "John-Smith-2025-278T.pdf"), []byte("x"))
	testsupport.WriteFile(t, filepath.Join(root, "Page_07", "Aber_Jessica_D", "Jessica-D-Aber-2025-278.pdf"), []byte("x"))
	testsupport.WriteFile(t, filepath.Join(root, "_Unmatched", "Mystery-Person-2025-278.pdf"), []byte("x"))

	report, err := auditor.Audit(context.Background(), l, dir, root, logging.NewNop())
	if err != nil {
		t.Fatalf("Audit failed: %v", err)
	}
	if len(report.UnknownNames) != 0 {
		t.Fatalf("unmatched bucket should not appear as unknown names: %v", report.UnknownNames)
	}
}
