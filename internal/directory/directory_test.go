package directory_test

import (
	"os"
	"path/filepath"
	"testing"

	"docket/internal/directory"
	"docket/internal/logging"
	"docket/internal/namekey"
)

func TestNewNormalizesKeys(t *testing.T) {
	dir := directory.New([]directory.Entry{
		{Name: "Smith, John", Page: 37},
		{Name: "Aber, Jessica D", Page: 36},
	}, logging.NewNop())

	if dir.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", dir.Len())
	}

	person, ok := dir.Lookup(namekey.Normalize("john smith"))
	if !ok {
		t.Fatal("expected lookup by variant spelling to succeed")
	}
	if person.Page != 37 || person.RawName != "Smith, John" {
		t.Fatalf("unexpected person: %+v", person)
	}
}

func TestCollisionKeepsFirstOccurrence(t *testing.T) {
	dir := directory.New([]directory.Entry{
		{Name: "Smith, John", Page: 37},
		{Name: "John Smith", Page: 99},
	}, logging.NewNop())

	if dir.Len() != 1 {
		t.Fatalf("expected collision to collapse to 1 entry, got %d", dir.Len())
	}
	person, ok := dir.Lookup("john smith")
	if !ok || person.Page != 37 {
		t.Fatalf("expected first occurrence page 37, got %+v ok=%v", person, ok)
	}
}

func TestEntriesPreserveOrder(t *testing.T) {
	dir := directory.New([]directory.Entry{
		{Name: "Zimmer, Carl", Page: 40},
		{Name: "Abbott, James", Page: 36},
		{Name: "Chorle, Erhard R", Page: 38},
	}, logging.NewNop())

	entries := dir.Entries()
	want := []string{"Zimmer, Carl", "Abbott, James", "Chorle, Erhard R"}
	for i, name := range want {
		if entries[i].RawName != name {
			t.Fatalf("entry %d = %q, want %q", i, entries[i].RawName, name)
		}
	}
}

func TestLoadReadsJSONInFileOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peopleToPage.json")
	content := `{
  "Smith, John": 37,
  "john smith": 99,
  "Abbott, James": 36
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write mapping: %v", err)
	}

	dir, err := directory.Load(path, logging.NewNop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if dir.Len() != 2 {
		t.Fatalf("expected 2 entries after collision, got %d", dir.Len())
	}
	person, _ := dir.Lookup("john smith")
	if person.Page != 37 {
		t.Fatalf("expected file-order first occurrence to win, got page %d", person.Page)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := directory.Load(filepath.Join(t.TempDir(), "absent.json"), logging.NewNop()); err == nil {
		t.Fatal("expected error for missing mapping file")
	}
}

func TestLoadRejectsNonObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`[1,2,3]`), 0o644); err != nil {
		t.Fatalf("write mapping: %v", err)
	}
	if _, err := directory.Load(path, logging.NewNop()); err == nil {
		t.Fatal("expected error for non-object mapping")
	}
}
