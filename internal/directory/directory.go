package directory

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"docket/internal/logging"
	"docket/internal/namekey"
)

// Person is one directory entry: the curated display name, its canonical key,
// and the website page the person appears on.
type Person struct {
	RawName string
	Key     namekey.Key
	Page    int
}

// Entry is a raw (display name, page) pair prior to normalization.
type Entry struct {
	Name string
	Page int
}

// Directory maps canonical person keys to pages. Entries preserve first-seen
// order so tie-breaking and collision handling stay deterministic.
type Directory struct {
	ordered []Person
	index   map[namekey.Key]int
}

// New builds a directory from ordered entries. When two entries normalize to
// the same key the first wins and the collision is logged as a warning;
// the source data is externally curated and imperfect, so collisions are not
// fatal.
func New(entries []Entry, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = logging.NewNop()
	}
	dir := &Directory{index: make(map[namekey.Key]int, len(entries))}
	for _, entry := range entries {
		key := namekey.Normalize(entry.Name)
		if existing, ok := dir.index[key]; ok {
			logger.Warn("mapping key collision, keeping first occurrence",
				logging.String("key", key.String()),
				logging.String("kept", dir.ordered[existing].RawName),
				logging.String("dropped", entry.Name),
			)
			continue
		}
		dir.index[key] = len(dir.ordered)
		dir.ordered = append(dir.ordered, Person{RawName: entry.Name, Key: key, Page: entry.Page})
	}
	return dir
}

// Load reads a JSON mapping file of display names to page numbers. Object
// keys are consumed in file order so collision handling matches New.
func Load(path string, logger *slog.Logger) (*Directory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mapping file: %w", err)
	}
	defer file.Close()

	entries, err := decodeOrdered(file)
	if err != nil {
		return nil, fmt.Errorf("parse mapping file %s: %w", path, err)
	}
	return New(entries, logger), nil
}

// Lookup returns the person for an already-normalized key.
func (d *Directory) Lookup(key namekey.Key) (Person, bool) {
	idx, ok := d.index[key]
	if !ok {
		return Person{}, false
	}
	return d.ordered[idx], true
}

// Entries returns every person in first-seen order. The returned slice is a
// copy; the directory itself never changes after load.
func (d *Directory) Entries() []Person {
	out := make([]Person, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// Len reports the number of distinct canonical keys.
func (d *Directory) Len() int {
	return len(d.ordered)
}

// decodeOrdered walks the JSON token stream so entries keep file order;
// decoding into a map would shuffle keys and make collision handling
// nondeterministic.
func decodeOrdered(file *os.File) ([]Entry, error) {
	dec := json.NewDecoder(file)
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var entries []Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", keyTok)
		}
		var page int
		if err := dec.Decode(&page); err != nil {
			return nil, fmt.Errorf("page for %q: %w", name, err)
		}
		entries = append(entries, Entry{Name: name, Page: page})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}
