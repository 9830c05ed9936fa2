package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// ImportJSON loads a legacy tracker file, a JSON object of lowercased person
// names to lists of requested document names, and records every pair.
// Existing entries are left untouched; the return value counts pairs seen in
// the file, not rows inserted.
func (l *Ledger) ImportJSON(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read tracker file: %w", err)
	}

	var tracker map[string][]string
	if err := json.Unmarshal(data, &tracker); err != nil {
		return 0, fmt.Errorf("parse tracker file %s: %w", path, err)
	}

	imported := 0
	for person, docs := range tracker {
		for _, doc := range docs {
			if err := l.Record(ctx, person, doc); err != nil {
				return imported, fmt.Errorf("import %q: %w", person, err)
			}
			imported++
		}
	}
	return imported, nil
}
