package intake

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"docket/internal/services"
)

// Document is one delivered file awaiting placement. Payload holds the bytes
// for in-memory sources; SourcePath points at a file on disk for
// directory-backed sources. Exactly one is set.
type Document struct {
	FileName   string
	Payload    []byte
	SourcePath string
}

// Source yields a batch of delivered documents. The mailbox transport is an
// external collaborator implementing this interface; DirSource covers local
// drop directories and tests.
type Source interface {
	Documents(ctx context.Context) ([]Document, error)
}

// DirSource reads every regular file in a drop directory, sorted by name so
// repeated runs process in the same order.
type DirSource struct {
	Dir string
}

// Documents lists the drop directory. Hidden files are skipped.
func (s DirSource) Documents(ctx context.Context) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "intake", "read drop directory", "drop directory is not readable", err)
	}

	docs := make([]Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		docs = append(docs, Document{
			FileName:   entry.Name(),
			SourcePath: filepath.Join(s.Dir, entry.Name()),
		})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].FileName < docs[j].FileName })
	return docs, nil
}
