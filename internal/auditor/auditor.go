// Package auditor reconciles the request ledger and the person directory
// against the organized document tree on disk.
//
// The audit is read-only. Fulfillment of a submitted request takes days, so
// discrepancies are operator information, not errors: a requested document
// with no file yet is normal shortly after a run, while a person folder
// nobody knows about indicates drift that deserves a look.
package auditor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"docket/internal/directory"
	"docket/internal/docfile"
	"docket/internal/ledger"
	"docket/internal/logging"
	"docket/internal/namekey"
	"docket/internal/placer"
	"docket/internal/services"
)

// MissingFile is a requested (person, docType) pair with no matching file
// under the person's folder yet.
type MissingFile struct {
	PersonKey namekey.Key
	DocType   string
}

// Report holds the three discrepancy sets, each sorted for stable output.
type Report struct {
	// UnknownNames lists person folders on disk that appear in neither the
	// directory nor the ledger.
	UnknownNames []string
	// MissingFiles lists ledger pairs whose document has not arrived.
	MissingFiles []MissingFile
	// MissingNames lists canonical keys from the directory or ledger with no
	// folder on disk at all.
	MissingNames []string
}

// Empty reports whether the audit found no discrepancies.
func (r Report) Empty() bool {
	return len(r.UnknownNames) == 0 && len(r.MissingFiles) == 0 && len(r.MissingNames) == 0
}

type personFolder struct {
	name     string
	docTypes map[string]struct{}
}

// Audit walks the Page_NN tree under root and diffs it against the ledger
// and directory. The tree mutates between runs only through the placer, so
// a missing root simply means nothing has been placed yet.
func Audit(ctx context.Context, l *ledger.Ledger, dir *directory.Directory, root string, logger *slog.Logger) (Report, error) {
	logger = logging.NewComponentLogger(logger, "auditor")

	folders, err := scanTree(root)
	if err != nil {
		return Report{}, services.Wrap(services.ErrTransient, "audit", "scan tree", "failed to read document tree", err)
	}

	entries, err := l.Entries(ctx)
	if err != nil {
		return Report{}, services.Wrap(services.ErrTransient, "audit", "read ledger", "failed to list ledger entries", err)
	}

	known := make(map[string]namekey.Key)
	for _, person := range dir.Entries() {
		known[identity(person.Key.String())] = person.Key
	}
	for _, entry := range entries {
		id := identity(entry.PersonKey.String())
		if _, ok := known[id]; !ok {
			known[id] = entry.PersonKey
		}
	}

	var report Report

	for id, folder := range folders {
		if _, ok := known[id]; !ok {
			report.UnknownNames = append(report.UnknownNames, folder.name)
		}
	}

	for _, entry := range entries {
		folder, onDisk := folders[identity(entry.PersonKey.String())]
		for _, docType := range entry.DocTypes {
			if onDisk && folder.hasDocType(docType) {
				continue
			}
			report.MissingFiles = append(report.MissingFiles, MissingFile{
				PersonKey: entry.PersonKey,
				DocType:   docType,
			})
		}
	}

	for id, key := range known {
		if _, ok := folders[id]; !ok {
			report.MissingNames = append(report.MissingNames, key.String())
		}
	}

	sort.Strings(report.UnknownNames)
	sort.Strings(report.MissingNames)
	sort.Slice(report.MissingFiles, func(i, j int) bool {
		a, b := report.MissingFiles[i], report.MissingFiles[j]
		if a.PersonKey != b.PersonKey {
			return a.PersonKey < b.PersonKey
		}
		return a.DocType < b.DocType
	})

	logger.Info("audit complete",
		logging.Int("unknown_names", len(report.UnknownNames)),
		logging.Int("missing_files", len(report.MissingFiles)),
		logging.Int("missing_names", len(report.MissingNames)),
	)
	return report, nil
}

func (f personFolder) hasDocType(docType string) bool {
	_, ok := f.docTypes[strings.ToLower(strings.TrimSpace(docType))]
	return ok
}

// scanTree maps person identities to the folders holding their documents.
// Document types are recovered from each filename's trailing type token;
// files outside the convention contribute no type and are otherwise ignored.
func scanTree(root string) (map[string]personFolder, error) {
	folders := make(map[string]personFolder)

	pages, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return folders, nil
		}
		return nil, err
	}

	for _, page := range pages {
		if !page.IsDir() || page.Name() == placer.UnmatchedFolder || !strings.HasPrefix(page.Name(), "Page_") {
			continue
		}
		people, err := os.ReadDir(filepath.Join(root, page.Name()))
		if err != nil {
			return nil, err
		}
		for _, person := range people {
			if !person.IsDir() {
				continue
			}
			id := identity(person.Name())
			folder, ok := folders[id]
			if !ok {
				folder = personFolder{name: person.Name(), docTypes: make(map[string]struct{})}
			}
			files, err := os.ReadDir(filepath.Join(root, page.Name(), person.Name()))
			if err != nil {
				return nil, err
			}
			for _, file := range files {
				if file.IsDir() {
					continue
				}
				if att, ok := docfile.Parse(file.Name()); ok {
					folder.docTypes[strings.ToLower(att.DocType)] = struct{}{}
				}
			}
			folders[id] = folder
		}
	}
	return folders, nil
}

// identity canonicalizes a name for comparison regardless of token order,
// since folder names derive from display names in either "Last_First" or
// "First_Last" form.
func identity(raw string) string {
	parts := namekey.Normalize(raw).Parts()
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
