package placer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"docket/internal/config"
	"docket/internal/directory"
	"docket/internal/fileutil"
	"docket/internal/logging"
	"docket/internal/match"
	"docket/internal/namekey"
	"docket/internal/services"
)

// Outcome classifies what happened to a placed document.
type Outcome string

const (
	OutcomePlaced           Outcome = "placed"
	OutcomeSkippedDuplicate Outcome = "skipped-duplicate"
	OutcomePlacedUnmatched  Outcome = "placed-unmatched"
)

// Request describes one document to place. Exactly one of SourcePath or
// Payload supplies the content. PageHint short-circuits matching when the
// page is already known from context (e.g. the table row being processed).
type Request struct {
	RawName    string
	FileName   string
	SourcePath string
	Payload    []byte
	PageHint   int
}

// Record is the terminal outcome for one placed document.
type Record struct {
	FileName    string
	Person      directory.Person
	Matched     bool
	Score       float64
	Destination string
	Outcome     Outcome
}

// Placer writes documents into the organized tree.
type Placer struct {
	root      string
	dir       *directory.Directory
	threshold float64
	logger    *slog.Logger
}

// New constructs a placer rooted at the configured documents directory.
func New(cfg *config.Config, dir *directory.Directory, logger *slog.Logger) *Placer {
	return &Placer{
		root:      cfg.Paths.DocumentsRoot,
		dir:       dir,
		threshold: cfg.Matching.Threshold,
		logger:    logging.NewComponentLogger(logger, "placer"),
	}
}

// Place resolves the destination for a document and writes it there unless a
// file with the same name already exists. Duplicate delivery is expected
// (retried email processing) and must never clobber or duplicate content.
func (p *Placer) Place(ctx context.Context, req Request) (Record, error) {
	logger := logging.WithContext(ctx, p.logger)
	filename := namekey.SanitizeFileName(req.FileName)
	if filename == "" {
		return Record{}, services.Wrap(services.ErrValidation, "placement", "resolve destination", "document has no filename", nil)
	}

	record := Record{FileName: req.FileName}
	switch {
	case req.PageHint > 0 && req.RawName != "":
		// The hinted page comes from the context being processed (the table
		// row itself) and always wins; the directory only supplies the
		// curated display name and key when it knows the person.
		key := namekey.Normalize(req.RawName)
		record.Matched = true
		record.Person = directory.Person{RawName: req.RawName, Key: key, Page: req.PageHint}
		if known, ok := p.dir.Lookup(key); ok {
			record.Person.RawName = known.RawName
			record.Person.Key = known.Key
		}
		record.Score = 1
		record.Destination = filepath.Join(PersonPath(p.root, record.Person), filename)
	case req.RawName != "":
		result := match.Match(req.RawName, p.dir, p.threshold)
		record.Score = result.BestScore
		if result.Matched {
			record.Matched = true
			record.Person = result.Person
			record.Destination = filepath.Join(PersonPath(p.root, result.Person), filename)
		}
	}

	if !record.Matched {
		record.Destination = UnmatchedPath(p.root, req.FileName)
	}

	if _, err := os.Stat(record.Destination); err == nil {
		record.Outcome = OutcomeSkippedDuplicate
		logger.Info("skipping duplicate document",
			logging.String(logging.FieldDocument, req.FileName),
			logging.String("destination", record.Destination),
		)
		return record, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return record, services.Wrap(services.ErrTransient, "placement", "check destination", "stat destination failed", err)
	}

	if err := p.write(req, record.Destination); err != nil {
		return record, services.Wrap(services.ErrTransient, "placement", "write document", "failed to write destination", err)
	}

	if record.Matched {
		record.Outcome = OutcomePlaced
		logger.Info("placed document",
			logging.String(logging.FieldDocument, req.FileName),
			logging.String(logging.FieldPerson, record.Person.Key.String()),
			logging.Int(logging.FieldPage, record.Person.Page),
		)
	} else {
		record.Outcome = OutcomePlacedUnmatched
		logger.Warn("placed document in unmatched bucket",
			logging.String(logging.FieldDocument, req.FileName),
			logging.Float64("best_score", record.Score),
		)
	}
	return record, nil
}

func (p *Placer) write(req Request, destination string) error {
	if err := fileutil.EnsureParentDir(destination); err != nil {
		return err
	}
	if req.SourcePath != "" {
		return fileutil.CopyFileVerified(req.SourcePath, destination)
	}
	return os.WriteFile(destination, req.Payload, 0o644)
}
