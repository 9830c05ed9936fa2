// Package intake drives batch placement of delivered documents: parse the
// filename, resolve the person, place the file, tally the outcome. One bad
// document never aborts a batch; failures are classified and the batch
// continues.
package intake

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"docket/internal/config"
	"docket/internal/directory"
	"docket/internal/docfile"
	"docket/internal/logging"
	"docket/internal/placer"
	"docket/internal/services"
)

// Summary tallies one intake run.
type Summary struct {
	RunID     string
	Processed int
	// MatchedByPerson counts placed documents per canonical person key.
	MatchedByPerson map[string]int
	// Unmatched lists original filenames routed to the unmatched bucket.
	Unmatched []string
	Skipped   int
	Failed    int
	// Records preserves the per-document outcomes in processing order.
	Records []placer.Record
	// MatchedReport and UnmatchedReport are the CSV files written for this
	// run, empty when report writing is disabled.
	MatchedReport   string
	UnmatchedReport string
}

// Pipeline wires the parser, matcher, and placer into a batch processor.
type Pipeline struct {
	placer     *placer.Placer
	reportsDir string
	logger     *slog.Logger
}

// New builds a pipeline over the configured documents root. Pass an empty
// reports directory to skip CSV report writing.
func New(cfg *config.Config, dir *directory.Directory, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		placer:     placer.New(cfg, dir, logger),
		reportsDir: cfg.Paths.ReportsDir,
		logger:     logging.NewComponentLogger(logger, "intake"),
	}
}

// Run processes every document the source yields. Only configuration-class
// failures abort the run; anything else is logged, counted, and skipped.
func (p *Pipeline) Run(ctx context.Context, src Source) (Summary, error) {
	summary := Summary{
		RunID:           uuid.NewString(),
		MatchedByPerson: make(map[string]int),
	}
	ctx = services.WithRunID(ctx, summary.RunID)
	logger := logging.WithContext(ctx, p.logger)

	docs, err := src.Documents(ctx)
	if err != nil {
		return summary, err
	}
	logger.Info("starting intake run", logging.Int("documents", len(docs)))

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		record, err := p.process(ctx, doc)
		summary.Processed++
		if err != nil {
			if services.Classify(err) == services.OutcomeFatal {
				return summary, err
			}
			summary.Failed++
			logger.Error("document failed, continuing batch",
				logging.String(logging.FieldDocument, doc.FileName),
				logging.Error(err),
			)
			continue
		}
		summary.Records = append(summary.Records, record)
		switch record.Outcome {
		case placer.OutcomeSkippedDuplicate:
			summary.Skipped++
		case placer.OutcomePlacedUnmatched:
			summary.Unmatched = append(summary.Unmatched, doc.FileName)
		default:
			summary.MatchedByPerson[record.Person.Key.String()]++
		}
	}

	if p.reportsDir != "" {
		if err := p.writeReports(&summary); err != nil {
			logger.Error("failed to write intake reports", logging.Error(err))
		}
	}

	logger.Info("intake run complete",
		logging.Int("processed", summary.Processed),
		logging.Int("matched", len(summary.Records)-len(summary.Unmatched)-summary.Skipped),
		logging.Int("unmatched", len(summary.Unmatched)),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (p *Pipeline) process(ctx context.Context, doc Document) (placer.Record, error) {
	req := placer.Request{
		FileName:   doc.FileName,
		SourcePath: doc.SourcePath,
		Payload:    doc.Payload,
	}
	if att, ok := docfile.Parse(doc.FileName); ok {
		req.RawName = att.DisplayName()
	}
	return p.placer.Place(ctx, req)
}

// MatchedPeople returns the matched tally sorted by person key.
func (s Summary) MatchedPeople() []MatchedPerson {
	people := make([]MatchedPerson, 0, len(s.MatchedByPerson))
	for key, count := range s.MatchedByPerson {
		people = append(people, MatchedPerson{PersonKey: key, Documents: count})
	}
	sort.Slice(people, func(i, j int) bool { return people[i].PersonKey < people[j].PersonKey })
	return people
}

// MatchedPerson is one row of the matched tally.
type MatchedPerson struct {
	PersonKey string
	Documents int
}
