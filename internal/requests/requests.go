// Package requests runs the document-request workflow: walk the website's
// person rows, skip every (person, document type) pair already in the ledger,
// submit the rest, and record each confirmed submission before moving on.
//
// The browser automation that fills the web form is an external collaborator
// behind the Submitter interface; likewise RowSource hides how table rows are
// obtained. Runner.Run is the library entry point for that driver to call —
// the CLI only surfaces the read-only planning side (Outstanding) because it
// has no Submitter of its own. The ledger write happens immediately after
// each confirmed submit, so an interrupted run resumes without duplicate
// submissions.
package requests

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"docket/internal/config"
	"docket/internal/ledger"
	"docket/internal/logging"
	"docket/internal/services"
)

// Row is one person row from the website listing: the display name, the page
// it appears on, and the document types available to request.
type Row struct {
	Name     string
	Page     int
	DocTypes []string
}

// RowSource yields the rows to work through, in listing order.
type RowSource interface {
	Rows(ctx context.Context) ([]Row, error)
}

// Submitter performs one request submission. An error return means the
// submission was NOT confirmed and must not be recorded.
type Submitter interface {
	Submit(ctx context.Context, row Row, docType string) error
}

// Summary tallies one submission run.
type Summary struct {
	RunID            string
	Considered       int
	Submitted        int
	AlreadyRequested int
	Failed           int
	// LimitReached is set when max_per_run stopped the run early.
	LimitReached bool
}

// Runner coordinates row iteration, ledger checks, and submission.
type Runner struct {
	ledger    *ledger.Ledger
	logPath   string
	maxPerRun int
	logger    *slog.Logger
}

// NewRunner builds a runner over the configured request log and limits.
func NewRunner(cfg *config.Config, l *ledger.Ledger, logger *slog.Logger) *Runner {
	return &Runner{
		ledger:    l,
		logPath:   cfg.Requests.LogFile,
		maxPerRun: cfg.Requests.MaxPerRun,
		logger:    logging.NewComponentLogger(logger, "requests"),
	}
}

// Run works through every (row, docType) pair the source yields. Pairs
// already in the ledger are skipped. Submission failures are logged and the
// run continues; only configuration-class errors or a ledger write failure
// abort, the latter because continuing without the record would allow a
// duplicate submission on resume.
func (r *Runner) Run(ctx context.Context, src RowSource, submitter Submitter) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}
	ctx = services.WithRunID(ctx, summary.RunID)
	logger := logging.WithContext(ctx, r.logger)

	rows, err := src.Rows(ctx)
	if err != nil {
		return summary, err
	}
	logger.Info("starting request run", logging.Int("rows", len(rows)))

	requestLog, err := openRequestLog(r.logPath)
	if err != nil {
		return summary, services.Wrap(services.ErrConfiguration, "requests", "open request log", "request log is not writable", err)
	}
	defer requestLog.Close()

	for _, row := range rows {
		for _, docType := range row.DocTypes {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			if r.maxPerRun > 0 && summary.Submitted >= r.maxPerRun {
				summary.LimitReached = true
				logger.Info("submission limit reached, stopping run",
					logging.Int("max_per_run", r.maxPerRun),
				)
				return summary, nil
			}

			summary.Considered++
			requested, err := r.ledger.HasRequested(ctx, row.Name, docType)
			if err != nil {
				return summary, services.Wrap(services.ErrTransient, "requests", "check ledger", "ledger lookup failed", err)
			}
			if requested {
				summary.AlreadyRequested++
				logger.Debug("already requested, skipping",
					logging.String(logging.FieldPerson, row.Name),
					logging.String("doc_type", docType),
				)
				continue
			}

			if err := submitter.Submit(ctx, row, docType); err != nil {
				if services.Classify(err) == services.OutcomeFatal {
					return summary, err
				}
				summary.Failed++
				logger.Error("submission failed, continuing",
					logging.String(logging.FieldPerson, row.Name),
					logging.String("doc_type", docType),
					logging.Error(err),
				)
				continue
			}

			if err := r.ledger.Record(ctx, row.Name, docType); err != nil {
				return summary, services.Wrap(services.ErrTransient, "requests", "record submission", "ledger write failed after confirmed submit", err)
			}
			summary.Submitted++
			if err := requestLog.Append(time.Now().UTC(), row.Name, docType, row.Page); err != nil {
				logger.Error("failed to append request log", logging.Error(err))
			}
			logger.Info("submitted request",
				logging.String(logging.FieldPerson, row.Name),
				logging.String("doc_type", docType),
				logging.Int(logging.FieldPage, row.Page),
			)
		}
	}
	logger.Info("request run complete",
		logging.Int("considered", summary.Considered),
		logging.Int("submitted", summary.Submitted),
		logging.Int("already_requested", summary.AlreadyRequested),
		logging.Int("failed", summary.Failed),
	)
	return summary, nil
}
