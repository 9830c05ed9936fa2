package requests_test

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"testing"

	"docket/internal/config"
	"docket/internal/ledger"
	"docket/internal/logging"
	"docket/internal/requests"
	"docket/internal/services"
	"docket/internal/testsupport"
)

type staticRows []requests.Row

func (s staticRows) Rows(ctx context.Context) ([]requests.Row, error) {
	return s, nil
}

type fakeSubmitter struct {
	submitted []string
	failOn    map[string]error
}

func (f *fakeSubmitter) Submit(ctx context.Context, row requests.Row, docType string) error {
	key := row.Name + "/" + docType
	if err, ok := f.failOn[key]; ok {
		return err
	}
	f.submitted = append(f.submitted, key)
	return nil
}

func newRunner(t *testing.T) (*requests.Runner, *ledger.Ledger, *config.Config) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	l := testsupport.MustOpenLedger(t, cfg)
	return requests.NewRunner(cfg, l, logging.NewNop()), l, cfg
}

func TestRunSubmitsAndRecords(t *testing.T) {
	runner, l, _ := newRunner(t)
	ctx := context.Background()
	submitter := &fakeSubmitter{}

	summary, err := runner.Run(ctx, staticRows{
		{Name: "Smith, John", Page: 37, DocTypes: []string{"278T", "278TERM"}},
	}, submitter)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Submitted != 2 || summary.Considered != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	requested, err := l.HasRequested(ctx, "john smith", "278T")
	if err != nil {
		t.Fatalf("HasRequested: %v", err)
	}
	if !requested {
		t.Fatal("expected ledger record for submitted pair")
	}
}

func TestRunSkipsAlreadyRequested(t *testing.T) {
	runner, l, _ := newRunner(t)
	ctx := context.Background()
	if err := l.Record(ctx, "Smith, John", "278T"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	submitter := &fakeSubmitter{}
	summary, err := runner.Run(ctx, staticRows{
		{Name: "john smith", Page: 37, DocTypes: []string{"278T"}},
	}, submitter)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.AlreadyRequested != 1 || summary.Submitted != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if len(submitter.submitted) != 0 {
		t.Fatalf("submitter must not be called: %v", submitter.submitted)
	}
}

func TestRunIsIdempotentAcrossRuns(t *testing.T) {
	runner, _, _ := newRunner(t)
	ctx := context.Background()
	rows := staticRows{{Name: "Smith, John", Page: 37, DocTypes: []string{"278T"}}}

	submitter := &fakeSubmitter{}
	if _, err := runner.Run(ctx, rows, submitter); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	summary, err := runner.Run(ctx, rows, submitter)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if summary.Submitted != 0 || summary.AlreadyRequested != 1 {
		t.Fatalf("unexpected resume summary %+v", summary)
	}
	if len(submitter.submitted) != 1 {
		t.Fatalf("expected exactly one submission, got %v", submitter.submitted)
	}
}

func TestRunContinuesPastFailures(t *testing.T) {
	runner, l, _ := newRunner(t)
	ctx := context.Background()

	submitter := &fakeSubmitter{failOn: map[string]error{
		"Smith, John/278T": errors.New("form timeout"),
	}}
	summary, err := runner.Run(ctx, staticRows{
		{Name: "Smith, John", Page: 37, DocTypes: []string{"278T"}},
		{Name: "Aber, Jessica D", Page: 7, DocTypes: []string{"278"}},
	}, submitter)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Failed != 1 || summary.Submitted != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	requested, err := l.HasRequested(ctx, "Smith, John", "278T")
	if err != nil {
		t.Fatalf("HasRequested: %v", err)
	}
	if requested {
		t.Fatal("failed submission must not be recorded")
	}
}

func TestRunFatalErrorAborts(t *testing.T) {
	runner, _, _ := newRunner(t)

	submitter := &fakeSubmitter{failOn: map[string]error{
		"Smith, John/278T": services.Wrap(services.ErrConfiguration, "submit", "login", "credentials rejected", nil),
	}}
	_, err := runner.Run(context.Background(), staticRows{
		{Name: "Smith, John", Page: 37, DocTypes: []string{"278T"}},
		{Name: "Aber, Jessica D", Page: 7, DocTypes: []string{"278"}},
	}, submitter)
	if err == nil {
		t.Fatal("expected fatal error to abort the run")
	}
	if len(submitter.submitted) != 0 {
		t.Fatalf("no further submissions expected after fatal error: %v", submitter.submitted)
	}
}

func TestRunHonorsMaxPerRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Requests.MaxPerRun = 1
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	l := testsupport.MustOpenLedger(t, cfg)
	runner := requests.NewRunner(cfg, l, logging.NewNop())

	submitter := &fakeSubmitter{}
	summary, err := runner.Run(context.Background(), staticRows{
		{Name: "Smith, John", Page: 37, DocTypes: []string{"278T", "278TERM"}},
	}, submitter)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Submitted != 1 || !summary.LimitReached {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestOutstandingSkipsRequestedPairs(t *testing.T) {
	_, l, _ := newRunner(t)
	ctx := context.Background()
	if err := l.Record(ctx, "Smith, John", "278T"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	pairs, err := requests.Outstanding(ctx, l, []requests.Row{
		{Name: "Smith, John", Page: 37, DocTypes: []string{"278T", "278TERM"}},
		{Name: "Aber, Jessica D", Page: 7, DocTypes: []string{"278"}},
	})
	if err != nil {
		t.Fatalf("Outstanding failed: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("unexpected pairs %v", pairs)
	}
	if pairs[0].Row.Name != "Smith, John" || pairs[0].DocType != "278TERM" {
		t.Fatalf("unexpected first pair %+v", pairs[0])
	}
	if pairs[1].Row.Name != "Aber, Jessica D" || pairs[1].DocType != "278" {
		t.Fatalf("unexpected second pair %+v", pairs[1])
	}
}

func TestRunAppendsRequestLog(t *testing.T) {
	runner, _, cfg := newRunner(t)
	rows := staticRows{{Name: "Smith, John", Page: 37, DocTypes: []string{"278T"}}}

	if _, err := runner.Run(context.Background(), rows, &fakeSubmitter{}); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	if _, err := runner.Run(context.Background(), staticRows{
		{Name: "Aber, Jessica D", Page: 7, DocTypes: []string{"278"}},
	}, &fakeSubmitter{}); err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	file, err := os.Open(cfg.Requests.LogFile)
	if err != nil {
		t.Fatalf("open request log: %v", err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read request log: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus two rows, got %v", records)
	}
	if records[0][0] != "submitted_at" {
		t.Fatalf("missing header: %v", records[0])
	}
	if records[1][1] != "Smith, John" || records[1][2] != "278T" || records[1][3] != "37" {
		t.Fatalf("unexpected first row %v", records[1])
	}
	if records[2][1] != "Aber, Jessica D" {
		t.Fatalf("unexpected second row %v", records[2])
	}
}
