package testsupport

import (
	"testing"

	"docket/internal/config"
	"docket/internal/ledger"
	"docket/internal/logging"
)

// MustOpenLedger opens a ledger for tests and registers cleanup.
func MustOpenLedger(t testing.TB, cfg *config.Config) *ledger.Ledger {
	t.Helper()

	l, err := ledger.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("ledger.Open: %v", err)
	}
	t.Cleanup(func() {
		l.Close()
	})
	return l
}
