package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTransient     = errors.New("transient failure")
	ErrDataQuality   = errors.New("data quality error")
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
)

// Outcome classifies how the workflow should react to a failed item.
type Outcome string

const (
	// OutcomeSkip logs the item and moves on; the item can be retried on a
	// later run.
	OutcomeSkip Outcome = "skip"
	// OutcomeUnmatched routes the item to the unmatched bucket for manual
	// review, preserving the original input.
	OutcomeUnmatched Outcome = "unmatched"
	// OutcomeFatal aborts the run; only setup-phase problems qualify.
	OutcomeFatal Outcome = "fatal"
)

// Wrap builds an error message that includes workflow context while tagging it
// with the provided marker for later outcome classification. The marker should
// be one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Classify maps an item error to the outcome the workflow applies at the item
// boundary. Configuration problems are the only fatal class; everything else
// is contained to the item.
func Classify(err error) Outcome {
	switch {
	case errors.Is(err, ErrConfiguration):
		return OutcomeFatal
	case errors.Is(err, ErrDataQuality), errors.Is(err, ErrValidation):
		return OutcomeUnmatched
	default:
		return OutcomeSkip
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
