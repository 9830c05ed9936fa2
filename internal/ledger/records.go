package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"docket/internal/namekey"
)

// Entry is one person's requested document types, sorted for stable output.
type Entry struct {
	PersonKey namekey.Key
	DocTypes  []string
}

// HasRequested reports whether the (person, docType) pair has already been
// submitted. The person name is canonicalized, so callers may pass raw
// display names or existing keys interchangeably.
func (l *Ledger) HasRequested(ctx context.Context, person, docType string) (bool, error) {
	key := namekey.Normalize(person)
	docType = strings.TrimSpace(docType)
	if key == "" || docType == "" {
		return false, errors.New("person and doc type are required")
	}

	var count int
	err := l.db.QueryRowContext(ensureContext(ctx),
		"SELECT COUNT(1) FROM requests WHERE person_key = ? AND doc_type = ?",
		key.String(), docType,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check requested: %w", err)
	}
	return count > 0, nil
}

// Record marks a (person, docType) pair as requested. Recording an
// already-present pair is a no-op; the write is committed before Record
// returns, so an interrupted run never loses it.
func (l *Ledger) Record(ctx context.Context, person, docType string) error {
	key := namekey.Normalize(person)
	docType = strings.TrimSpace(docType)
	if key == "" || docType == "" {
		return errors.New("person and doc type are required")
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := l.execWithRetry(ctx,
		"INSERT OR IGNORE INTO requests (person_key, doc_type, requested_at) VALUES (?, ?, ?)",
		key.String(), docType, timestamp,
	)
	if err != nil {
		return fmt.Errorf("record request: %w", err)
	}
	return nil
}

// Entries returns every ledger entry grouped by person, keys and document
// types in lexical order.
func (l *Ledger) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := l.db.QueryContext(ensureContext(ctx),
		"SELECT person_key, doc_type FROM requests ORDER BY person_key, doc_type",
	)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var key, docType string
		if err := rows.Scan(&key, &docType); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		if n := len(entries); n > 0 && entries[n-1].PersonKey == namekey.Key(key) {
			entries[n-1].DocTypes = append(entries[n-1].DocTypes, docType)
			continue
		}
		entries = append(entries, Entry{PersonKey: namekey.Key(key), DocTypes: []string{docType}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}
	return entries, nil
}

// Count reports the total number of recorded (person, docType) pairs.
func (l *Ledger) Count(ctx context.Context) (int, error) {
	var count int
	err := l.db.QueryRowContext(ensureContext(ctx), "SELECT COUNT(1) FROM requests").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return count, nil
}
