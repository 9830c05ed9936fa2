package requests

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// RequestLog is the append-only CSV trail of confirmed submissions. The
// header is written once, when the file is first created.
type RequestLog struct {
	file   *os.File
	writer *csv.Writer
}

var requestLogHeader = []string{"submitted_at", "person", "doc_type", "page"}

func openRequestLog(path string) (*RequestLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create request log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open request log: %w", err)
	}

	log := &RequestLog{file: file, writer: csv.NewWriter(file)}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat request log: %w", err)
	}
	if info.Size() == 0 {
		if err := log.write(requestLogHeader); err != nil {
			file.Close()
			return nil, err
		}
	}
	return log, nil
}

// Append records one confirmed submission and flushes it to disk.
func (l *RequestLog) Append(at time.Time, person, docType string, page int) error {
	return l.write([]string{at.Format(time.RFC3339), person, docType, strconv.Itoa(page)})
}

func (l *RequestLog) write(row []string) error {
	if err := l.writer.Write(row); err != nil {
		return fmt.Errorf("write request log row: %w", err)
	}
	l.writer.Flush()
	if err := l.writer.Error(); err != nil {
		return fmt.Errorf("flush request log: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (l *RequestLog) Close() error {
	l.writer.Flush()
	if err := l.writer.Error(); err != nil {
		l.file.Close()
		return err
	}
	return l.file.Close()
}
