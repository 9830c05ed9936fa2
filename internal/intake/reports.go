package intake

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"docket/internal/placer"
)

// writeReports emits the matched and unmatched CSV files for a run. Report
// files are per run, keyed by run ID, so reruns never clobber earlier output.
func (p *Pipeline) writeReports(summary *Summary) error {
	if err := os.MkdirAll(p.reportsDir, 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	matched := filepath.Join(p.reportsDir, fmt.Sprintf("matched_people-%s.csv", summary.RunID))
	rows := [][]string{{"person", "documents"}}
	for _, person := range summary.MatchedPeople() {
		rows = append(rows, []string{person.PersonKey, strconv.Itoa(person.Documents)})
	}
	if err := writeCSV(matched, rows); err != nil {
		return err
	}
	summary.MatchedReport = matched

	unmatched := filepath.Join(p.reportsDir, fmt.Sprintf("unmatched_documents-%s.csv", summary.RunID))
	rows = [][]string{{"filename", "destination", "best_score"}}
	for _, record := range summary.Records {
		if record.Outcome != placer.OutcomePlacedUnmatched {
			continue
		}
		rows = append(rows, []string{
			record.FileName,
			record.Destination,
			strconv.FormatFloat(record.Score, 'f', 3, 64),
		})
	}
	if err := writeCSV(unmatched, rows); err != nil {
		return err
	}
	summary.UnmatchedReport = unmatched
	return nil
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush report %s: %w", path, err)
	}
	return file.Close()
}
