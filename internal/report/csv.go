package report

import (
	"encoding/csv"
	"fmt"
	"os"
)

// DefaultCSVPath is where the run report is written and what the email
// attachment is named.
const DefaultCSVPath = "translation_report.csv"

// WriteCSV writes the log as a CSV table with one row per entry across all
// languages, in log iteration order. Any existing file at path is
// overwritten. The header row is written even when the log is empty.
func (l *Log) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Language", "Key", "Original Text", "Translated Text"}); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, lang := range l.languages {
		for _, e := range l.entries[lang] {
			if err := w.Write([]string{lang, e.Key, e.Original, e.Translated}); err != nil {
				return fmt.Errorf("failed to write report row: %w", err)
			}
		}
	}

	w.Flush()
	return w.Error()
}
