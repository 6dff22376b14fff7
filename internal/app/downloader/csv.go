package downloader

import (
	"encoding/csv"
	"fmt"
	"os"

	"uninote-collector/internal/app/model"
)

var batchHeader = [...]string{"url", "subject", "difficulty", "source"}

// LoadBatchFile reads the CSV listing the videos to collect. The header line
// must be exactly url,subject,difficulty,source; extra or reordered columns
// are rejected so a malformed list fails before any download starts.
func LoadBatchFile(path string) ([]model.BatchRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video list %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read video list header: %w", err)
	}
	if !headerMatches(header) {
		return nil, fmt.Errorf("unexpected video list header %v, want url,subject,difficulty,source", header)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read video list rows: %w", err)
	}

	rows := make([]model.BatchRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, model.BatchRow{
			URL:        record[0],
			Subject:    record[1],
			Difficulty: record[2],
			Source:     record[3],
		})
	}
	return rows, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(batchHeader) {
		return false
	}
	for i, col := range header {
		if col != batchHeader[i] {
			return false
		}
	}
	return true
}
