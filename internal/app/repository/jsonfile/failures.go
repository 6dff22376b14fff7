package jsonfile

import (
	"fmt"
	"os"
	"time"

	"uninote-collector/internal/app/repository"
)

var _ repository.FailureSink = (*FailureLog)(nil)

// FailureLog appends failed downloads to a plain text file, one
// timestamp|url|subject|error line per failure.
type FailureLog struct {
	path string
}

func NewFailureLog(path string) *FailureLog {
	return &FailureLog{path: path}
}

func (f *FailureLog) Record(timestamp time.Time, url, subject string, cause error) error {
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open failure log: %w", err)
	}
	defer file.Close()

	line := fmt.Sprintf("%s|%s|%s|%v\n", timestamp.Format(time.RFC3339), url, subject, cause)
	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("failed to append to failure log: %w", err)
	}
	return nil
}
