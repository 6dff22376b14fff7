package repository

import (
	"time"

	"uninote-collector/internal/app/model"
)

// CollectionDAO is the persistent collection log: every video collected so
// far, in download order.
type CollectionDAO interface {
	Close() error

	// IsDownloaded reports whether a video id is already logged.
	IsDownloaded(videoID string) bool

	// Append adds a record and persists the log.
	Append(record model.VideoRecord) error

	// All returns the logged records in insertion order.
	All() []model.VideoRecord

	// TotalVideos returns the number of logged records.
	TotalVideos() int
}

// FailureSink records downloads that failed for good, one line per failure.
type FailureSink interface {
	Record(timestamp time.Time, url, subject string, cause error) error
}
