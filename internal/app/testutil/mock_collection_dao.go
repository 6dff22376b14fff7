package testutil

import (
	"time"

	"uninote-collector/internal/app/model"
	"uninote-collector/internal/app/repository"
)

// MockCollectionDAO is an in-memory mock of the repository.CollectionDAO
// interface.
type MockCollectionDAO struct {
	records     []model.VideoRecord
	appendError error
	closeError  error
	closeCalled bool
	appended    []model.VideoRecord
}

// NewMockCollectionDAO creates an empty MockCollectionDAO.
func NewMockCollectionDAO() *MockCollectionDAO {
	return &MockCollectionDAO{
		records: make([]model.VideoRecord, 0),
	}
}

// WithRecords preloads the log, as if earlier runs had downloaded them.
func (m *MockCollectionDAO) WithRecords(records ...model.VideoRecord) *MockCollectionDAO {
	m.records = append(m.records, records...)
	return m
}

// WithDownloadedID preloads a minimal record for the given video id.
func (m *MockCollectionDAO) WithDownloadedID(videoID string) *MockCollectionDAO {
	m.records = append(m.records, model.VideoRecord{VideoID: videoID})
	return m
}

// WithAppendError makes Append fail.
func (m *MockCollectionDAO) WithAppendError(err error) *MockCollectionDAO {
	m.appendError = err
	return m
}

// WithCloseError makes Close fail.
func (m *MockCollectionDAO) WithCloseError(err error) *MockCollectionDAO {
	m.closeError = err
	return m
}

// Close implements the repository.CollectionDAO interface.
func (m *MockCollectionDAO) Close() error {
	m.closeCalled = true
	return m.closeError
}

// IsDownloaded implements the repository.CollectionDAO interface.
func (m *MockCollectionDAO) IsDownloaded(videoID string) bool {
	for _, record := range m.records {
		if record.VideoID == videoID {
			return true
		}
	}
	return false
}

// Append implements the repository.CollectionDAO interface.
func (m *MockCollectionDAO) Append(record model.VideoRecord) error {
	if m.appendError != nil {
		return m.appendError
	}
	m.records = append(m.records, record)
	m.appended = append(m.appended, record)
	return nil
}

// All implements the repository.CollectionDAO interface.
func (m *MockCollectionDAO) All() []model.VideoRecord {
	records := make([]model.VideoRecord, len(m.records))
	copy(records, m.records)
	return records
}

// TotalVideos implements the repository.CollectionDAO interface.
func (m *MockCollectionDAO) TotalVideos() int {
	return len(m.records)
}

// AppendedRecords returns only the records added through Append.
func (m *MockCollectionDAO) AppendedRecords() []model.VideoRecord {
	return m.appended
}

// WasCloseCalled returns true if Close was called.
func (m *MockCollectionDAO) WasCloseCalled() bool {
	return m.closeCalled
}

// FailureEntry is one recorded failure.
type FailureEntry struct {
	Timestamp time.Time
	URL       string
	Subject   string
	Cause     error
}

// MockFailureSink is an in-memory mock of the repository.FailureSink
// interface.
type MockFailureSink struct {
	entries     []FailureEntry
	recordError error
}

// NewMockFailureSink creates an empty MockFailureSink.
func NewMockFailureSink() *MockFailureSink {
	return &MockFailureSink{entries: make([]FailureEntry, 0)}
}

// WithRecordError makes Record fail.
func (m *MockFailureSink) WithRecordError(err error) *MockFailureSink {
	m.recordError = err
	return m
}

// Record implements the repository.FailureSink interface.
func (m *MockFailureSink) Record(timestamp time.Time, url, subject string, cause error) error {
	if m.recordError != nil {
		return m.recordError
	}
	m.entries = append(m.entries, FailureEntry{
		Timestamp: timestamp,
		URL:       url,
		Subject:   subject,
		Cause:     cause,
	})
	return nil
}

// Entries returns the recorded failures in order.
func (m *MockFailureSink) Entries() []FailureEntry {
	return m.entries
}

var _ repository.CollectionDAO = (*MockCollectionDAO)(nil)
var _ repository.FailureSink = (*MockFailureSink)(nil)
