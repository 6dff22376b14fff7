// Package jsonfile persists the collection log as a single JSON document.
// The whole log is held in memory and rewritten on every append, which keeps
// the on-disk file valid after an interrupt at any point between downloads.
package jsonfile

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"uninote-collector/internal/app/model"
	"uninote-collector/internal/app/repository"
	"uninote-collector/internal/app/util/files"
)

var _ repository.CollectionDAO = (*JSONLogDB)(nil)

type JSONLogDB struct {
	path string
	mu   sync.RWMutex
	log  model.CollectionLog
}

// NewJSONLogDB opens the collection log at path, creating a fresh log with
// the current environment strings when none exists yet. A log that exists
// but cannot be parsed is an error; silently starting over would lose the
// duplicate-check history.
func NewJSONLogDB(path, collectorVersion, retrieverName string) (*JSONLogDB, error) {
	db := &JSONLogDB{path: path}

	err := files.ReadJSON(path, &db.log)
	switch {
	case os.IsNotExist(err):
		db.log = model.CollectionLog{
			DownloadDate:     time.Now().Format(time.RFC3339),
			GoVersion:        runtime.Version(),
			CollectorVersion: collectorVersion,
			Retriever:        retrieverName,
			Videos:           []model.VideoRecord{},
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load collection log: %w", err)
	}

	if db.log.Videos == nil {
		db.log.Videos = []model.VideoRecord{}
	}

	return db, nil
}

func (db *JSONLogDB) Close() error {
	return nil
}

func (db *JSONLogDB) IsDownloaded(videoID string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, video := range db.log.Videos {
		if video.VideoID == videoID {
			return true
		}
	}
	return false
}

func (db *JSONLogDB) Append(record model.VideoRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.log.Videos = append(db.log.Videos, record)
	db.log.TotalVideos = len(db.log.Videos)

	if err := files.WriteJSON(db.path, &db.log); err != nil {
		return fmt.Errorf("failed to save collection log: %w", err)
	}
	return nil
}

func (db *JSONLogDB) All() []model.VideoRecord {
	db.mu.RLock()
	defer db.mu.RUnlock()

	videos := make([]model.VideoRecord, len(db.log.Videos))
	copy(videos, db.log.Videos)
	return videos
}

func (db *JSONLogDB) TotalVideos() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.log.TotalVideos
}
