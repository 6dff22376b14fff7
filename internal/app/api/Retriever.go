package api

import (
	"context"

	"uninote-collector/internal/app/model"
)

// FetchRequest describes one video download.
type FetchRequest struct {
	// URL is the source page URL from the batch CSV.
	URL string
	// VideoDir is the directory the video and its sidecars are written to.
	VideoDir string
	// BaseName is the artifact base name, e.g. "007_4da3722c2195"; the
	// retriever appends extensions to it.
	BaseName string
}

// Retriever downloads a single video together with its manual-subtitle and
// info sidecars.
type Retriever interface {
	// Fetch blocks until the download finishes and returns the parsed info
	// sidecar. Info may be nil when the tool produced no sidecar; the
	// caller then falls back to default metadata.
	Fetch(ctx context.Context, req FetchRequest) (*model.VideoInfo, error)

	// Name identifies the underlying retrieval tool for the collection log.
	Name() string
}
