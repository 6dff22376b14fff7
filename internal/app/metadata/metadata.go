// Package metadata maps the retriever's info sidecar and the batch CSV
// annotations onto the collection's video record.
package metadata

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"

	"uninote-collector/internal/app/model"
)

const (
	// Descriptions are capped so the collection log stays reviewable.
	maxDescriptionChars = 500
	maxTags             = 10

	unknown = "Unknown"
)

// BuildRecord assembles the VideoRecord for one download. The videoID is the
// one derived from the CSV row URL, which keeps the record's id identical to
// the one the duplicate check uses even when the retriever reports a
// different canonical URL. A nil info (no sidecar written) yields a record
// with default values. NeedsWhisperTranscription is left false here; the
// caller sets it once transcript extraction has run.
func BuildRecord(info *model.VideoInfo, row model.BatchRow, videoID string, index int, subtitleLang string, now time.Time) model.VideoRecord {
	if info == nil {
		info = &model.VideoInfo{}
	}

	record := model.VideoRecord{
		VideoIndex:  index,
		VideoID:     videoID,
		URL:         orDefault(info.WebpageURL, row.URL),
		Title:       orDefault(info.Title, unknown),
		Duration:    int(math.Round(info.Duration)),
		UploadDate:  info.UploadDate,
		Uploader:    orDefault(info.Uploader, unknown),
		UploaderID:  info.UploaderID,
		Channel:     orDefault(info.Channel, unknown),
		ViewCount:   info.ViewCount,
		LikeCount:   info.LikeCount,
		Description: lo.Substring(info.Description, 0, maxDescriptionChars),
		Tags:        lo.Slice(info.Tags, 0, maxTags),
		Categories:  info.Categories,
		Resolution:  fmt.Sprintf("%dx%d", info.Width, info.Height),
		FPS:         info.FPS,
		VCodec:      info.VCodec,
		ACodec:      info.ACodec,
		Filesize:    info.Filesize,

		Filename: fmt.Sprintf("%03d_%s.mp4", index, videoID),

		Subject:    row.Subject,
		Difficulty: row.Difficulty,
		Source:     row.Source,

		DownloadDate: now.Format(time.RFC3339),
	}

	_, record.HasManualSubtitles = info.Subtitles[subtitleLang]

	// The JSON artifacts always carry arrays, never null.
	if record.Tags == nil {
		record.Tags = []string{}
	}
	if record.Categories == nil {
		record.Categories = []string{}
	}

	return record
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
