// Package downloader drives the batch collection loop: dedup against the
// collection log, fetch through the retriever, build metadata, extract
// transcripts and record every outcome.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uninote-collector/internal/app/api"
	"uninote-collector/internal/app/metadata"
	"uninote-collector/internal/app/model"
	"uninote-collector/internal/app/repository"
	"uninote-collector/internal/app/subtitle"
	"uninote-collector/internal/app/util/files"
	"uninote-collector/internal/app/utils"
)

// Outcome classifies the result of one video download.
type Outcome int

const (
	// OutcomeDownloaded means the video was fetched and added to the log.
	OutcomeDownloaded Outcome = iota
	// OutcomeSkipped means the video id was already in the collection log.
	OutcomeSkipped
	// OutcomeFailed means the download failed and belongs in the failure
	// log.
	OutcomeFailed
)

// Paths fixes where the collector writes its artifacts.
type Paths struct {
	VideoDir      string
	MetadataDir   string
	TranscriptDir string
}

// Options tunes a batch run.
type Options struct {
	Paths        Paths
	SubtitleLang string
	RowDelay     time.Duration
	Progress     ProgressConfig
}

// BatchSummary reports what a batch run did.
type BatchSummary struct {
	Total        int
	Attempted    int
	Succeeded    int
	Failed       int
	NeedsWhisper int
	Interrupted  bool
}

type Downloader struct {
	retriever api.Retriever
	db        repository.CollectionDAO
	failures  repository.FailureSink
	logger    *zap.Logger
	opts      Options
}

func NewDownloader(retriever api.Retriever, collectionDAO repository.CollectionDAO,
	failures repository.FailureSink, logger *zap.Logger, opts Options) *Downloader {
	return &Downloader{
		retriever: retriever,
		db:        collectionDAO,
		failures:  failures,
		logger:    logger,
		opts:      opts,
	}
}

func (d *Downloader) Close() error {
	return d.db.Close()
}

// DownloadBatch downloads every row of the CSV at listPath in order. Each
// success is appended to the collection log before the next row starts, so
// the log stays valid whenever the loop stops. The returned error is non-nil
// only for input problems that prevent the batch from starting; per-video
// failures are counted in the summary and written to the failure log.
func (d *Downloader) DownloadBatch(ctx context.Context, listPath string) (*BatchSummary, error) {
	rows, err := LoadBatchFile(listPath)
	if err != nil {
		return nil, err
	}

	if err := files.EnsureDirs(d.opts.Paths.VideoDir, d.opts.Paths.MetadataDir, d.opts.Paths.TranscriptDir); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	d.logger.Info("starting batch download",
		zap.String("run_id", runID),
		zap.Int("videos", len(rows)),
		zap.String("retriever", d.retriever.Name()),
	)

	printBanner()
	fmt.Printf("BATCH DOWNLOAD: %d videos\n", len(rows))
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("Retriever: %s\n", d.retriever.Name())
	fmt.Println()
	fmt.Println("NOTE: auto-generated captions are disabled; videos without")
	fmt.Println("manual subtitles will need Whisper transcription later.")
	printBanner()

	pm := NewProgressManager(d.opts.Progress)
	bar := pm.CreateBar(len(rows), "Downloading")

	summary := &BatchSummary{Total: len(rows)}
	startIndex := d.db.TotalVideos() + 1

	for n, row := range rows {
		index := startIndex + n
		summary.Attempted = n + 1

		outcome, record, err := d.downloadOne(ctx, row, index)
		if interrupted(ctx, err) {
			summary.Interrupted = true
			d.printInterrupted(summary)
			break
		}

		switch outcome {
		case OutcomeDownloaded:
			summary.Succeeded++
			if record != nil && record.NeedsWhisperTranscription {
				summary.NeedsWhisper++
			}
		case OutcomeSkipped:
			summary.Succeeded++
		case OutcomeFailed:
			summary.Failed++
			if recordErr := d.failures.Record(time.Now(), row.URL, row.Subject, err); recordErr != nil {
				d.logger.Warn("failed to record failure", zap.String("url", row.URL), zap.Error(recordErr))
			}
		}
		bar.Increment()

		if n < len(rows)-1 {
			fmt.Printf("\nWaiting %s before next download...\n", d.opts.RowDelay)
			if waitErr := d.wait(ctx); waitErr != nil {
				summary.Interrupted = true
				d.printInterrupted(summary)
				break
			}
		}
	}

	bar.Complete()
	pm.Wait()

	d.printSummary(summary)
	d.logger.Info("batch finished",
		zap.String("run_id", runID),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Int("needs_whisper", summary.NeedsWhisper),
		zap.Bool("interrupted", summary.Interrupted),
	)
	return summary, nil
}

// downloadOne handles a single CSV row. The returned record is non-nil only
// for OutcomeDownloaded; the returned error is the raw cause for the failure
// log.
func (d *Downloader) downloadOne(ctx context.Context, row model.BatchRow, index int) (Outcome, *model.VideoRecord, error) {
	printBanner()
	fmt.Printf("Downloading video %d: %s\n", index, row.URL)
	fmt.Printf("Subject: %s | Difficulty: %s | Source: %s\n", row.Subject, row.Difficulty, row.Source)
	printBanner()

	videoID := utils.VideoID(row.URL)

	if d.db.IsDownloaded(videoID) {
		fmt.Printf("Video %s already downloaded, skipping...\n", videoID)
		d.logger.Info("skipping duplicate",
			zap.String("video_id", videoID),
			zap.String("url", row.URL),
		)
		return OutcomeSkipped, nil, nil
	}

	baseName := fmt.Sprintf("%03d_%s", index, videoID)

	fmt.Println("Fetching video and metadata...")
	info, err := d.retriever.Fetch(ctx, api.FetchRequest{
		URL:      row.URL,
		VideoDir: d.opts.Paths.VideoDir,
		BaseName: baseName,
	})
	if err != nil {
		fmt.Printf("Failed to download %s\n", row.URL)
		fmt.Printf("   Error: %v\n", err)
		d.logger.Error("download failed", zap.String("url", row.URL), zap.Error(err))
		return OutcomeFailed, nil, err
	}

	record := metadata.BuildRecord(info, row, videoID, index, d.opts.SubtitleLang, time.Now())

	// First write carries the record without transcript status; it is
	// rewritten below once extraction has run, so a crash in between still
	// leaves a parseable metadata file behind.
	metadataPath := filepath.Join(d.opts.Paths.MetadataDir, baseName+"_metadata.json")
	if err := files.WriteJSON(metadataPath, &record); err != nil {
		d.logger.Error("failed to write metadata", zap.String("video_id", videoID), zap.Error(err))
		return OutcomeFailed, nil, err
	}

	found, text, err := subtitle.ExtractTranscript(d.opts.Paths.VideoDir, d.opts.Paths.TranscriptDir, baseName)
	if err != nil {
		d.logger.Warn("transcript extraction failed", zap.String("video_id", videoID), zap.Error(err))
		found = false
	}

	if found {
		fmt.Printf("   Transcript extracted: %d characters\n", len(text))
		if text == "" {
			d.logger.Warn("transcript empty after parsing", zap.String("video_id", videoID))
		}
	} else {
		fmt.Println("   No manual subtitles - will need Whisper transcription later")
	}

	record.NeedsWhisperTranscription = !found
	if err := files.WriteJSON(metadataPath, &record); err != nil {
		d.logger.Error("failed to update metadata", zap.String("video_id", videoID), zap.Error(err))
		return OutcomeFailed, nil, err
	}

	if err := d.db.Append(record); err != nil {
		d.logger.Error("failed to append to collection log", zap.String("video_id", videoID), zap.Error(err))
		return OutcomeFailed, nil, err
	}

	logFields := []zap.Field{
		zap.String("video_id", videoID),
		zap.Int("video_index", index),
		zap.Int("duration_seconds", record.Duration),
		zap.Bool("has_manual_subtitles", found),
	}
	if size, sizeErr := utils.GetFileSize(filepath.Join(d.opts.Paths.VideoDir, record.Filename)); sizeErr == nil {
		logFields = append(logFields, zap.Int64("bytes", size))
	}
	d.logger.Info("downloaded", logFields...)

	fmt.Printf("Successfully downloaded: %s\n", record.Title)
	fmt.Printf("   Duration: %d:%02d\n", record.Duration/60, record.Duration%60)
	fmt.Printf("   Resolution: %s\n", record.Resolution)
	fmt.Printf("   Has manual subtitles: %v\n", found)

	return OutcomeDownloaded, &record, nil
}

// wait sleeps the inter-row delay, returning early when ctx is done.
func (d *Downloader) wait(ctx context.Context) error {
	select {
	case <-time.After(d.opts.RowDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// interrupted tells a cancelled run apart from an ordinary download failure.
// Cancellation is never recorded in the failure log.
func interrupted(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	return ctx.Err() != nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (d *Downloader) printInterrupted(s *BatchSummary) {
	fmt.Printf("\n\n")
	printBanner()
	fmt.Println("DOWNLOAD INTERRUPTED")
	fmt.Printf("Progress: %d/%d videos\n", s.Succeeded, s.Attempted)
	printBanner()
}

func (d *Downloader) printSummary(s *BatchSummary) {
	fmt.Println()
	printBanner()
	fmt.Println("DOWNLOAD COMPLETE")
	fmt.Printf("Success: %d/%d\n", s.Succeeded, s.Total)
	fmt.Printf("Failed: %d\n", s.Failed)
	fmt.Printf("Need Whisper transcription: %d\n", s.NeedsWhisper)
	printBanner()

	if s.NeedsWhisper > 0 {
		fmt.Printf("\nNext step: run Whisper transcription on %d videos\n", s.NeedsWhisper)
	}
}

func printBanner() {
	fmt.Println(strings.Repeat("=", 80))
}
