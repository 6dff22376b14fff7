// Package stats aggregates the collection log into download statistics.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"uninote-collector/internal/app/model"
	"uninote-collector/internal/app/repository"
	"uninote-collector/internal/app/util/files"
)

// Reporter prints a statistics report and writes statistics.json next to the
// collection log.
type Reporter struct {
	db        repository.CollectionDAO
	statsPath string
	logger    *zap.Logger
}

func NewReporter(collectionDAO repository.CollectionDAO, statsPath string, logger *zap.Logger) *Reporter {
	return &Reporter{
		db:        collectionDAO,
		statsPath: statsPath,
		logger:    logger,
	}
}

// Compute aggregates statistics over the given records.
func Compute(videos []model.VideoRecord) *model.Statistics {
	stats := &model.Statistics{
		TotalVideos:  len(videos),
		BySubject:    lo.CountValuesBy(videos, func(v model.VideoRecord) string { return v.Subject }),
		ByDifficulty: lo.CountValuesBy(videos, func(v model.VideoRecord) string { return v.Difficulty }),
		BySource:     lo.CountValuesBy(videos, func(v model.VideoRecord) string { return v.Source }),
	}

	for _, v := range videos {
		stats.TotalDurationHours += float64(v.Duration) / 3600
		if v.HasManualSubtitles {
			stats.WithManualSubtitles++
		}
		if v.NeedsWhisperTranscription {
			stats.NeedsWhisper++
		}
	}
	if stats.TotalVideos > 0 {
		stats.AvgDurationMinutes = stats.TotalDurationHours * 60 / float64(stats.TotalVideos)
	}
	return stats
}

// Generate prints the report and writes statistics.json. An empty collection
// log prints a notice and writes nothing.
func (r *Reporter) Generate() (*model.Statistics, error) {
	videos := r.db.All()
	if len(videos) == 0 {
		fmt.Println("No videos downloaded yet.")
		return nil, nil
	}

	stats := Compute(videos)
	printReport(stats)

	if err := files.WriteJSON(r.statsPath, stats); err != nil {
		return nil, fmt.Errorf("write statistics: %w", err)
	}
	r.logger.Info("statistics written",
		zap.String("path", r.statsPath),
		zap.Int("total_videos", stats.TotalVideos),
	)
	return stats, nil
}

func printReport(stats *model.Statistics) {
	banner := strings.Repeat("=", 80)
	fmt.Printf("\n%s\n", banner)
	fmt.Println("DOWNLOAD STATISTICS")
	fmt.Println(banner)
	fmt.Printf("\nTotal Videos: %d\n", stats.TotalVideos)
	fmt.Printf("Total Duration: %.1f hours\n", stats.TotalDurationHours)
	fmt.Printf("Average Duration: %.1f minutes\n", stats.AvgDurationMinutes)
	fmt.Printf("With Manual Subtitles: %d (%.1f%%)\n",
		stats.WithManualSubtitles, percent(stats.WithManualSubtitles, stats.TotalVideos))
	fmt.Printf("Need Whisper: %d (%.1f%%)\n",
		stats.NeedsWhisper, percent(stats.NeedsWhisper, stats.TotalVideos))

	printDistribution("By Subject", stats.BySubject, stats.TotalVideos)
	printDistribution("By Difficulty", stats.ByDifficulty, stats.TotalVideos)
	printDistribution("By Source", stats.BySource, stats.TotalVideos)

	fmt.Printf("\n%s\n\n", banner)
}

func printDistribution(title string, counts map[string]int, total int) {
	fmt.Printf("\n%s:\n", title)

	keys := lo.Keys(counts)
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %s: %d (%.1f%%)\n", key, counts[key], percent(counts[key], total))
	}
}

func percent(n, total int) float64 {
	return float64(n) / float64(total) * 100
}
