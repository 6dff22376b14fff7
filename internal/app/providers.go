package app

import (
	"log"

	"go.uber.org/zap"

	"uninote-collector/internal/app/api"
	"uninote-collector/internal/app/api/ytdlp"
	"uninote-collector/internal/app/downloader"
	"uninote-collector/internal/app/repository"
	"uninote-collector/internal/app/repository/jsonfile"
	"uninote-collector/internal/app/stats"
	"uninote-collector/internal/config"
	"uninote-collector/internal/logging"
	"uninote-collector/internal/version"
)

// App bundles the downloader with the reporter that runs after a batch. Both
// share one collection DAO so the report sees what the batch just appended.
type App struct {
	Downloader *downloader.Downloader
	Reporter   *stats.Reporter
}

func NewApp(d *downloader.Downloader, r *stats.Reporter) *App {
	return &App{Downloader: d, Reporter: r}
}

func provideConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v\n", err)
	}
	return cfg
}

func provideLogger(verbose bool) *zap.Logger {
	return logging.MustNewLogger(verbose)
}

func provideRetriever(cfg *config.Config) api.Retriever {
	return ytdlp.NewYtDlpRetriever(ytdlp.Options{
		MaxHeight:            cfg.MaxHeight,
		SubtitleLang:         cfg.SubtitleLang,
		SocketTimeoutSeconds: cfg.SocketTimeoutSeconds,
		UserAgent:            cfg.UserAgent,
	})
}

// provideCollectionDAO opens the JSON collection log. The retriever name
// ends up in the header of a freshly created log.
func provideCollectionDAO(cfg *config.Config, retriever api.Retriever) repository.CollectionDAO {
	db, err := jsonfile.NewJSONLogDB(cfg.LogPath(), version.Version, retriever.Name())
	if err != nil {
		log.Fatalf("Failed to open collection log: %v\n", err)
	}
	return db
}

func provideFailureSink(cfg *config.Config) repository.FailureSink {
	return jsonfile.NewFailureLog(cfg.FailedPath())
}

func provideDownloaderOptions(cfg *config.Config, verbose bool) downloader.Options {
	return downloader.Options{
		Paths: downloader.Paths{
			VideoDir:      cfg.VideoDir(),
			MetadataDir:   cfg.MetadataDir(),
			TranscriptDir: cfg.TranscriptDir(),
		},
		SubtitleLang: cfg.SubtitleLang,
		RowDelay:     cfg.RowDelay(),
		// The bar only renders when configured on, a terminal is attached
		// and debug logging is off; the bar and debug logs share stderr.
		Progress: downloader.ProgressConfig{
			Enabled: cfg.Progress && !verbose && downloader.ShouldShowProgress(false),
		},
	}
}

func provideReporter(db repository.CollectionDAO, cfg *config.Config, logger *zap.Logger) *stats.Reporter {
	return stats.NewReporter(db, cfg.StatsPath(), logger)
}
