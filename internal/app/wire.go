//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"uninote-collector/internal/app/downloader"
	"uninote-collector/internal/app/repository"
	"uninote-collector/internal/app/stats"
)

func InitializeApp(verbose bool) *App {
	wire.Build(
		NewApp,
		downloader.NewDownloader,
		provideReporter,
		provideConfig,
		provideLogger,
		provideRetriever,
		provideCollectionDAO,
		provideFailureSink,
		provideDownloaderOptions,
	)
	return &App{}
}

func InitializeReporter(verbose bool) *stats.Reporter {
	wire.Build(
		provideReporter,
		provideConfig,
		provideLogger,
		provideRetriever,
		provideCollectionDAO,
	)
	return &stats.Reporter{}
}

func InitializeCollectionDAO() repository.CollectionDAO {
	wire.Build(
		provideConfig,
		provideRetriever,
		provideCollectionDAO,
	)
	return nil
}
