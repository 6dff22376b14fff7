package downloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"uninote-collector/internal/app/api"
	"uninote-collector/internal/app/model"
	"uninote-collector/internal/app/testutil"
	"uninote-collector/internal/app/util/files"
	"uninote-collector/internal/app/utils"
)

const testVTT = "WEBVTT\n\n1\n00:00:00.000 --> 00:00:02.000\nHello <c>world</c>\n"

type downloaderFixture struct {
	downloader *Downloader
	retriever  *testutil.MockRetriever
	dao        *testutil.MockCollectionDAO
	failures   *testutil.MockFailureSink
	paths      Paths
}

func newFixture(t *testing.T, retriever *testutil.MockRetriever, dao *testutil.MockCollectionDAO) *downloaderFixture {
	t.Helper()

	root := t.TempDir()
	paths := Paths{
		VideoDir:      filepath.Join(root, "videos"),
		MetadataDir:   filepath.Join(root, "metadata"),
		TranscriptDir: filepath.Join(root, "transcripts"),
	}
	failures := testutil.NewMockFailureSink()

	d := NewDownloader(retriever, dao, failures, zap.NewNop(), Options{
		Paths:        paths,
		SubtitleLang: "en",
		RowDelay:     time.Millisecond,
		Progress:     ProgressConfig{Enabled: false},
	})

	return &downloaderFixture{
		downloader: d,
		retriever:  retriever,
		dao:        dao,
		failures:   failures,
		paths:      paths,
	}
}

func TestDownloadBatch_downloads_and_logs(t *testing.T) {
	url1 := "https://example.com/v1"
	url2 := "https://example.com/v2"

	retriever := testutil.NewMockRetriever().
		WithInfo(url1, &model.VideoInfo{
			WebpageURL: url1,
			Title:      "With subtitles",
			Duration:   600,
			Width:      1280,
			Height:     720,
			Subtitles:  map[string][]model.SubtitleTrack{"en": {{Ext: "vtt"}}},
		}).
		WithSubtitle(url1, ".en.vtt", testVTT).
		WithInfo(url2, &model.VideoInfo{
			WebpageURL: url2,
			Title:      "Without subtitles",
			Duration:   300,
		})

	f := newFixture(t, retriever, testutil.NewMockCollectionDAO())

	csvPath := writeBatchFile(t, "url,subject,difficulty,source\n"+
		url1+",physics,beginner,youtube\n"+
		url2+",calculus,advanced,khan\n")

	summary, err := f.downloader.DownloadBatch(context.Background(), csvPath)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 1, summary.NeedsWhisper)
	assert.False(t, summary.Interrupted)

	appended := f.dao.AppendedRecords()
	require.Len(t, appended, 2)

	first := appended[0]
	assert.Equal(t, 1, first.VideoIndex)
	assert.Equal(t, utils.VideoID(url1), first.VideoID)
	assert.Equal(t, "With subtitles", first.Title)
	assert.True(t, first.HasManualSubtitles)
	assert.False(t, first.NeedsWhisperTranscription)
	assert.Equal(t, fmt.Sprintf("001_%s.mp4", utils.VideoID(url1)), first.Filename)

	second := appended[1]
	assert.Equal(t, 2, second.VideoIndex)
	assert.True(t, second.NeedsWhisperTranscription)
	assert.Equal(t, "calculus", second.Subject)

	assert.Empty(t, f.failures.Entries())
}

func TestDownloadBatch_writes_metadata_and_transcripts(t *testing.T) {
	withSubs := "https://example.com/v1"
	withoutSubs := "https://example.com/v2"

	retriever := testutil.NewMockRetriever().
		WithInfo(withSubs, &model.VideoInfo{WebpageURL: withSubs, Title: "Lecture"}).
		WithSubtitle(withSubs, ".en.vtt", testVTT).
		WithInfo(withoutSubs, &model.VideoInfo{WebpageURL: withoutSubs, Title: "Silent"})

	f := newFixture(t, retriever, testutil.NewMockCollectionDAO())

	csvPath := writeBatchFile(t, "url,subject,difficulty,source\n"+
		withSubs+",physics,beginner,youtube\n"+
		withoutSubs+",calculus,advanced,khan\n")

	_, err := f.downloader.DownloadBatch(context.Background(), csvPath)
	require.NoError(t, err)

	base := "001_" + utils.VideoID(withSubs)

	var stored model.VideoRecord
	require.NoError(t, files.ReadJSON(filepath.Join(f.paths.MetadataDir, base+"_metadata.json"), &stored))
	assert.Equal(t, utils.VideoID(withSubs), stored.VideoID)
	assert.Equal(t, "Lecture", stored.Title)
	assert.False(t, stored.NeedsWhisperTranscription)

	vttCopy, err := os.ReadFile(filepath.Join(f.paths.TranscriptDir, base+"_transcript.vtt"))
	require.NoError(t, err)
	assert.Equal(t, testVTT, string(vttCopy))

	txt, err := os.ReadFile(filepath.Join(f.paths.TranscriptDir, base+"_transcript.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello world", string(txt))

	// The second video has no sidecar, so the rewrite after extraction must
	// flip the flag that the initial metadata write left false.
	silentBase := "002_" + utils.VideoID(withoutSubs)
	require.NoError(t, files.ReadJSON(filepath.Join(f.paths.MetadataDir, silentBase+"_metadata.json"), &stored))
	assert.True(t, stored.NeedsWhisperTranscription)
	assert.NoFileExists(t, filepath.Join(f.paths.TranscriptDir, silentBase+"_transcript.vtt"))
}

func TestDownloadBatch_skips_already_downloaded(t *testing.T) {
	url := "https://example.com/v1"
	id := utils.VideoID(url)

	retriever := testutil.NewMockRetriever()
	dao := testutil.NewMockCollectionDAO().WithDownloadedID(id)

	f := newFixture(t, retriever, dao)

	csvPath := writeBatchFile(t, "url,subject,difficulty,source\n"+url+",physics,beginner,youtube\n")

	summary, err := f.downloader.DownloadBatch(context.Background(), csvPath)
	require.NoError(t, err)

	// The duplicate counts as handled but fetches nothing and logs nothing
	// new: a re-run of the same CSV appends zero records.
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 0, summary.NeedsWhisper)
	assert.Zero(t, retriever.GetCallCount())
	assert.Empty(t, f.dao.AppendedRecords())
	assert.Equal(t, 1, f.dao.TotalVideos())
}

func TestDownloadBatch_duplicate_does_not_count_toward_whisper(t *testing.T) {
	url := "https://example.com/v1"

	dao := testutil.NewMockCollectionDAO().WithRecords(model.VideoRecord{
		VideoID:                   utils.VideoID(url),
		NeedsWhisperTranscription: true,
	})

	f := newFixture(t, testutil.NewMockRetriever(), dao)

	csvPath := writeBatchFile(t, "url,subject,difficulty,source\n"+url+",physics,beginner,youtube\n")

	summary, err := f.downloader.DownloadBatch(context.Background(), csvPath)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 0, summary.NeedsWhisper)
}

func TestDownloadBatch_failure_logged_and_batch_continues(t *testing.T) {
	badURL := "https://example.com/broken"
	goodURL := "https://example.com/v2"
	cause := errors.New("HTTP Error 403: Forbidden")

	retriever := testutil.NewMockRetriever().
		WithError(badURL, cause).
		WithInfo(goodURL, &model.VideoInfo{WebpageURL: goodURL, Title: "Survivor"})

	f := newFixture(t, retriever, testutil.NewMockCollectionDAO())

	csvPath := writeBatchFile(t, "url,subject,difficulty,source\n"+
		badURL+",physics,beginner,youtube\n"+
		goodURL+",calculus,advanced,khan\n")

	summary, err := f.downloader.DownloadBatch(context.Background(), csvPath)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.False(t, summary.Interrupted)

	entries := f.failures.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, badURL, entries[0].URL)
	assert.Equal(t, "physics", entries[0].Subject)
	assert.Equal(t, cause, entries[0].Cause)

	// The failed row still consumed an index: the survivor is video 2.
	appended := f.dao.AppendedRecords()
	require.Len(t, appended, 1)
	assert.Equal(t, 2, appended[0].VideoIndex)
	assert.Equal(t, "Survivor", appended[0].Title)
}

func TestDownloadBatch_start_index_continues_from_log(t *testing.T) {
	url := "https://example.com/new"

	dao := testutil.NewMockCollectionDAO().WithRecords(
		model.VideoRecord{VideoID: "aaa111"},
		model.VideoRecord{VideoID: "bbb222"},
		model.VideoRecord{VideoID: "ccc333"},
	)
	retriever := testutil.NewMockRetriever().
		WithInfo(url, &model.VideoInfo{WebpageURL: url, Title: "Fourth"})

	f := newFixture(t, retriever, dao)

	csvPath := writeBatchFile(t, "url,subject,difficulty,source\n"+url+",physics,beginner,youtube\n")

	_, err := f.downloader.DownloadBatch(context.Background(), csvPath)
	require.NoError(t, err)

	appended := f.dao.AppendedRecords()
	require.Len(t, appended, 1)
	assert.Equal(t, 4, appended[0].VideoIndex)
	assert.Equal(t, fmt.Sprintf("004_%s.mp4", utils.VideoID(url)), appended[0].Filename)
}

func TestDownloadBatch_interrupt_during_fetch(t *testing.T) {
	url1 := "https://example.com/v1"
	url2 := "https://example.com/v2"
	url3 := "https://example.com/v3"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	retriever := testutil.NewMockRetriever()
	retriever.FetchFunc = func(fetchCtx context.Context, req api.FetchRequest) (*model.VideoInfo, error) {
		if req.URL == url2 {
			cancel()
			return nil, fetchCtx.Err()
		}
		return &model.VideoInfo{WebpageURL: req.URL}, nil
	}

	f := newFixture(t, retriever, testutil.NewMockCollectionDAO())

	csvPath := writeBatchFile(t, "url,subject,difficulty,source\n"+
		url1+",physics,beginner,youtube\n"+
		url2+",calculus,advanced,khan\n"+
		url3+",algebra,beginner,youtube\n")

	summary, err := f.downloader.DownloadBatch(ctx, csvPath)
	require.NoError(t, err)

	assert.True(t, summary.Interrupted)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 2, summary.Attempted)

	// The third row was never attempted, the cancellation was not recorded
	// as a failure, and the log kept the completed download.
	assert.Equal(t, []string{url1, url2}, retriever.FetchedURLs())
	assert.Empty(t, f.failures.Entries())
	assert.Len(t, f.dao.AppendedRecords(), 1)
}

func TestDownloadBatch_interrupt_during_delay(t *testing.T) {
	url1 := "https://example.com/v1"
	url2 := "https://example.com/v2"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	retriever := testutil.NewMockRetriever()
	retriever.FetchFunc = func(fetchCtx context.Context, req api.FetchRequest) (*model.VideoInfo, error) {
		// Cancel right after the first successful download; the batch loop
		// is inside the inter-row delay when it notices.
		cancel()
		return &model.VideoInfo{WebpageURL: req.URL}, nil
	}

	f := newFixture(t, retriever, testutil.NewMockCollectionDAO())
	// A delay far longer than the test timeout proves the wait is
	// interruptible rather than slept through.
	f.downloader.opts.RowDelay = time.Hour

	csvPath := writeBatchFile(t, "url,subject,difficulty,source\n"+
		url1+",physics,beginner,youtube\n"+
		url2+",calculus,advanced,khan\n")

	done := make(chan struct{})
	var summary *BatchSummary
	var err error
	go func() {
		summary, err = f.downloader.DownloadBatch(ctx, csvPath)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not stop during the inter-row delay")
	}

	require.NoError(t, err)
	assert.True(t, summary.Interrupted)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, []string{url1}, retriever.FetchedURLs())
	assert.Empty(t, f.failures.Entries())
}

func TestDownloadBatch_no_delay_after_last_row(t *testing.T) {
	url := "https://example.com/only"

	retriever := testutil.NewMockRetriever().
		WithInfo(url, &model.VideoInfo{WebpageURL: url})

	f := newFixture(t, retriever, testutil.NewMockCollectionDAO())
	f.downloader.opts.RowDelay = time.Hour

	csvPath := writeBatchFile(t, "url,subject,difficulty,source\n"+url+",physics,beginner,youtube\n")

	done := make(chan struct{})
	go func() {
		_, _ = f.downloader.DownloadBatch(context.Background(), csvPath)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("batch slept after the last row")
	}
}

func TestDownloadBatch_missing_list_is_an_error(t *testing.T) {
	f := newFixture(t, testutil.NewMockRetriever(), testutil.NewMockCollectionDAO())

	summary, err := f.downloader.DownloadBatch(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.Zero(t, f.retriever.GetCallCount())
}

func TestDownloadBatch_append_error_becomes_failure(t *testing.T) {
	url := "https://example.com/v1"
	appendErr := errors.New("disk full")

	retriever := testutil.NewMockRetriever().
		WithInfo(url, &model.VideoInfo{WebpageURL: url})
	dao := testutil.NewMockCollectionDAO().WithAppendError(appendErr)

	f := newFixture(t, retriever, dao)

	csvPath := writeBatchFile(t, "url,subject,difficulty,source\n"+url+",physics,beginner,youtube\n")

	summary, err := f.downloader.DownloadBatch(context.Background(), csvPath)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)

	entries := f.failures.Entries()
	require.Len(t, entries, 1)
	assert.ErrorIs(t, entries[0].Cause, appendErr)
}

func TestDownloader_close_closes_dao(t *testing.T) {
	dao := testutil.NewMockCollectionDAO()
	f := newFixture(t, testutil.NewMockRetriever(), dao)

	require.NoError(t, f.downloader.Close())
	assert.True(t, dao.WasCloseCalled())
}
