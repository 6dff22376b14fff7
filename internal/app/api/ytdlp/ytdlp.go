// Package ytdlp implements the Retriever interface on top of the yt-dlp
// binary via github.com/lrstanley/go-ytdlp.
package ytdlp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	goytdlp "github.com/lrstanley/go-ytdlp"

	"uninote-collector/internal/app/api"
	"uninote-collector/internal/app/model"
)

// Options is the download policy applied to every fetch.
type Options struct {
	// MaxHeight caps the selected video stream, e.g. 720.
	MaxHeight int
	// SubtitleLang selects which manual subtitle track to fetch.
	SubtitleLang string
	// SocketTimeoutSeconds bounds stalled connections.
	SocketTimeoutSeconds int
	// UserAgent is sent on every request.
	UserAgent string
}

type YtDlpRetriever struct {
	opts Options
}

func NewYtDlpRetriever(opts Options) *YtDlpRetriever {
	return &YtDlpRetriever{opts: opts}
}

// Install makes sure a yt-dlp binary is available, downloading one on first
// use. Call once before any Fetch.
func Install(ctx context.Context) {
	goytdlp.MustInstall(ctx, nil)
}

func (r *YtDlpRetriever) Name() string {
	return "yt-dlp (go-ytdlp)"
}

// Fetch downloads req.URL into req.VideoDir as BaseName.mp4 plus the
// BaseName.<lang>.vtt and BaseName.info.json sidecars. Only manual subtitles
// are requested; auto-generated captions are explicitly disabled.
func (r *YtDlpRetriever) Fetch(ctx context.Context, req api.FetchRequest) (*model.VideoInfo, error) {
	format := fmt.Sprintf(
		"bestvideo[height<=%d][ext=mp4]+bestaudio[ext=m4a]/best[height<=%d][ext=mp4]/best",
		r.opts.MaxHeight, r.opts.MaxHeight,
	)

	dl := goytdlp.New().
		Format(format).
		Output(filepath.Join(req.VideoDir, req.BaseName+".%(ext)s")).
		WriteSubs().
		NoWriteAutoSubs().
		SubLangs(r.opts.SubtitleLang).
		SubFormat("vtt").
		WriteInfoJSON().
		MergeOutputFormat("mp4").
		RecodeVideo("mp4").
		SocketTimeout(float64(r.opts.SocketTimeoutSeconds)).
		UserAgent(r.opts.UserAgent)

	if _, err := dl.Run(ctx, req.URL); err != nil {
		return nil, fmt.Errorf("yt-dlp failed for %s: %w", req.URL, err)
	}

	return readInfoSidecar(filepath.Join(req.VideoDir, req.BaseName+".info.json"))
}

// readInfoSidecar parses the .info.json written next to the video. A missing
// sidecar yields nil info rather than an error.
func readInfoSidecar(path string) (*model.VideoInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read info sidecar: %w", err)
	}

	var info model.VideoInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse info sidecar %s: %w", path, err)
	}
	return &info, nil
}

var _ api.Retriever = (*YtDlpRetriever)(nil)
