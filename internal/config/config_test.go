package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults_without_config_file(t *testing.T) {
	// Run from an empty directory so no collector.yaml is picked up.
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/raw_videos", cfg.OutputDir)
	assert.Equal(t, 5, cfg.RateLimitSeconds)
	assert.Equal(t, 720, cfg.MaxHeight)
	assert.Equal(t, "en", cfg.SubtitleLang)
	assert.Equal(t, 30, cfg.SocketTimeoutSeconds)
	assert.True(t, cfg.Progress)
}

func TestLoad_reads_collector_yaml(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := "output_dir: /srv/videos\nrate_limit_seconds: 10\nprogress: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "collector.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/videos", cfg.OutputDir)
	assert.Equal(t, 10, cfg.RateLimitSeconds)
	assert.False(t, cfg.Progress)

	// Fields the file does not mention keep their defaults.
	assert.Equal(t, 720, cfg.MaxHeight)
	assert.Equal(t, "en", cfg.SubtitleLang)
}

func TestLoad_explicit_config_file(t *testing.T) {
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_height: 1080\n"), 0644))
	t.Setenv("UNINOTE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1080, cfg.MaxHeight)
}

func TestLoad_explicit_config_file_must_exist(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("UNINOTE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_env_overrides_output_dir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := "output_dir: /from/file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "collector.yaml"), []byte(yaml), 0644))
	t.Setenv("UNINOTE_OUTPUT_DIR", "/from/env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.OutputDir)
}

func TestLoad_rejects_invalid_values(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "negative_rate_limit", yaml: "rate_limit_seconds: -1\n"},
		{name: "zero_max_height", yaml: "max_height: 0\n"},
		{name: "empty_subtitle_lang", yaml: "subtitle_lang: \"\"\n"},
		{name: "malformed_yaml", yaml: "output_dir: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			chdir(t, dir)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "collector.yaml"), []byte(tt.yaml), 0644))

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := &Config{OutputDir: "data/raw_videos"}

	assert.Equal(t, filepath.Join("data/raw_videos", "videos"), cfg.VideoDir())
	assert.Equal(t, filepath.Join("data/raw_videos", "metadata"), cfg.MetadataDir())
	assert.Equal(t, filepath.Join("data/raw_videos", "transcripts"), cfg.TranscriptDir())
	assert.Equal(t, filepath.Join("data/raw_videos", "collection_log.json"), cfg.LogPath())
	assert.Equal(t, filepath.Join("data/raw_videos", "failed_downloads.txt"), cfg.FailedPath())
	assert.Equal(t, filepath.Join("data/raw_videos", "statistics.json"), cfg.StatsPath())
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
