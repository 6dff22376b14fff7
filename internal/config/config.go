// Package config loads the collector configuration from collector.yaml and
// the environment. Every field has a default, so a config file is optional.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	envConfigFile = "UNINOTE_CONFIG"
	envOutputDir  = "UNINOTE_OUTPUT_DIR"

	defaultConfigFile = "collector.yaml"
)

type Config struct {
	OutputDir            string `yaml:"output_dir" validate:"required"`
	RateLimitSeconds     int    `yaml:"rate_limit_seconds" validate:"min=0"`
	MaxHeight            int    `yaml:"max_height" validate:"min=1"`
	SubtitleLang         string `yaml:"subtitle_lang" validate:"required"`
	SocketTimeoutSeconds int    `yaml:"socket_timeout_seconds" validate:"min=1"`
	UserAgent            string `yaml:"user_agent" validate:"required"`
	Progress             bool   `yaml:"progress"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		OutputDir:            "data/raw_videos",
		RateLimitSeconds:     5,
		MaxHeight:            720,
		SubtitleLang:         "en",
		SocketTimeoutSeconds: 30,
		UserAgent:            "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		Progress:             true,
	}
}

// Load builds the configuration: defaults, then the YAML file, then
// environment overrides. UNINOTE_CONFIG names an alternative config file and
// makes it mandatory; the default collector.yaml may be absent.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path := os.Getenv(envConfigFile)
	required := path != ""
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !required:
		// Defaults stand.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if dir := os.Getenv(envOutputDir); dir != "" {
		cfg.OutputDir = dir
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) VideoDir() string      { return filepath.Join(c.OutputDir, "videos") }
func (c *Config) MetadataDir() string   { return filepath.Join(c.OutputDir, "metadata") }
func (c *Config) TranscriptDir() string { return filepath.Join(c.OutputDir, "transcripts") }

// LogPath is the collection log the downloader appends to.
func (c *Config) LogPath() string { return filepath.Join(c.OutputDir, "collection_log.json") }

// FailedPath is the plain-text failure log.
func (c *Config) FailedPath() string { return filepath.Join(c.OutputDir, "failed_downloads.txt") }

// StatsPath is where the statistics report is written.
func (c *Config) StatsPath() string { return filepath.Join(c.OutputDir, "statistics.json") }

// RowDelay is the pause between consecutive downloads.
func (c *Config) RowDelay() time.Duration {
	return time.Duration(c.RateLimitSeconds) * time.Second
}
