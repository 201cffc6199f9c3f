package gateway

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/imbecility/yt-thumbs/pkg/client"
	"github.com/imbecility/yt-thumbs/pkg/downloader"
)

// Config represents the configuration for gateway initialization.
type Config struct {
	// OutputDir is the folder for saved images (defaults to ./thumbnails).
	OutputDir string
	// TimeoutSec bounds a single image request in seconds (defaults to 30).
	TimeoutSec int
	// ProbeTimeoutSec bounds the whole preview fallback walk (defaults to 5).
	ProbeTimeoutSec int
	// Stride separates the jobs of a batch download (defaults to 200ms).
	Stride time.Duration
	// Verify probes the preview image and falls back to lower tiers.
	Verify bool
	// Debug turns on the HTTP client's debug logger. The global slog logger
	// is configured by the caller (see logger.SetupGlobal).
	Debug bool
	// Client replaces the browser-profile client, mostly for tests.
	Client client.HTTPClient
}

// New creates a ready-to-use Service instance with all necessary dependencies.
// It does not touch the global logger.
func New(cfg Config) (*Service, error) {
	// Set default values
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./thumbnails"
	}
	if cfg.TimeoutSec <= 0 {
		cfg.TimeoutSec = 30
	}
	if cfg.Stride <= 0 {
		cfg.Stride = downloader.DefaultStride
	}

	// the directory itself is created on the first save
	absOutDir, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("invalid output dir: %w", err)
	}

	httpClient := cfg.Client
	if httpClient == nil {
		httpClient, err = client.NewHttpClient(client.Options{TimeoutSec: cfg.TimeoutSec, Debug: cfg.Debug})
		if err != nil {
			return nil, fmt.Errorf("failed to init http client: %w", err)
		}
	}

	dl := &downloader.Downloader{
		Client:    httpClient,
		OutputDir: absOutDir,
		Stride:    cfg.Stride,
	}

	return NewService(dl, cfg.Verify, cfg.ProbeTimeoutSec), nil
}
