package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/imbecility/yt-thumbs/pkg/client"
)

const (
	// DefaultStride separates the start of consecutive batch jobs.
	DefaultStride = 200 * time.Millisecond
	// MaxImageBytes caps a single image body.
	MaxImageBytes = 10 << 20
)

var ErrNotImage = errors.New("response is not an image")

// DownloadError reports a failed fetch or save of one image.
type DownloadError struct {
	URL    string
	Status int
	Err    error
}

func (e *DownloadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("download %s: http status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Image is a fetched blob together with the name it should be saved under.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Downloader struct {
	Client    client.HTTPClient
	OutputDir string
	Stride    time.Duration
}

// Fetch downloads url into memory. The ".jpg" extension is appended to filename.
func (d *Downloader) Fetch(ctx context.Context, url string, filename string) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}
	defer func(Body io.ReadCloser) {
		cerr := Body.Close()
		if cerr != nil {
			slog.Warn("Error closing response body", "error", cerr)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, &DownloadError{URL: url, Status: resp.StatusCode}
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(ct, "image/") {
		return nil, &DownloadError{URL: url, Err: fmt.Errorf("%w: %s", ErrNotImage, ct)}
	}
	if ct == "" {
		ct = "image/jpeg"
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}
	if len(data) > MaxImageBytes {
		return nil, &DownloadError{URL: url, Err: fmt.Errorf("image larger than %d bytes", MaxImageBytes)}
	}

	slog.Debug("Image fetched", "url", url, "bytes", len(data))
	return &Image{Filename: filename + ".jpg", ContentType: ct, Data: data}, nil
}

// Save fetches url and writes it to OutputDir, returning the final path.
func (d *Downloader) Save(ctx context.Context, url string, filename string) (string, error) {
	img, err := d.Fetch(ctx, url, filename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(d.OutputDir, 0755); err != nil {
		return "", &DownloadError{URL: url, Err: fmt.Errorf("failed to create output dir: %w", err)}
	}

	finalPath := filepath.Join(d.OutputDir, img.Filename)
	tmpPath := finalPath + ".part"

	if err := os.WriteFile(tmpPath, img.Data, 0644); err != nil {
		return "", &DownloadError{URL: url, Err: err}
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		if rerr := os.Remove(tmpPath); rerr != nil {
			slog.Error("Error removing temp file", "error", rerr)
		}
		return "", &DownloadError{URL: url, Err: err}
	}

	slog.Info("Image saved", "file", finalPath)
	return finalPath, nil
}

// Exists reports whether url answers a HEAD request with 200.
func (d *Downloader) Exists(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := d.Client.Do(req)
	if err != nil {
		slog.Debug("Probe failed", "url", url, "err", err)
		return false
	}
	defer func(Body io.ReadCloser) {
		cerr := Body.Close()
		if cerr != nil {
			slog.Warn("Error closing response body", "error", cerr)
		}
	}(resp.Body)
	return resp.StatusCode == http.StatusOK
}

func (d *Downloader) stride() time.Duration {
	if d.Stride <= 0 {
		return DefaultStride
	}
	return d.Stride
}
