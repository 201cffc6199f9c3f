package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/imbecility/yt-thumbs/pkg/downloader"
	"github.com/imbecility/yt-thumbs/pkg/models"
	"github.com/imbecility/yt-thumbs/pkg/thumbnail"
	"github.com/imbecility/yt-thumbs/pkg/utils"
)

var (
	filenameRe  = regexp.MustCompile(`^[A-Za-z0-9_-]{1,100}$`)
	imageFileRe = regexp.MustCompile(`^(?:maxresdefault|sddefault|hqdefault|mqdefault|default|[123])\.jpg$`)

	// buildSet is replaced in tests
	buildSet = thumbnail.Build
)

type Service struct {
	Downloader *downloader.Downloader
	// Verify replaces a missing preview with the next tier that resolves.
	Verify       bool
	ProbeTimeout time.Duration
}

func NewService(dl *downloader.Downloader, verify bool, probeTimeoutSec int) *Service {
	if probeTimeoutSec <= 0 {
		probeTimeoutSec = 5
	}
	return &Service{
		Downloader:   dl,
		Verify:       verify,
		ProbeTimeout: time.Duration(probeTimeoutSec) * time.Second,
	}
}

// Lookup runs validation, extraction and URL building for one submission.
func (s *Service) Lookup(ctx context.Context, rawURL string, page models.Page) (res *models.Lookup, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Lookup panicked", "url", rawURL, "panic", r)
			res, err = nil, fmt.Errorf("%w: %v", ErrProcessing, r)
		}
	}()

	input := strings.TrimSpace(rawURL)
	if !utils.IsValidYouTubeURL(input) {
		return nil, ErrInvalidURL
	}

	vidID, ok := utils.ExtractVideoID(input)
	if !ok {
		return nil, ErrExtractionFailure
	}

	set := buildSet(vidID)
	view := thumbnail.ViewFor(page, set)

	main := view.Main
	if s.Verify && page != models.PageProfilePic {
		main = s.resolvePreview(ctx, set)
	}

	slog.Debug("Lookup done", "vid", vidID, "page", page, "main", main)

	return &models.Lookup{
		VideoID:   vidID,
		Page:      page,
		Main:      main,
		Images:    view.Images,
		Downloads: view.Downloads,
		Extras:    view.Extras,
	}, nil
}

// resolvePreview returns the first URL of the fallback chain that exists.
// When nothing answers the first entry is kept and the page shows a placeholder.
func (s *Service) resolvePreview(ctx context.Context, set thumbnail.Set) string {
	chain := set.FallbackChain()

	ctx, cancel := context.WithTimeout(ctx, s.ProbeTimeout)
	defer cancel()

	for _, u := range chain {
		if s.Downloader.Exists(ctx, u) {
			return u
		}
		slog.Debug("Preview tier missing", "url", u)
	}
	slog.Warn("No preview tier resolved", "vid", set.VideoID())
	return chain[0]
}

// Image fetches one thumbnail for the download proxy. Only img.youtube.com
// thumbnail paths are accepted.
func (s *Service) Image(ctx context.Context, src, name string) (*downloader.Image, error) {
	if !filenameRe.MatchString(name) {
		return nil, ErrInvalidFilename
	}
	if err := checkImageURL(src); err != nil {
		return nil, err
	}
	return s.Downloader.Fetch(ctx, src, name)
}

func checkImageURL(src string) error {
	u, err := url.Parse(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if u.Scheme != "https" || u.Host != "img.youtube.com" || u.RawQuery != "" || u.User != nil {
		return ErrInvalidImage
	}

	dir, file := path.Split(u.Path)
	id := strings.TrimSuffix(strings.TrimPrefix(dir, "/vi/"), "/")
	if !strings.HasPrefix(dir, "/vi/") || !utils.IsVideoID(id) || !imageFileRe.MatchString(file) {
		return ErrInvalidImage
	}
	return nil
}

// SaveAll downloads every item of a lookup, extras included, into the output directory.
func (s *Service) SaveAll(ctx context.Context, res *models.Lookup) *downloader.Batch {
	items := make([]downloader.Item, 0, len(res.Downloads)+len(res.Extras))
	for _, d := range res.Downloads {
		items = append(items, downloader.Item{URL: d.URL, Filename: d.Filename})
	}
	for _, d := range res.Extras {
		items = append(items, downloader.Item{URL: d.URL, Filename: d.Filename})
	}
	return s.Downloader.SaveAll(ctx, items)
}
