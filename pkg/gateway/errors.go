package gateway

import (
	"errors"

	"github.com/imbecility/yt-thumbs/pkg/downloader"
)

var (
	ErrInvalidURL        = errors.New("invalid youtube url")
	ErrExtractionFailure = errors.New("could not extract video ID")
	ErrProcessing        = errors.New("processing failed")
	ErrInvalidImage      = errors.New("not a youtube thumbnail url")
	ErrInvalidFilename   = errors.New("invalid filename")
)

// MessageKey maps an error to the localization key shown to the user.
func MessageKey(err error) string {
	var dErr *downloader.DownloadError
	switch {
	case errors.Is(err, ErrInvalidURL):
		return "errors.invalidUrl"
	case errors.Is(err, ErrExtractionFailure):
		return "errors.extractId"
	case errors.As(err, &dErr), errors.Is(err, ErrInvalidImage), errors.Is(err, ErrInvalidFilename):
		return "errors.download"
	default:
		return "errors.processing"
	}
}
