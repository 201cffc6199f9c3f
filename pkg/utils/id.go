package utils

import (
	"regexp"

	"github.com/imbecility/yt-thumbs/pkg/models"
)

// Both patterns share one grammar and differ only in the ID fragment, so
// anything ExtractVideoID accepts also passes IsValidYouTubeURL.
const (
	// scheme and www. are optional; host names are matched case-insensitively.
	hostPrefix = `^(?i:https?://)?(?i:(?:www|m)\.)?`
	paramKey   = `[\w.~%+-]+`
	// first v= wins: the leading parameters are matched lazily
	watchLead = `watch\?(?:` + paramKey + `=[^&#\s]*&)*?v=`
	watchTail = `(?:&` + paramKey + `(?:=[^&#\s]*)?)*`
	pathTail  = `/?(?:\?[^#\s]*)?`
	fragment  = `(?:#\S*)?$`
)

func shapePattern(id string) string {
	return hostPrefix +
		`(?:(?i:youtube\.com)/(?:` + watchLead + id + watchTail +
		`|(?:embed|shorts|live|v)/` + id + pathTail + `)` +
		`|(?i:youtu\.be)/` + id + pathTail + `)` + fragment
}

var (
	validURLRe = regexp.MustCompile(shapePattern(`[\w-]+`))
	videoIDRe  = regexp.MustCompile(shapePattern(`([\w-]{11})`))

	bareIDRe = regexp.MustCompile(`^[\w-]{11}$`)
)

// IsValidYouTubeURL reports whether input looks like a YouTube video URL.
// It does not check the length of the ID; ExtractVideoID does.
func IsValidYouTubeURL(input string) bool {
	if input == "" {
		return false
	}
	return validURLRe.MatchString(input)
}

// ExtractVideoID returns the 11-character video ID embedded in input.
// With several v= parameters the first acceptable one wins.
func ExtractVideoID(input string) (models.VideoID, bool) {
	matches := videoIDRe.FindStringSubmatch(input)
	if len(matches) < 2 {
		return "", false
	}
	return models.VideoID(matches[1]), true
}

// IsVideoID reports whether s is a bare 11-character video ID.
func IsVideoID(s string) bool {
	return bareIDRe.MatchString(s)
}
