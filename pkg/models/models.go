package models

// VideoID is the 11-character identifier YouTube embeds in its video URLs.
type VideoID string

// Page selects which set of images a lookup presents.
type Page string

const (
	PageThumbnail  Page = "thumbnail"
	PageProfilePic Page = "profile-pic"
	PageBanner     Page = "banner"
)

// ParsePage maps the route segment or API value to a Page. Empty means the thumbnail page.
func ParsePage(s string) (Page, bool) {
	switch Page(s) {
	case "", PageThumbnail:
		return PageThumbnail, true
	case PageProfilePic, PageBanner:
		return Page(s), true
	}
	return "", false
}

type Image struct {
	Tier  string `json:"tier"`
	URL   string `json:"url"`
	Size  string `json:"size"`
	Label string `json:"label,omitempty"`
}

// DownloadItem is one downloadable image; Filename has no extension.
type DownloadItem struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     string `json:"size"`
	// LabelKey is a localization key; empty when the size is the label.
	LabelKey string `json:"label_key,omitempty"`
}

// Lookup is the result of one submission. It is built once and never mutated.
type Lookup struct {
	VideoID   VideoID
	Page      Page
	Main      string
	Images    []Image
	Downloads []DownloadItem
	Extras    []DownloadItem
}

type APIResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	VideoID string `json:"video_id,omitempty"`
	Page    string `json:"page,omitempty"`

	// Main - preview image, possibly replaced by a lower tier when verification is on
	Main       string         `json:"main,omitempty"`
	Thumbnails []Image        `json:"thumbnails,omitempty"`
	Downloads  []DownloadItem `json:"downloads,omitempty"`
	Extras     []DownloadItem `json:"extras,omitempty"`
}
