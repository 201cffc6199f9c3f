package thumbnail

import (
	"fmt"

	"github.com/imbecility/yt-thumbs/pkg/models"
)

const BaseURL = "https://img.youtube.com/vi/"

// Tier names one of the image variants YouTube serves for every video.
type Tier string

const (
	TierMaxRes  Tier = "maxres"
	TierSD      Tier = "sd"
	TierHQ      Tier = "hq"
	TierMQ      Tier = "mq"
	TierDefault Tier = "default"
	TierAlt1    Tier = "1"
	TierAlt2    Tier = "2"
	TierAlt3    Tier = "3"

	// aliases of mq and hq
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

type tierSpec struct {
	suffix string
	size   string
}

var tiers = map[Tier]tierSpec{
	TierMaxRes:  {"maxresdefault", "1280x720"},
	TierSD:      {"sddefault", "640x480"},
	TierHQ:      {"hqdefault", "480x360"},
	TierMQ:      {"mqdefault", "320x180"},
	TierDefault: {"default", "120x90"},
	TierAlt1:    {"1", "120x90"},
	TierAlt2:    {"2", "120x90"},
	TierAlt3:    {"3", "120x90"},
}

var aliases = map[Tier]Tier{
	TierMedium: TierMQ,
	TierHigh:   TierHQ,
}

var order = []Tier{TierMaxRes, TierSD, TierHQ, TierMQ, TierDefault, TierAlt1, TierAlt2, TierAlt3}

// Tiers lists every tier in descending resolution, alternates last.
func Tiers() []Tier {
	out := make([]Tier, len(order))
	copy(out, order)
	return out
}

// Size returns the nominal pixel size of t, resolving aliases.
func Size(t Tier) string {
	return tiers[canonical(t)].size
}

// Suffix returns the file name (without extension) YouTube uses for t.
func Suffix(t Tier) string {
	return tiers[canonical(t)].suffix
}

func canonical(t Tier) Tier {
	if a, ok := aliases[t]; ok {
		return a
	}
	return t
}

// Set holds the generated URLs of one video. The zero value is empty.
type Set struct {
	id   models.VideoID
	urls map[Tier]string
}

// Build formats every tier URL for id. Nothing is fetched, so a URL may
// point at an image YouTube never generated (maxresdefault is often missing).
func Build(id models.VideoID) Set {
	urls := make(map[Tier]string, len(tiers))
	for t, spec := range tiers {
		urls[t] = fmt.Sprintf("%s%s/%s.jpg", BaseURL, id, spec.suffix)
	}
	return Set{id: id, urls: urls}
}

func (s Set) VideoID() models.VideoID { return s.id }

// URL returns the URL for t. Aliases resolve to their canonical tier.
func (s Set) URL(t Tier) (string, bool) {
	u, ok := s.urls[canonical(t)]
	return u, ok
}

// MustURL is URL for tiers known to exist; unknown tiers yield "".
func (s Set) MustURL(t Tier) string {
	u, _ := s.URL(t)
	return u
}

// Map returns a copy of the set keyed by tier name, aliases included.
func (s Set) Map() map[string]string {
	out := make(map[string]string, len(s.urls)+len(aliases))
	for t, u := range s.urls {
		out[string(t)] = u
	}
	for a, t := range aliases {
		if u, ok := s.urls[t]; ok {
			out[string(a)] = u
		}
	}
	return out
}

// Images returns the set in tier order.
func (s Set) Images() []models.Image {
	if len(s.urls) == 0 {
		return nil
	}
	out := make([]models.Image, 0, len(order))
	for _, t := range order {
		out = append(out, models.Image{Tier: string(t), URL: s.urls[t], Size: tiers[t].size})
	}
	return out
}

// FallbackChain is the order in which a missing preview is replaced.
func (s Set) FallbackChain() []string {
	chain := []Tier{TierMaxRes, TierSD, TierHQ, TierMQ, TierDefault}
	out := make([]string, 0, len(chain))
	for _, t := range chain {
		out = append(out, s.urls[t])
	}
	return out
}
