package thumbnail

import (
	"fmt"

	"github.com/imbecility/yt-thumbs/pkg/models"
)

// View is the part of a Set a page shows and offers for download.
type View struct {
	Main      string
	Images    []models.Image
	Downloads []models.DownloadItem
	Extras    []models.DownloadItem
}

type viewEntry struct {
	tier     Tier
	labelKey string
	name     string
}

var thumbnailEntries = []viewEntry{
	{TierMaxRes, "thumbnails.maxres", "maxres"},
	{TierHQ, "thumbnails.hq", "hq"},
	{TierMQ, "thumbnails.mq", "mq"},
	{TierSD, "thumbnails.sd", "sd"},
}

var bannerEntries = []viewEntry{
	{TierMaxRes, "banner.maxRes", ""},
	{TierHQ, "banner.highQuality", ""},
	{TierMQ, "banner.mediumQuality", ""},
	{TierSD, "banner.standardQuality", ""},
}

var profileTiers = []Tier{TierDefault, TierAlt1, TierAlt2, TierAlt3}

// ViewFor selects the images of s for page. Unknown pages get the thumbnail view.
func ViewFor(page models.Page, s Set) View {
	switch page {
	case models.PageProfilePic:
		return profileView(s)
	case models.PageBanner:
		return bannerView(s)
	default:
		return thumbnailView(s)
	}
}

func thumbnailView(s Set) View {
	v := View{Main: s.MustURL(TierMaxRes)}
	for _, e := range thumbnailEntries {
		u := s.MustURL(e.tier)
		v.Images = append(v.Images, models.Image{Tier: string(e.tier), URL: u, Size: Size(e.tier), Label: e.labelKey})
		v.Downloads = append(v.Downloads, models.DownloadItem{
			URL:      u,
			Filename: "youtube-thumbnail-" + e.name,
			Size:     Size(e.tier),
		})
	}
	v.Extras = []models.DownloadItem{
		{URL: s.MustURL(TierDefault), Filename: "youtube-profile-120x120", Size: "120x120", LabelKey: "additionalTypes.profile"},
		{URL: s.MustURL(TierMaxRes), Filename: "youtube-cover-1280x720", Size: "1280x720", LabelKey: "additionalTypes.cover"},
	}
	return v
}

func profileView(s Set) View {
	v := View{Main: s.MustURL(TierDefault)}
	for i, t := range profileTiers {
		u := s.MustURL(t)
		v.Images = append(v.Images, models.Image{Tier: string(t), URL: u, Size: Size(t)})
		v.Downloads = append(v.Downloads, models.DownloadItem{
			URL:      u,
			Filename: fmt.Sprintf("youtube-profile-pic-%d", i+1),
			Size:     Size(t),
		})
	}
	return v
}

func bannerView(s Set) View {
	v := View{Main: s.MustURL(TierMaxRes)}
	for _, e := range bannerEntries {
		u := s.MustURL(e.tier)
		v.Images = append(v.Images, models.Image{Tier: string(e.tier), URL: u, Size: Size(e.tier), Label: e.labelKey})
		v.Downloads = append(v.Downloads, models.DownloadItem{
			URL:      u,
			Filename: "youtube-banner-" + Size(e.tier),
			Size:     Size(e.tier),
			LabelKey: e.labelKey,
		})
	}
	return v
}
