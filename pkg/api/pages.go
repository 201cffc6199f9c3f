package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/imbecility/yt-thumbs/pkg/gateway"
	"github.com/imbecility/yt-thumbs/pkg/i18n"
	"github.com/imbecility/yt-thumbs/pkg/models"
)

type navItem struct {
	Href   string
	Label  string
	Active bool
}

type langItem struct {
	i18n.Language
	Href   string
	Active bool
}

type pageData struct {
	T            i18n.Translator
	Lang         string
	Page         string
	Heading      string
	Description  string
	ResultsTitle string
	Nav          []navItem
	Languages    []langItem
	URL          string
	Error        string
	Result       *models.Lookup
	StrideMs     int64
}

var pageSuffix = map[models.Page]string{
	models.PageThumbnail:  "",
	models.PageProfilePic: "/profile-pic",
	models.PageBanner:     "/banner",
}

func (s *Server) handlePage(page models.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := r.PathValue("lang")
		if !s.Bundle.Supported(lang) {
			http.NotFound(w, r)
			return
		}
		tr := s.Bundle.For(lang)
		raw := r.URL.Query().Get("url")

		data := pageData{
			T:         tr,
			Lang:      lang,
			Page:      string(page),
			URL:       raw,
			Nav:       s.nav(lang, page),
			Languages: s.languages(lang, page, raw),
			StrideMs:  s.Stride.Milliseconds(),
		}

		switch page {
		case models.PageProfilePic:
			data.Heading, data.Description, data.ResultsTitle = tr.T("profile.title"), tr.T("profile.description"), tr.T("profile.resultsTitle")
		case models.PageBanner:
			data.Heading, data.Description, data.ResultsTitle = tr.T("banner.title"), tr.T("banner.description"), tr.T("banner.resultsTitle")
		default:
			data.Heading, data.Description, data.ResultsTitle = tr.T("title"), tr.T("description"), tr.T("results.title")
		}

		if raw != "" {
			res, err := s.Gateway.Lookup(r.Context(), raw, page)
			if err != nil {
				slog.Info("Lookup rejected", "url", raw, "err", err, "remote", r.RemoteAddr)
				data.Error = tr.T(gateway.MessageKey(err))
			} else {
				data.Result = res
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.tmpl.Execute(w, data); err != nil {
			slog.Error("Template execution failed", "error", err, "remote", r.RemoteAddr)
		}
	}
}

func (s *Server) nav(lang string, current models.Page) []navItem {
	tr := s.Bundle.For(lang)
	return []navItem{
		{Href: "/" + lang, Label: tr.T("nav.thumbnailDownloader"), Active: current == models.PageThumbnail},
		{Href: "/" + lang + "/profile-pic", Label: tr.T("nav.profilePicDownloader"), Active: current == models.PageProfilePic},
		{Href: "/" + lang + "/banner", Label: tr.T("nav.bannerDownloader"), Active: current == models.PageBanner},
	}
}

// languages links every language to the same tool, keeping the submitted URL.
func (s *Server) languages(current string, page models.Page, raw string) []langItem {
	query := ""
	if raw != "" {
		query = "?" + url.Values{"url": {raw}}.Encode()
	}
	var out []langItem
	for _, l := range s.Bundle.Languages() {
		out = append(out, langItem{
			Language: l,
			Href:     "/" + l.Code + pageSuffix[page] + query,
			Active:   l.Code == current,
		})
	}
	return out
}
