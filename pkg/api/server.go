package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/imbecility/yt-thumbs/pkg/downloader"
	"github.com/imbecility/yt-thumbs/pkg/gateway"
	"github.com/imbecility/yt-thumbs/pkg/i18n"
	"github.com/imbecility/yt-thumbs/pkg/models"
)

type Server struct {
	Port    int
	Gateway *gateway.Service
	Bundle  *i18n.Bundle
	// Stride spaces the clicks of the page's "download all" button.
	Stride time.Duration
	tmpl   *template.Template
}

func NewServer(port int, gw *gateway.Service, bundle *i18n.Bundle) *Server {
	stride := downloader.DefaultStride
	if gw.Downloader != nil && gw.Downloader.Stride > 0 {
		stride = gw.Downloader.Stride
	}
	return &Server{
		Port:    port,
		Gateway: gw,
		Bundle:  bundle,
		Stride:  stride,
		tmpl:    template.Must(template.New("page").Funcs(funcs).Parse(tmpl)),
	}
}

var funcs = template.FuncMap{
	"imageHref": func(src, name string) string {
		return "/api/image?" + url.Values{"src": {src}, "name": {name}}.Encode()
	},
}

func (s *Server) Handler(enableWeb bool) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/thumbnails", s.handleAPIThumbnails)
	mux.HandleFunc("GET /api/image", s.handleImage)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if enableWeb {
		mux.HandleFunc("GET /{$}", s.handleRoot)
		mux.HandleFunc("GET /{lang}", s.handlePage(models.PageThumbnail))
		mux.HandleFunc("GET /{lang}/profile-pic", s.handlePage(models.PageProfilePic))
		mux.HandleFunc("GET /{lang}/banner", s.handlePage(models.PageBanner))
	}
	return withRequestID(mux)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, enableWeb bool) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Port),
		Handler:           s.Handler(enableWeb),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", fmt.Sprintf("http://localhost:%d", s.Port), "web_ui", enableWeb)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		slog.Debug("Request", "id", id, "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	lang := s.Bundle.Match(r.Header.Get("Accept-Language"))
	http.Redirect(w, r, "/"+lang, http.StatusFound)
}

func (s *Server) handleAPIThumbnails(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL  string `json:"url"`
		Page string `json:"page"`
		Lang string `json:"lang"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lang := req.Lang
	if !s.Bundle.Supported(lang) {
		lang = s.Bundle.Match(r.Header.Get("Accept-Language"))
	}

	page, ok := models.ParsePage(req.Page)
	if !ok {
		s.respondJSON(w, http.StatusBadRequest, models.APIResponse{Success: false, Error: "unknown page " + req.Page})
		return
	}

	res, err := s.Gateway.Lookup(r.Context(), req.URL, page)
	if err != nil {
		slog.Info("Lookup rejected", "url", req.URL, "err", err, "remote", r.RemoteAddr)
		s.respondJSON(w, http.StatusOK, models.APIResponse{
			Success: false,
			Error:   s.Bundle.Text(lang, gateway.MessageKey(err)),
		})
		return
	}

	slog.Info("API request served", "vid", res.VideoID, "page", page, "remote", r.RemoteAddr)

	s.respondJSON(w, http.StatusOK, models.APIResponse{
		Success:    true,
		VideoID:    string(res.VideoID),
		Page:       string(res.Page),
		Main:       res.Main,
		Thumbnails: res.Images,
		Downloads:  res.Downloads,
		Extras:     res.Extras,
	})
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lang := s.Bundle.Match(r.Header.Get("Accept-Language"))

	img, err := s.Gateway.Image(r.Context(), q.Get("src"), q.Get("name"))
	if err != nil {
		msg := s.Bundle.Text(lang, gateway.MessageKey(err))
		var dErr *downloader.DownloadError
		if errors.As(err, &dErr) {
			slog.Error("Image download failed", "src", q.Get("src"), "err", err)
			http.Error(w, msg, http.StatusBadGateway)
			return
		}
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	slog.Info("Serving image", "file", img.Filename, "bytes", len(img.Data), "remote", r.RemoteAddr)

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", img.Filename))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	http.ServeContent(w, r, img.Filename, time.Time{}, bytes.NewReader(img.Data))
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	jerr := json.NewEncoder(w).Encode(data)
	if jerr != nil {
		slog.Error("JSON encoding failed", "error", jerr)
	}
}
