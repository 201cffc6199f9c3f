package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imbecility/yt-thumbs/pkg/downloader"
	"github.com/imbecility/yt-thumbs/pkg/gateway"
	"github.com/imbecility/yt-thumbs/pkg/i18n"
	"github.com/imbecility/yt-thumbs/pkg/models"
)

type stubCDN struct{}

func (stubCDN) Do(req *http.Request) (*http.Response, error) {
	status := http.StatusOK
	if strings.HasSuffix(req.URL.Path, "/maxresdefault.jpg") {
		status = http.StatusNotFound
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"image/jpeg"}},
		Body:       io.NopCloser(strings.NewReader("jpegdata")),
		Request:    req,
	}, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gw := gateway.NewService(&downloader.Downloader{Client: stubCDN{}}, false, 0)
	s := NewServer(0, gw, i18n.MustLoad())
	srv := httptest.NewServer(s.Handler(true))
	t.Cleanup(srv.Close)
	return srv
}

func noRedirect(srv *httptest.Server) *http.Client {
	c := srv.Client()
	c.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
	return c
}

func postJSON(t *testing.T, srv *httptest.Server, body string, header http.Header) models.APIResponse {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/thumbnails", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out models.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRootRedirectsByAcceptLanguage(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
	resp, err := noRedirect(srv).Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/de", resp.Header.Get("Location"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestAPIThumbnails(t *testing.T) {
	srv := newTestServer(t)

	out := postJSON(t, srv, `{"url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`, nil)
	require.True(t, out.Success, out.Error)
	assert.Equal(t, "dQw4w9WgXcQ", out.VideoID)
	assert.Equal(t, "thumbnail", out.Page)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", out.Main)
	assert.Len(t, out.Downloads, 4)

	out = postJSON(t, srv, `{"url":"https://youtu.be/dQw4w9WgXcQ?t=30","page":"profile-pic"}`, nil)
	require.True(t, out.Success)
	assert.Equal(t, "youtube-profile-pic-4", out.Downloads[3].Filename)
}

func TestAPIThumbnails_LocalizedErrors(t *testing.T) {
	srv := newTestServer(t)

	out := postJSON(t, srv, `{"url":"not a url","lang":"es"}`, nil)
	assert.False(t, out.Success)
	assert.Equal(t, "Por favor, ingresa una URL válida de YouTube", out.Error)

	out = postJSON(t, srv, `{"url":"https://youtu.be/short"}`, http.Header{"Accept-Language": {"fr"}})
	assert.False(t, out.Success)
	assert.Equal(t, "Impossible d'extraire l'ID de la vidéo à partir de l'URL fournie", out.Error)

	out = postJSON(t, srv, `{"url":"https://youtu.be/dQw4w9WgXcQ","page":"poster"}`, nil)
	assert.False(t, out.Success)
}

func TestAPIThumbnails_BadJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Post(srv.URL+"/api/thumbnails", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = srv.Client().Get(srv.URL + "/api/thumbnails")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestImageProxy(t *testing.T) {
	srv := newTestServer(t)

	q := url.Values{"src": {"https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}, "name": {"youtube-thumbnail-hq"}}
	resp, err := srv.Client().Get(srv.URL + "/api/image?" + q.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "jpegdata", string(body))
	assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="youtube-thumbnail-hq.jpg"`, resp.Header.Get("Content-Disposition"))
}

func TestImageProxy_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		src    string
		file   string
		status int
	}{
		{"foreign host", "https://example.com/vi/dQw4w9WgXcQ/hqdefault.jpg", "a", http.StatusBadRequest},
		{"bad name", "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", "a/b", http.StatusBadRequest},
		{"missing upstream", "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", "a", http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := url.Values{"src": {tt.src}, "name": {tt.file}}
			resp, err := srv.Client().Get(srv.URL + "/api/image?" + q.Encode())
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func getPage(t *testing.T, srv *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestPages(t *testing.T) {
	srv := newTestServer(t)

	status, body := getPage(t, srv, "/en")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Thumbnail Downloader")
	assert.Contains(t, body, `href="/en/profile-pic"`)
	assert.NotContains(t, body, "Available Thumbnails")

	status, body = getPage(t, srv, "/pt/banner")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Baixador de Banners")

	status, _ = getPage(t, srv, "/it")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPages_Results(t *testing.T) {
	srv := newTestServer(t)
	q := url.Values{"url": {"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}}.Encode()

	_, body := getPage(t, srv, "/en?"+q)
	assert.Contains(t, body, "Available Thumbnails")
	assert.Contains(t, body, "Video ID: dQw4w9WgXcQ")
	assert.Contains(t, body, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg")
	assert.Contains(t, body, `download="youtube-thumbnail-maxres.jpg"`)
	assert.Contains(t, body, `download="youtube-cover-1280x720.jpg"`)
	// the language switch keeps the submitted url
	assert.Contains(t, body, `href="/fr?url=`)

	_, body = getPage(t, srv, "/es/profile-pic?"+q)
	assert.Contains(t, body, `download="youtube-profile-pic-1.jpg"`)
	assert.Contains(t, body, "Descargar Todo")
	assert.Contains(t, body, "setTimeout")
}

func TestPages_Error(t *testing.T) {
	srv := newTestServer(t)

	_, body := getPage(t, srv, "/de?url=not+a+url")
	assert.Contains(t, body, "Bitte geben Sie eine gültige YouTube-URL ein")
	assert.NotContains(t, body, "Verfügbare Thumbnails")
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	status, body := getPage(t, srv, "/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestHandler_WithoutWeb(t *testing.T) {
	gw := gateway.NewService(&downloader.Downloader{Client: stubCDN{}}, false, 0)
	srv := httptest.NewServer(NewServer(0, gw, i18n.MustLoad()).Handler(false))
	defer srv.Close()

	status, _ := getPage(t, srv, "/en")
	assert.Equal(t, http.StatusNotFound, status)
}
