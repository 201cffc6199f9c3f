package client

import (
	"fmt"
	"net/http"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// HTTPClient is satisfied by *http.Client and by the browser-profile client below.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Options struct {
	// TimeoutSec bounds a whole request including the body (defaults to 30).
	TimeoutSec int
	// Debug makes tls-client log through its debug logger.
	Debug bool
}

type tlsWrapper struct {
	innerClient tls_client.HttpClient
}

// Do bridges a net/http request to fhttp so callers never import the fork.
func (w *tlsWrapper) Do(req *http.Request) (*http.Response, error) {
	fReq := &fhttp.Request{
		Method:        req.Method,
		URL:           req.URL,
		Proto:         req.Proto,
		ProtoMajor:    req.ProtoMajor,
		ProtoMinor:    req.ProtoMinor,
		Header:        make(fhttp.Header, len(req.Header)),
		Body:          req.Body,
		ContentLength: req.ContentLength,
		Host:          req.Host,
	}
	fReq = fReq.WithContext(req.Context())

	for k, v := range req.Header {
		fReq.Header[k] = v
	}
	if fReq.Header.Get("Accept") == "" {
		fReq.Header.Set("Accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8")
	}

	resp, err := w.innerClient.Do(fReq)
	if err != nil {
		return nil, err
	}

	netResp := &http.Response{
		Status:           resp.Status,
		StatusCode:       resp.StatusCode,
		Proto:            resp.Proto,
		ProtoMajor:       resp.ProtoMajor,
		ProtoMinor:       resp.ProtoMinor,
		ContentLength:    resp.ContentLength,
		Body:             resp.Body,
		Header:           make(http.Header, len(resp.Header)),
		Uncompressed:     resp.Uncompressed,
		TransferEncoding: resp.TransferEncoding,
		Request:          req,
	}

	for k, v := range resp.Header {
		netResp.Header[k] = v
	}

	return netResp, nil
}

// NewHttpClient returns a client presenting a regular browser TLS fingerprint.
func NewHttpClient(opts Options) (HTTPClient, error) {
	if opts.TimeoutSec <= 0 {
		opts.TimeoutSec = 30
	}

	var logger tls_client.Logger = tls_client.NewNoopLogger()
	if opts.Debug {
		logger = tls_client.NewDebugLogger(tls_client.NewLogger())
	}

	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(opts.TimeoutSec),
		tls_client.WithClientProfile(profiles.DefaultClientProfile),
		tls_client.WithRandomTLSExtensionOrder(),
	}

	c, err := tls_client.NewHttpClient(logger, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tls client: %w", err)
	}

	return &tlsWrapper{innerClient: c}, nil
}
