// Package network provides pre-configured HTTP clients for upstream API communication.
package network

import (
	"net/http"
	"time"

	"github.com/anisan-cli/anibot/constant"
)

// Client is the HTTP client shared across the application. Each bot interaction
// may issue several paged requests at once, so the pool is sized generously.
var Client = New(time.Minute)

// New returns a client with the tuned transport and the given request timeout.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{base: newTransport()},
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// userAgentTransport stamps the application User-Agent on requests that do not set one.
type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", constant.UserAgent)
	}
	return t.base.RoundTrip(req)
}
