// Package mal provides a client for the MyAnimeList REST API.
package mal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/anisan-cli/anibot/key"
	"github.com/anisan-cli/anibot/log"
	"github.com/anisan-cli/anibot/network"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// DefaultEndpoint is the public v2 API root.
const DefaultEndpoint = "https://api.myanimelist.net/v2"

// Client issues read requests authenticated by an application client ID.
// Every method folds transport failures, non-200 responses and undecodable bodies into mo.None.
type Client struct {
	http     *http.Client
	endpoint string
	clientID string
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint points the client at another API root, such as a test server.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimSuffix(endpoint, "/")
	}
}

// WithHTTPClient replaces the shared network client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// New returns a client sending clientID as X-MAL-Client-ID.
func New(clientID string, options ...Option) *Client {
	c := &Client{
		http:     network.Client,
		endpoint: DefaultEndpoint,
		clientID: clientID,
	}
	for _, o := range options {
		o(c)
	}
	return c
}

// NewFromConfig returns a client using the configured endpoint and timeout.
func NewFromConfig(clientID string) *Client {
	return New(
		clientID,
		WithEndpoint(viper.GetString(key.MALEndpoint)),
		WithHTTPClient(network.New(time.Duration(viper.GetInt(key.MALTimeout))*time.Second)),
	)
}

// get performs a single GET and decodes the body into T.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) mo.Option[T] {
	logger := log.WithFields(log.Fields{"path": path})

	u, err := url.Parse(c.endpoint + path)
	if err != nil {
		logger.Errorf("mal: parse url: %v", err)
		return mo.None[T]()
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		logger.Errorf("mal: create request: %v", err)
		return mo.None[T]()
	}
	req.Header.Set("X-MAL-Client-ID", c.clientID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warnf("mal: request: %v", err)
		return mo.None[T]()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warnf("mal: unexpected status %d", resp.StatusCode)
		return mo.None[T]()
	}

	var payload T
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Warnf("mal: decode: %v", err)
		return mo.None[T]()
	}

	logger.Debug("mal: ok")
	return mo.Some(payload)
}
