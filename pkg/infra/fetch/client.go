package fetch

import (
	"context"
	"mime"
	"net/http"
	"time"

	"github.com/m-mizutani/dsfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/dsfetch/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type client struct {
	httpClient *http.Client
	userAgent  string
	authToken  string
}

// Option is a functional option for the fetch client
type Option func(*client)

// WithUserAgent sets the User-Agent header on every request
func WithUserAgent(ua string) Option {
	return func(c *client) {
		c.userAgent = ua
	}
}

// WithAuthToken sets a bearer token sent with every request, for
// authenticated dataset mirrors
func WithAuthToken(token string) Option {
	return func(c *client) {
		c.authToken = token
	}
}

// WithTimeout sets an overall request timeout. Zero keeps the transport
// default (no timeout).
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// New creates a streaming HTTP fetcher
func New(opts ...Option) interfaces.Fetcher {
	c := &client{
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues one streaming GET request. The caller owns the returned body
// and must close it. Transport failures are returned as-is, without retry.
func (c *client) Fetch(ctx context.Context, url string) (*model.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", url))
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch URL", goerr.V("url", url))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = resp.Body.Close()
		return nil, goerr.New("unexpected status code",
			goerr.V("url", url), goerr.V("status", resp.StatusCode))
	}

	return &model.FetchResult{
		Body:              resp.Body,
		ContentLength:     resp.ContentLength,
		SuggestedFilename: filenameFromHeader(resp.Header.Get("Content-Disposition")),
	}, nil
}

// filenameFromHeader extracts the filename parameter from a
// Content-Disposition header value, empty when absent or unparseable.
func filenameFromHeader(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
