// Package fetcher loads the timetable page HTML, either with a plain
// HTTP request or by rendering it in a headless browser.
package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ttgrab/pkg/logger"

	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// DefaultWaitSelector is present once the course table has rendered.
const DefaultWaitSelector = `[id*="moduleTable-"]`

// Options configures both fetchers.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Cookie    string // Session cookie copied from a logged-in browser

	// Browser only
	WaitSelector string
	Headful      bool // Show the window so the user can log in first
}

// DefaultOptions returns the settings used when flags are not given.
func DefaultOptions() Options {
	return Options{
		Timeout:      30 * time.Second,
		UserAgent:    defaultUserAgent,
		WaitSelector: DefaultWaitSelector,
	}
}

// Fetcher returns the HTML of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	Close() error
}

// New returns a browser fetcher when render is set and a plain HTTP
// fetcher otherwise.
func New(opts Options, render bool) (Fetcher, error) {
	if render {
		return NewBrowser(opts)
	}
	return NewClient(opts), nil
}

// Client fetches pages over plain HTTP.
type Client struct {
	http *resty.Client
}

// NewClient creates a plain HTTP fetcher.
func NewClient(opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultOptions().Timeout
	}

	c := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")
	if opts.Cookie != "" {
		c.SetHeader("Cookie", opts.Cookie)
	}

	return &Client{http: c}
}

// Fetch downloads the page at url.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	logger.Debug("fetching page", "url", url)

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d when fetching %s", res.StatusCode(), url)
	}

	return res.String(), nil
}

// Close is a no-op for plain HTTP.
func (c *Client) Close() error {
	return nil
}
