package fetcher

import (
	"context"
	"fmt"

	"ttgrab/pkg/logger"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// Browser renders pages in Chrome before reading their HTML, which the
// timetable page needs because its table is built by script.
type Browser struct {
	opts        Options
	allocCtx    context.Context
	cancelAlloc context.CancelFunc
}

// NewBrowser prepares a Chrome allocator. Chrome itself starts on the
// first Fetch.
func NewBrowser(opts Options) (*Browser, error) {
	defaults := DefaultOptions()
	if opts.UserAgent == "" {
		opts.UserAgent = defaults.UserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaults.Timeout
	}
	if opts.WaitSelector == "" {
		opts.WaitSelector = defaults.WaitSelector
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", !opts.Headful),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(opts.UserAgent),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)

	logger.Debug("browser allocator created", "headful", opts.Headful, "wait_selector", opts.WaitSelector)

	return &Browser{opts: opts, allocCtx: allocCtx, cancelAlloc: cancel}, nil
}

// Fetch navigates to url, waits for the course table and returns the
// rendered document.
func (b *Browser) Fetch(ctx context.Context, url string) (string, error) {
	browserCtx, cancelBrowser := chromedp.NewContext(b.allocCtx)
	defer cancelBrowser()

	// Follow the caller's cancellation too.
	stop := context.AfterFunc(ctx, cancelBrowser)
	defer stop()

	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, b.opts.Timeout)
	defer cancelTimeout()

	log := logger.With("url", url)

	var html string
	var actions []chromedp.Action
	if b.opts.Cookie != "" {
		actions = append(actions,
			network.Enable(),
			network.SetExtraHTTPHeaders(network.Headers{"Cookie": b.opts.Cookie}),
		)
	}
	actions = append(actions,
		chromedp.Navigate(url),
		chromedp.WaitReady(b.opts.WaitSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)

	log.Debug("rendering page", "timeout", b.opts.Timeout, "cookie", b.opts.Cookie != "")
	if err := chromedp.Run(timeoutCtx, actions...); err != nil {
		return "", fmt.Errorf("browser automation failed: %w", err)
	}
	log.Debug("page rendered", "html_size", len(html))

	return html, nil
}

// Close shuts the browser down.
func (b *Browser) Close() error {
	if b.cancelAlloc != nil {
		b.cancelAlloc()
	}
	return nil
}
