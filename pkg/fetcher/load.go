package fetcher

import (
	"context"
	"strings"

	"ttgrab/pkg/dom"

	"github.com/PuerkitoBio/goquery"
)

// IsURL reports whether source should be fetched rather than opened.
func IsURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Load parses the page at source. URLs are fetched, with a browser when
// render is set; anything else is a file path or "-" for stdin.
func Load(ctx context.Context, source string, opts Options, render bool) (*goquery.Document, error) {
	if !IsURL(source) {
		return dom.Open(source)
	}

	f, err := New(opts, render)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	html, err := f.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	return dom.Parse(strings.NewReader(html))
}
