// Package dom works on a parsed timetable page the way the console
// helpers worked on the live document: filling empty text spans,
// locating table rows by their generated ids, and reading page text.
package dom

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NullSentinel replaces the content of empty text spans.
const NullSentinel = "NULL"

// Attributes the UI framework mirrors generated control ids into.
const (
	AttrID     = "id"
	AttrSAPUI  = "data-sap-ui"
	textPrefix = "__text"
)

// Parse reads an HTML document.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// Open parses the HTML file at path, or stdin when path is "-".
func Open(path string) (*goquery.Document, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// FillEmptySpans sets the text of every span whose attr starts with
// "__text<n>-" for n in [from, to) to NullSentinel when its trimmed text
// is empty. It returns how many spans were filled.
func FillEmptySpans(doc *goquery.Document, attr string, from, to int) int {
	if attr == "" {
		attr = AttrID
	}

	filled := 0
	for n := from; n < to; n++ {
		selector := fmt.Sprintf(`span[%s^="%s%d-"]`, attr, textPrefix, n)
		doc.Find(selector).Each(func(_ int, span *goquery.Selection) {
			if strings.TrimSpace(span.Text()) == "" {
				span.SetText(NullSentinel)
				filled++
			}
		})
	}

	return filled
}

// PageText returns the visible text of the body, one non-empty line per
// line. The document is not modified.
func PageText(doc *goquery.Document) string {
	body := doc.Find("body").Clone()
	body.Find("script, style, noscript, template").Remove()

	var lines []string
	for _, line := range strings.Split(body.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}
