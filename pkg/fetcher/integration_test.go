package fetcher

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

// TestFetcherIntegration_Portal actually connects to a timetable portal.
// Set TTGRAB_TEST_URL (and TTGRAB_TEST_COOKIE for pages behind a login) to run it.
// If this test fails, the portal changed its row ids or the session expired.
func TestFetcherIntegration_Portal(t *testing.T) {
	url := os.Getenv("TTGRAB_TEST_URL")
	if url == "" {
		t.Skip("TTGRAB_TEST_URL not set")
	}

	opts := DefaultOptions()
	opts.Cookie = os.Getenv("TTGRAB_TEST_COOKIE")
	opts.Timeout = time.Minute

	for _, render := range []bool{false, true} {
		if render && os.Getenv("TTGRAB_TEST_RENDER") == "" {
			continue
		}

		f, err := New(opts, render)
		if err != nil {
			t.Fatalf("failed to create fetcher (render=%v): %v", render, err)
		}

		html, err := f.Fetch(context.Background(), url)
		f.Close()
		if err != nil {
			t.Fatalf("failed to fetch portal page (render=%v): %v", render, err)
		}

		// A static fetch may only get the UI5 bootstrap, so only rendered pages must have rows
		if render && !strings.Contains(html, "moduleTable-") {
			t.Errorf("rendered page has no course table rows")
		}
	}
}
