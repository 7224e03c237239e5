package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRunText_ClipboardFailureIsNotFatal(t *testing.T) {
	page := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(page, []byte(`<html><body><p>Linear Algebra</p></body></html>`), 0o644); err != nil {
		t.Fatalf("failed to write page: %v", err)
	}

	var copied string
	orig := copyText
	copyText = func(text string) <-chan error {
		copied = text
		done := make(chan error, 1)
		done <- errors.New("no clipboard utility available")
		close(done)
		return done
	}
	defer func() { copyText = orig }()

	if err := runText(textCmd, []string{page}); err != nil {
		t.Fatalf("expected a failed copy to be ignored, got %v", err)
	}
	if copied == "" {
		t.Errorf("expected the page text to be handed to the clipboard")
	}
}
