// Package clipboard copies text to the system clipboard in the background.
package clipboard

import (
	"ttgrab/pkg/logger"

	"github.com/atotto/clipboard"
)

// writeAll is swapped out in tests.
var writeAll = clipboard.WriteAll

// CopyAsync starts copying text and returns immediately. The outcome is
// only logged; the returned channel yields it once for callers that must
// keep the process alive until the copy is done.
func CopyAsync(text string) <-chan error {
	done := make(chan error, 1)

	go func() {
		err := writeAll(text)
		if err != nil {
			logger.Error("failed to copy text", "error", err)
		} else {
			logger.Info("text copied to clipboard", "chars", len([]rune(text)))
		}
		done <- err
		close(done)
	}()

	return done
}
