package timetable

import (
	"regexp"
	"strings"
)

var (
	dayTokenPattern     = regexp.MustCompile(`[\s\x{00A0}]*([A-Z]{3})[\s\x{00A0}]*:[\s\x{00A0}]*`)
	trailingDashPattern = regexp.MustCompile(`[\s\x{00A0}]*-[\s\x{00A0}]*$`)
)

// SplitSchedule breaks rendered schedule text into day-coded segments.
// Each segment runs from one "DAY:" token to the next, trimmed and
// without the " - " separator that joined it to its successor.
func SplitSchedule(input string) []string {
	matches := dayTokenPattern.FindAllStringIndex(input, -1)

	segments := make([]string, 0, len(matches))
	for i, m := range matches {
		end := len(input)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		entry := strings.TrimSpace(input[m[0]:end])
		entry = trailingDashPattern.ReplaceAllString(entry, "")
		segments = append(segments, entry)
	}

	return segments
}
