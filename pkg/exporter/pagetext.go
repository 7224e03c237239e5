package exporter

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"ttgrab/pkg/timetable"
)

// Blocks per class in a page text dump: course code, course name,
// section, full course name, instructor, schedule, location, capacity.
const pageTextBlocks = 8

var blankLinePattern = regexp.MustCompile(`\n[ \t\r\x{00A0}]*\n+`)

// ParsePageText reads the visible text of a class list, as copied by the
// text command, and rebuilds one record per group of eight blank-line
// separated blocks. A short final group leaves its missing fields empty.
func ParsePageText(r io.Reader) ([]timetable.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read page text: %w", err)
	}

	text := strings.TrimSpace(strings.ReplaceAll(string(data), "\r\n", "\n"))
	if text == "" {
		return []timetable.Record{}, nil
	}
	blocks := blankLinePattern.Split(text, -1)

	block := func(i int) string {
		if i < len(blocks) {
			return strings.TrimSpace(blocks[i])
		}
		return ""
	}

	records := make([]timetable.Record, 0, (len(blocks)+pageTextBlocks-1)/pageTextBlocks)
	for i := 0; i < len(blocks); i += pageTextBlocks {
		name := block(i + 2)
		if name == "" {
			name = block(i)
		}
		records = append(records, timetable.Record{
			Name:     name,
			Section:  block(i + 1),
			Teacher:  block(i + 4),
			Time:     timetable.SplitSchedule(block(i + 5)),
			Room:     block(i + 6),
			Capacity: block(i + 7),
		})
	}
	return records, nil
}
