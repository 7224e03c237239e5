// Package schedule works with the day-coded time segments of cleaned
// records: parsing them, snapping them to the half-hour grid, and
// checking a candidate class against an already planned week.
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Bounds of the planning grid, in minutes after midnight.
const (
	DayStart = 9 * 60
	DayEnd   = 20 * 60
)

// Weekdays are the planning columns.
var Weekdays = []string{"MON", "TUE", "WED", "THU", "FRI"}

var dayNumbers = map[string]time.Weekday{
	"SUN": time.Sunday,
	"MON": time.Monday,
	"TUE": time.Tuesday,
	"WED": time.Wednesday,
	"THU": time.Thursday,
	"FRI": time.Friday,
	"SAT": time.Saturday,
}

var slotPattern = regexp.MustCompile(`^[\s\x{00A0}]*([A-Z]+)[\s\x{00A0}]*:[\s\x{00A0}]*(\d{1,2}):(\d{2})[\s\x{00A0}]*-[\s\x{00A0}]*(\d{1,2}):(\d{2})`)

// Slot is one weekly meeting. Start and End are minutes after midnight.
type Slot struct {
	Day   string
	Start int
	End   int
}

// ParseSlot reads segments such as "MON : 09:20 - 11:20".
func ParseSlot(s string) (Slot, error) {
	m := slotPattern.FindStringSubmatch(s)
	if m == nil {
		return Slot{}, fmt.Errorf("not a time slot: %q", s)
	}

	clock := func(h, min string) int {
		hh, _ := strconv.Atoi(h)
		mm, _ := strconv.Atoi(min)
		return hh*60 + mm
	}

	return Slot{
		Day:   m[1],
		Start: clock(m[2], m[3]),
		End:   clock(m[4], m[5]),
	}, nil
}

// ParseSlots parses every segment it can and drops the rest.
func ParseSlots(segments []string) []Slot {
	var slots []Slot
	for _, seg := range segments {
		if s, err := ParseSlot(seg); err == nil {
			slots = append(slots, s)
		}
	}
	return slots
}

// Weekday maps a three letter day code to a time.Weekday.
func Weekday(day string) (time.Weekday, bool) {
	wd, ok := dayNumbers[day]
	return wd, ok
}

// String formats the slot the way the timetable page renders it.
func (s Slot) String() string {
	return fmt.Sprintf("%s : %s - %s", s.Day, FormatClock(s.Start), FormatClock(s.End))
}

// Duration is the length of the slot.
func (s Slot) Duration() time.Duration {
	return time.Duration(s.End-s.Start) * time.Minute
}

// FormatClock renders minutes after midnight as HH:MM.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// RoundDown snaps a start time down to the half hour, clamped into the grid.
func RoundDown(minutes int) int {
	h, m := minutes/60, minutes%60
	if m < 30 {
		m = 0
	} else {
		m = 30
	}

	if h < 9 {
		h, m = 9, 0
	} else if h >= 20 {
		h, m = 19, 30
	}
	return h*60 + m
}

// RoundUp snaps an end time up to the half hour, clamped into the grid.
func RoundUp(minutes int) int {
	h, m := minutes/60, minutes%60
	switch {
	case m == 0:
	case m <= 30:
		m = 30
	default:
		h, m = h+1, 0
	}

	if h < 9 {
		h, m = 9, 30
	} else if h > 20 || (h == 20 && m > 0) {
		h, m = 20, 0
	}
	return h*60 + m
}

// Normalize rounds s onto the grid. It reports false when the rounded
// slot is empty or falls outside DayStart..DayEnd.
func Normalize(s Slot) (Slot, bool) {
	out := Slot{Day: s.Day, Start: RoundDown(s.Start), End: RoundUp(s.End)}
	if out.Start < DayStart || out.End > DayEnd || out.Start >= out.End {
		return Slot{}, false
	}
	return out, true
}

// Overlap reports whether two slots on the same day share any time.
func Overlap(a, b Slot) bool {
	if a.Day != b.Day {
		return false
	}
	return !(a.End <= b.Start || b.End <= a.Start)
}
