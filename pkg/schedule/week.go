package schedule

import (
	"ttgrab/pkg/timetable"
)

// Entry is a record placed on one day of the week.
type Entry struct {
	Record timetable.Record
	Slot   Slot
}

// Week holds the planned classes per weekday.
type Week struct {
	days map[string][]Entry
}

// NewWeek returns an empty Monday to Friday plan.
func NewWeek() *Week {
	w := &Week{days: make(map[string][]Entry, len(Weekdays))}
	for _, d := range Weekdays {
		w.days[d] = nil
	}
	return w
}

// BuildWeek places every record into a new week.
func BuildWeek(records []timetable.Record) *Week {
	w := NewWeek()
	for _, r := range records {
		w.Add(r)
	}
	return w
}

// Add places every weekday slot of r and returns how many were placed.
// Slots on other days or that do not parse are ignored.
func (w *Week) Add(r timetable.Record) int {
	placed := 0
	for _, s := range ParseSlots(r.Time) {
		if _, ok := w.days[s.Day]; !ok {
			continue
		}
		w.days[s.Day] = append(w.days[s.Day], Entry{Record: r, Slot: s})
		placed++
	}
	return placed
}

// Day returns the entries planned on day in insertion order.
func (w *Week) Day(day string) []Entry {
	return w.days[day]
}

// Conflicts returns the planned entries that overlap r.
func (w *Week) Conflicts(r timetable.Record) []Entry {
	var clashes []Entry
	for _, s := range ParseSlots(r.Time) {
		for _, e := range w.days[s.Day] {
			if Overlap(e.Slot, s) {
				clashes = append(clashes, e)
			}
		}
	}
	return clashes
}

// Fits reports whether r has at least one slot and none of them clash
// with the plan.
func (w *Week) Fits(r timetable.Record) bool {
	if len(ParseSlots(r.Time)) == 0 {
		return false
	}
	return len(w.Conflicts(r)) == 0
}

// FindFitting returns the candidates that fit into w, in input order.
// The week itself is not changed.
func FindFitting(w *Week, candidates []timetable.Record) []timetable.Record {
	var fitting []timetable.Record
	for _, c := range candidates {
		if w.Fits(c) {
			fitting = append(fitting, c)
		}
	}
	return fitting
}
