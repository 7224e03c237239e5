package exporter

import (
	"fmt"
	"io"
	"time"

	"ttgrab/pkg/dom"
	"ttgrab/pkg/schedule"
	"ttgrab/pkg/timetable"

	ics "github.com/arran4/golang-ical"
)

// CalendarOptions places weekly slots on real dates.
type CalendarOptions struct {
	TermStart time.Time      // First day of teaching
	Weeks     int            // Number of weekly repetitions
	Location  *time.Location // Timezone the page's clock times are in
}

// GenerateICS writes one weekly recurring event per time slot of every
// record to w. Segments that are not parseable time slots are skipped.
func GenerateICS(records []timetable.Record, w io.Writer, opts CalendarOptions) error {
	if opts.Weeks <= 0 {
		return fmt.Errorf("weeks must be positive, got %d", opts.Weeks)
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	termStart := time.Date(opts.TermStart.Year(), opts.TermStart.Month(), opts.TermStart.Day(), 0, 0, 0, 0, loc)
	now := time.Now()

	for i, r := range records {
		for j, slot := range schedule.ParseSlots(r.Time) {
			wd, ok := schedule.Weekday(slot.Day)
			if !ok {
				continue
			}

			// First occurrence of this weekday on or after the term start.
			offset := (int(wd) - int(termStart.Weekday()) + 7) % 7
			day := termStart.AddDate(0, 0, offset)

			startTime := time.Date(day.Year(), day.Month(), day.Day(), slot.Start/60, slot.Start%60, 0, 0, loc)
			endTime := time.Date(day.Year(), day.Month(), day.Day(), slot.End/60, slot.End%60, 0, 0, loc)

			event := cal.AddEvent(fmt.Sprintf("%s-%d-%d", startTime.UTC().Format("20060102T150405Z"), i, j))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(startTime)
			event.SetEndAt(endTime)
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", opts.Weeks))

			summary := r.Name
			if r.Section != "" {
				summary = fmt.Sprintf("%s %s", r.Name, r.Section)
			}
			event.SetSummary(summary)

			if r.Room != "" && r.Room != dom.NullSentinel {
				event.SetLocation(r.Room)
			}
			if r.Teacher != "" && r.Teacher != dom.NullSentinel {
				event.SetDescription(fmt.Sprintf("Teacher: %s", r.Teacher))
			}
		}
	}

	return cal.SerializeTo(w)
}
