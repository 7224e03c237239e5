package schedule

import (
	"strings"

	"ttgrab/pkg/dom"
	"ttgrab/pkg/timetable"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

// RenderGrid draws the week as half-hour rows from DayStart to DayEnd.
// Slots are snapped to the grid first; a class is labelled in the row
// it starts in and marked in the rows it continues through.
func RenderGrid(w *Week) string {
	t := newTable()

	header := table.Row{"Time"}
	for _, d := range Weekdays {
		header = append(header, d)
	}
	t.AppendHeader(header)

	for minute := DayStart; minute < DayEnd; minute += 30 {
		row := table.Row{FormatClock(minute)}
		for _, d := range Weekdays {
			row = append(row, gridCell(w.Day(d), minute))
		}
		t.AppendRow(row)
		t.AppendSeparator()
	}

	return t.Render()
}

func gridCell(entries []Entry, minute int) string {
	var parts []string
	for _, e := range entries {
		s, ok := Normalize(e.Slot)
		if !ok || minute < s.Start || minute >= s.End {
			continue
		}

		if minute != s.Start {
			parts = append(parts, "· "+e.Record.Name)
			continue
		}

		label := []string{e.Record.Name}
		if e.Record.Section != "" {
			label = append(label, e.Record.Section)
		}
		if room := e.Record.Room; room != "" && room != dom.NullSentinel {
			label = append(label, room)
		}
		parts = append(parts, strings.Join(label, "\n"))
	}
	return strings.Join(parts, "\n")
}

// RenderAgenda lists each weekday's classes with their unrounded times.
func RenderAgenda(w *Week) string {
	t := newTable()
	t.AppendHeader(table.Row{"Day", "Class", "Room", "Time"})

	for _, d := range Weekdays {
		entries := w.Day(d)
		if len(entries) == 0 {
			t.AppendRow(table.Row{d, "No classes", "", ""})
			continue
		}
		for _, e := range entries {
			class := e.Record.Name
			if e.Record.Section != "" {
				class += " - " + e.Record.Section
			}
			t.AppendRow(table.Row{
				d,
				class,
				e.Record.Room,
				FormatClock(e.Slot.Start) + " - " + FormatClock(e.Slot.End),
			})
		}
	}

	return t.Render()
}

// RenderList tabulates records with their schedule segments.
func RenderList(records []timetable.Record) string {
	t := newTable()
	t.AppendHeader(table.Row{"#", "Class", "Section", "Teacher", "Time"})
	for i, r := range records {
		t.AppendRow(table.Row{i + 1, r.Name, r.Section, r.Teacher, strings.Join(r.Time, "\n")})
	}
	return t.Render()
}
