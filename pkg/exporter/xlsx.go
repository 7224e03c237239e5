package exporter

import (
	"fmt"
	"io"
	"strings"

	"ttgrab/pkg/timetable"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Classes"

var xlsxHeader = []any{"Name", "Section", "Teacher", "Schedule", "Room", "Capacity"}

// WriteXLSX writes records to a single-sheet workbook. Schedule segments
// share one cell, one per line.
func WriteXLSX(w io.Writer, records []timetable.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := xlsxHeader
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.Name, r.Section, r.Teacher, strings.Join(r.Time, "\n"), r.Room, r.Capacity}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

// headerAliases maps accepted column titles to record fields.
var headerAliases = map[string]string{
	"name":        "name",
	"course code": "name",
	"section":     "section",
	"teacher":     "teacher",
	"instructor":  "teacher",
	"schedule":    "schedule",
	"time":        "schedule",
	"room":        "room",
	"location":    "room",
	"capacity":    "capacity",
	"quota":       "capacity",
}

// ReadXLSX loads records from the named sheet, or the first sheet when
// sheet is empty. Columns are matched by their header titles.
func ReadXLSX(r io.Reader, sheet string) ([]timetable.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return []timetable.Record{}, nil
	}

	columns := make(map[string]int)
	for i, title := range rows[0] {
		if field, ok := headerAliases[strings.ToLower(strings.TrimSpace(title))]; ok {
			if _, seen := columns[field]; !seen {
				columns[field] = i
			}
		}
	}

	records := make([]timetable.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		get := func(field string) string {
			i, ok := columns[field]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		records = append(records, timetable.Record{
			Name:     get("name"),
			Section:  get("section"),
			Teacher:  get("teacher"),
			Time:     timetable.SplitSchedule(get("schedule")),
			Room:     get("room"),
			Capacity: get("capacity"),
		})
	}

	return records, nil
}
