// Package timetable turns extracted table rows into cleaned course records.
package timetable

import (
	"errors"
	"fmt"

	"ttgrab/pkg/dom"
)

var (
	// ErrNoRows means the page held no table rows at all.
	ErrNoRows = errors.New("no classes found")
	// ErrGapRow means an index below the matrix length has no row.
	ErrGapRow = errors.New("missing table row")
	// ErrMissingCell means a row is shorter than the layout requires.
	ErrMissingCell = errors.New("row has no cell at selected column")
)

// GapPolicy decides what projection does with absent row indices.
type GapPolicy int

const (
	// SkipGaps drops absent indices and keeps the remaining rows in order.
	SkipGaps GapPolicy = iota
	// FailOnGap stops at the first absent index.
	FailOnGap
)

// Project cleans every row of m with layout v.
func Project(m *dom.Matrix, v Variant, policy GapPolicy) ([]Record, error) {
	records := make([]Record, 0, m.Count())

	next := 0
	for _, row := range m.Rows() {
		if row.Index != next && policy == FailOnGap {
			return nil, fmt.Errorf("row %d: %w", next, ErrGapRow)
		}
		next = row.Index + 1

		rec, err := projectRow(row, v)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func projectRow(row dom.Row, v Variant) (Record, error) {
	text := func(col int) (string, error) {
		cell, ok := row.Cell(col)
		if !ok {
			return "", fmt.Errorf("row %d column %d: %w", row.Index, col, ErrMissingCell)
		}
		return cell.Text(), nil
	}

	var rec Record
	var err error

	if rec.Name, err = text(v.NameCol); err != nil {
		return Record{}, err
	}
	if rec.Section, err = text(v.SectionCol); err != nil {
		return Record{}, err
	}
	if rec.Teacher, err = text(v.TeacherCol); err != nil {
		return Record{}, err
	}

	raw, err := text(v.ScheduleCol)
	if err != nil {
		return Record{}, err
	}
	rec.Time = SplitSchedule(raw)
	if v.KeepRaw {
		rec.Raw = raw
	}

	if v.RoomCol >= 0 {
		if rec.Room, err = text(v.RoomCol); err != nil {
			return Record{}, err
		}
	}
	if v.CapacityCol >= 0 {
		if rec.Capacity, err = text(v.CapacityCol); err != nil {
			return Record{}, err
		}
	}

	return rec, nil
}
