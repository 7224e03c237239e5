// Package selection maintains the file of classes a student has picked.
package selection

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"ttgrab/pkg/exporter"
	"ttgrab/pkg/timetable"

	"github.com/antzucaro/matchr"
)

var (
	// ErrNotFound means no record carries the requested course code.
	ErrNotFound = errors.New("no such class exists")
	// ErrAlreadySelected means the class is already in the selection file.
	ErrAlreadySelected = errors.New("class already selected")
)

// NotFoundError carries the closest course codes for a failed lookup.
type NotFoundError struct {
	Code        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%s: %s", ErrNotFound, e.Code)
	}
	return fmt.Sprintf("%s: %s (did you mean %s?)", ErrNotFound, e.Code, strings.Join(e.Suggestions, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// matches reports whether r is the class identified by code. The course
// code sits in the name column of the page; section is accepted too.
func matches(r timetable.Record, code string) bool {
	code = strings.TrimSpace(code)
	return strings.EqualFold(strings.TrimSpace(r.Name), code) ||
		strings.EqualFold(strings.TrimSpace(r.Section), code)
}

// Find returns the first record identified by code.
func Find(records []timetable.Record, code string) (timetable.Record, bool) {
	for _, r := range records {
		if matches(r, code) {
			return r, true
		}
	}
	return timetable.Record{}, false
}

// Suggest returns up to n course codes most similar to code.
func Suggest(records []timetable.Record, code string, n int) []string {
	type scored struct {
		code  string
		score float64
	}

	seen := make(map[string]bool)
	var candidates []scored
	for _, r := range records {
		if r.Name == "" || seen[r.Name] {
			continue
		}
		seen[r.Name] = true

		score := matchr.JaroWinkler(strings.ToUpper(code), strings.ToUpper(r.Name), false)
		if score > 0.7 {
			candidates = append(candidates, scored{r.Name, score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var out []string
	for i := 0; i < len(candidates) && i < n; i++ {
		out = append(out, candidates[i].code)
	}
	return out
}

// Load reads the selection file. A missing file is an empty selection.
func Load(path string) ([]timetable.Record, error) {
	records, err := exporter.LoadRecords(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []timetable.Record{}, nil
		}
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}
	return records, nil
}

// Save writes the selection file in the tagged full layout.
func Save(path string, records []timetable.Record) error {
	return exporter.SaveFile(path, func(w io.Writer) error {
		return exporter.WriteJSON(w, records, timetable.Full, exporter.Tagged)
	})
}

// Add looks up code in the records file at dataPath and appends it to
// the selection file at selPath, returning the added record.
func Add(dataPath, code, selPath string) (timetable.Record, error) {
	data, err := exporter.LoadRecords(dataPath)
	if err != nil {
		return timetable.Record{}, fmt.Errorf("failed to read class data: %w", err)
	}

	rec, ok := Find(data, code)
	if !ok {
		return timetable.Record{}, &NotFoundError{Code: code, Suggestions: Suggest(data, code, 3)}
	}

	selected, err := Load(selPath)
	if err != nil {
		return timetable.Record{}, err
	}
	if _, dup := Find(selected, rec.Name); dup {
		return timetable.Record{}, fmt.Errorf("%w: %s", ErrAlreadySelected, rec.Name)
	}

	selected = append(selected, rec)
	if err := Save(selPath, selected); err != nil {
		return timetable.Record{}, err
	}

	return rec, nil
}

// Remove drops the class identified by code from the selection file.
func Remove(selPath, code string) (timetable.Record, error) {
	selected, err := Load(selPath)
	if err != nil {
		return timetable.Record{}, err
	}

	for i, r := range selected {
		if matches(r, code) {
			selected = append(selected[:i], selected[i+1:]...)
			return r, Save(selPath, selected)
		}
	}

	return timetable.Record{}, &NotFoundError{Code: code, Suggestions: Suggest(selected, code, 3)}
}
