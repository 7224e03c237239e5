package timetable

import (
	"fmt"
	"sort"
	"strings"
)

// Record is one cleaned timetable row.
type Record struct {
	Name     string   `json:"name" yaml:"name"`
	Section  string   `json:"section" yaml:"section"`
	Teacher  string   `json:"teacher" yaml:"teacher"`
	Time     []string `json:"time" yaml:"time"`                             // Day-coded segments e.g. "MON : 09:20 - 11:20"
	Room     string   `json:"room,omitempty" yaml:"room,omitempty"`         // Only filled by layouts with a room column
	Capacity string   `json:"capacity,omitempty" yaml:"capacity,omitempty"` // Only filled by layouts with a quota column
	Raw      string   `json:"-" yaml:"-"`                                   // Schedule text as rendered, kept by the dated layout
}

// Variant is a named column layout for projecting table rows.
type Variant struct {
	Name string

	NameCol     int
	SectionCol  int
	TeacherCol  int
	ScheduleCol int
	RoomCol     int // -1 when the layout has no room column
	CapacityCol int // -1 when the layout has no quota column

	// KeepRaw keeps the undecomposed schedule text as a fifth positional cell.
	KeepRaw bool

	// Prompt asks for a file name before export; DefaultFilename is used
	// when the answer is blank or when the layout never asks.
	Prompt          bool
	DefaultFilename string
}

var (
	// Dated selects name, section, teacher and schedule, keeping the raw
	// schedule text next to its decomposed segments.
	Dated = Variant{
		Name:            "dated",
		NameCol:         3,
		SectionCol:      2,
		TeacherCol:      5,
		ScheduleCol:     6,
		RoomCol:         -1,
		CapacityCol:     -1,
		KeepRaw:         true,
		Prompt:          true,
		DefaultFilename: "matrix",
	}

	// Plain selects only name, section, teacher and schedule.
	Plain = Variant{
		Name:            "plain",
		NameCol:         3,
		SectionCol:      2,
		TeacherCol:      5,
		ScheduleCol:     6,
		RoomCol:         -1,
		CapacityCol:     -1,
		DefaultFilename: "classes",
	}

	// Full adds the room and quota columns. Its positional form is what
	// the selection and calendar tools read.
	Full = Variant{
		Name:            "full",
		NameCol:         3,
		SectionCol:      2,
		TeacherCol:      5,
		ScheduleCol:     6,
		RoomCol:         7,
		CapacityCol:     8,
		Prompt:          true,
		DefaultFilename: "matrix",
	}
)

var variants = map[string]Variant{
	Dated.Name: Dated,
	Plain.Name: Plain,
	Full.Name:  Full,
}

// VariantByName looks up a built-in layout.
func VariantByName(name string) (Variant, error) {
	v, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("unknown variant %q (available: %s)", name, strings.Join(VariantNames(), ", "))
	}
	return v, nil
}

// VariantNames lists the built-in layouts.
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithDefaultFilename returns v with name as its default file name.
// Layouts that never ask for a name keep their fixed one.
func (v Variant) WithDefaultFilename(name string) Variant {
	if v.Prompt && name != "" {
		v.DefaultFilename = name
	}
	return v
}

// Positional returns r as the cell list the layout produced it in:
// name, section, teacher, time, then raw text or room and quota.
func (v Variant) Positional(r Record) []any {
	cells := []any{r.Name, r.Section, r.Teacher, r.Time}
	if v.KeepRaw {
		cells = append(cells, r.Raw)
	}
	if v.RoomCol >= 0 {
		cells = append(cells, r.Room)
	}
	if v.CapacityCol >= 0 {
		cells = append(cells, r.Capacity)
	}
	return cells
}
