package exporter

import (
	"encoding/json"
	"io"

	"ttgrab/pkg/timetable"
)

// labeled is the object form of a five-element array in the legacy layout.
// The fifth element is dropped.
type labeled struct {
	Name    any `json:"name"`
	Section any `json:"section"`
	Teacher any `json:"teacher"`
	Time    any `json:"time"`
}

// WriteJSON writes records as 2-space indented JSON.
func WriteJSON(w io.Writer, records []timetable.Record, v timetable.Variant, shape Shape) error {
	var doc any = records
	if records == nil {
		doc = []timetable.Record{}
	}

	if shape == Legacy {
		rows := make([]any, 0, len(records))
		for _, r := range records {
			rows = append(rows, v.Positional(r))
		}
		doc = relabel(rows)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// relabel applies the five-element rule top down to every array in the
// tree, including the outer list and time lists.
func relabel(node any) any {
	switch n := node.(type) {
	case []string:
		items := make([]any, len(n))
		for i, s := range n {
			items[i] = s
		}
		return relabel(items)
	case []any:
		if len(n) == 5 {
			return labeled{
				Name:    relabel(n[0]),
				Section: relabel(n[1]),
				Teacher: relabel(n[2]),
				Time:    relabel(n[3]),
			}
		}
		out := make([]any, len(n))
		for i, item := range n {
			out[i] = relabel(item)
		}
		return out
	default:
		return node
	}
}
