package exporter

import (
	"io"

	"ttgrab/pkg/timetable"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes records as a YAML sequence.
func WriteYAML(w io.Writer, records []timetable.Record) error {
	if records == nil {
		records = []timetable.Record{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
