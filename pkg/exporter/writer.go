// Package exporter serializes cleaned timetable records to files.
package exporter

import (
	"fmt"
	"io"
	"strings"

	"ttgrab/pkg/timetable"
)

// Format is an output file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Ext is the file extension for f, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Shape selects how records are laid out in JSON.
type Shape int

const (
	// Tagged writes every record as an object keyed by field name.
	Tagged Shape = iota
	// Legacy writes records as positional arrays and relabels every
	// five-element array, as older exports did.
	Legacy
)

// Write serializes records to w in format f. Shape only applies to JSON.
func Write(w io.Writer, f Format, records []timetable.Record, v timetable.Variant, shape Shape) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, records, v, shape)
	case FormatYAML:
		return WriteYAML(w, records)
	case FormatXLSX:
		return WriteXLSX(w, records)
	default:
		return fmt.Errorf("unsupported output format: %s", f)
	}
}

// Save writes records to path in format f.
func Save(path string, f Format, records []timetable.Record, v timetable.Variant, shape Shape) error {
	return SaveFile(path, func(w io.Writer) error {
		return Write(w, f, records, v, shape)
	})
}
