package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ttgrab/pkg/timetable"

	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"
)

// LoadRecords reads a record file written by this tool or edited by
// hand. JSON files may be JSON5 and may hold objects (tagged shape) or
// positional arrays (legacy or full layout). .yaml and .xlsx files are
// read by extension.
func LoadRecords(path string) ([]timetable.Record, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".xlsx" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadXLSX(f, "")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw any
	if ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(data, &raw)
	} else {
		err = json5.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return recordsFromValue(raw)
}

func recordsFromValue(raw any) ([]timetable.Record, error) {
	if raw == nil {
		return []timetable.Record{}, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of records, got %T", raw)
	}

	records := make([]timetable.Record, 0, len(list))
	for i, item := range list {
		r, err := recordFromValue(item)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func recordFromValue(v any) (timetable.Record, error) {
	switch x := v.(type) {
	case map[string]any:
		fields := make(map[string]any, len(x))
		for k, val := range x {
			if field, ok := headerAliases[strings.ToLower(k)]; ok {
				fields[field] = val
			}
		}
		return timetable.Record{
			Name:     scalar(fields["name"]),
			Section:  scalar(fields["section"]),
			Teacher:  scalar(fields["teacher"]),
			Time:     segments(fields["schedule"]),
			Room:     scalar(fields["room"]),
			Capacity: scalar(fields["capacity"]),
		}, nil

	case []any:
		if len(x) < 4 {
			return timetable.Record{}, fmt.Errorf("positional record has %d cells, need at least 4", len(x))
		}
		r := timetable.Record{
			Name:    scalar(x[0]),
			Section: scalar(x[1]),
			Teacher: scalar(x[2]),
			Time:    segments(x[3]),
		}
		switch len(x) {
		case 5:
			r.Raw = scalar(x[4])
		case 6:
			r.Room = scalar(x[4])
			r.Capacity = scalar(x[5])
		}
		return r, nil

	default:
		return timetable.Record{}, fmt.Errorf("unexpected record type %T", v)
	}
}

func scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(x)
	}
}

func segments(v any) []string {
	switch x := v.(type) {
	case string:
		return timetable.SplitSchedule(x)
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			out = append(out, scalar(item))
		}
		return out
	default:
		return []string{}
	}
}
