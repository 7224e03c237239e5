package exporter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"ttgrab/pkg/timetable"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func ignoreRaw() cmp.Option {
	return cmpopts.IgnoreFields(timetable.Record{}, "Raw")
}

func TestLoadRecords_RoundTripTagged(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRecords, timetable.Full, Tagged); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	path := writeTemp(t, "full.json", buf.String())

	got, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if diff := cmp.Diff(sampleRecords, got, ignoreRaw()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRecords_RoundTripLegacy(t *testing.T) {
	for _, v := range []timetable.Variant{timetable.Dated, timetable.Plain, timetable.Full} {
		var buf bytes.Buffer
		if err := WriteJSON(&buf, sampleRecords, v, Legacy); err != nil {
			t.Fatalf("WriteJSON failed: %v", err)
		}
		path := writeTemp(t, v.Name+".json", buf.String())

		got, err := LoadRecords(path)
		if err != nil {
			t.Fatalf("%s: LoadRecords failed: %v", v.Name, err)
		}
		if len(got) != len(sampleRecords) {
			t.Fatalf("%s: expected %d records, got %d", v.Name, len(sampleRecords), len(got))
		}
		if got[0].Name != "MATH201-01" || len(got[0].Time) != 2 {
			t.Errorf("%s: unexpected first record %+v", v.Name, got[0])
		}
	}
}

func TestLoadRecords_HandEditedJSON5(t *testing.T) {
	path := writeTemp(t, "selected.json", `[
  // picked in the add/drop week
  ["CS305-01", "Databases", "Dr. Can Yilmaz", ["MON : 08:30 - 10:20"], "A-102", 45],
  {Section: "Compilers", name: "CS404-01", Schedule: "THU : 10:20 - 12:20", Location: "A-101"},
]`)

	got, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}

	want := []timetable.Record{
		{Name: "CS305-01", Section: "Databases", Teacher: "Dr. Can Yilmaz", Time: []string{"MON : 08:30 - 10:20"}, Room: "A-102", Capacity: "45"},
		{Name: "CS404-01", Section: "Compilers", Time: []string{"THU : 10:20 - 12:20"}, Room: "A-101"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRecords_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, sampleRecords); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("raw")) {
		t.Errorf("raw schedule must not be written to YAML:\n%s", buf.String())
	}
	path := writeTemp(t, "records.yaml", buf.String())

	got, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if diff := cmp.Diff(sampleRecords, got, ignoreRaw()); diff != "" {
		t.Errorf("yaml round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRecords_XLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleRecords); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "records.xlsx")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write workbook: %v", err)
	}

	got, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if diff := cmp.Diff(sampleRecords, got, ignoreRaw()); diff != "" {
		t.Errorf("xlsx round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRecords_Errors(t *testing.T) {
	if _, err := LoadRecords(writeTemp(t, "obj.json", `{"name": "x"}`)); err == nil {
		t.Errorf("expected error for a top-level object")
	}
	if _, err := LoadRecords(writeTemp(t, "short.json", `[["a", "b"]]`)); err == nil {
		t.Errorf("expected error for a short positional record")
	}
	if _, err := LoadRecords(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for a missing file")
	}
}
