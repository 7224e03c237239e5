package timetable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitSchedule(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "two segments joined by dash",
			input: "MON: 10-12 - TUE: 14-16",
			want:  []string{"MON: 10-12", "TUE: 14-16"},
		},
		{
			name:  "spaced colons and clock times",
			input: "MON : 09:20 - 11:20 - WED : 13:20 - 15:20",
			want:  []string{"MON : 09:20 - 11:20", "WED : 13:20 - 15:20"},
		},
		{
			name:  "leading whitespace and newline separators",
			input: "  THU:08:30 - 10:20\n FRI :15:20 - 17:20 -  ",
			want:  []string{"THU:08:30 - 10:20", "FRI :15:20 - 17:20"},
		},
		{
			name:  "non-breaking spaces",
			input: "MON: 10-12\u00a0-\u00a0TUE: 14-16",
			want:  []string{"MON: 10-12", "TUE: 14-16"},
		},
		{
			name:  "no day tokens",
			input: "Online",
			want:  []string{},
		},
		{
			name:  "lowercase day is not a token",
			input: "mon: 10-12",
			want:  []string{},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSchedule(tt.input)
			if got == nil {
				t.Fatalf("SplitSchedule returned nil, want empty slice")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitSchedule(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestVariantByName(t *testing.T) {
	for _, name := range []string{"dated", "Plain", " full "} {
		if _, err := VariantByName(name); err != nil {
			t.Errorf("expected variant %q to resolve, got %v", name, err)
		}
	}
	if _, err := VariantByName("wide"); err == nil {
		t.Errorf("expected error for unknown variant")
	}
	if diff := cmp.Diff([]string{"dated", "full", "plain"}, VariantNames()); diff != "" {
		t.Errorf("VariantNames mismatch (-want +got):\n%s", diff)
	}
}

func TestVariantPositional(t *testing.T) {
	rec := Record{
		Name:     "CS302-02",
		Section:  "Operating Systems",
		Teacher:  "NULL",
		Time:     []string{"TUE : 14:20 - 16:20"},
		Room:     "B-1",
		Capacity: "60",
		Raw:      "TUE : 14:20 - 16:20",
	}

	if got := len(Dated.Positional(rec)); got != 5 {
		t.Errorf("dated layout should have 5 cells, got %d", got)
	}
	if got := len(Plain.Positional(rec)); got != 4 {
		t.Errorf("plain layout should have 4 cells, got %d", got)
	}

	full := Full.Positional(rec)
	if len(full) != 6 || full[4] != "B-1" || full[5] != "60" {
		t.Errorf("unexpected full layout cells: %v", full)
	}
}

func TestVariantWithDefaultFilename(t *testing.T) {
	if got := Dated.WithDefaultFilename("spring").DefaultFilename; got != "spring" {
		t.Errorf("prompting layout should take the configured name, got %q", got)
	}
	if got := Full.WithDefaultFilename("").DefaultFilename; got != "matrix" {
		t.Errorf("blank name should keep the layout default, got %q", got)
	}
	if got := Plain.WithDefaultFilename("spring").DefaultFilename; got != "classes" {
		t.Errorf("plain layout should keep its fixed name, got %q", got)
	}
}
