package dom

import (
	"reflect"
	"testing"
)

func TestParseRowIndex(t *testing.T) {
	tests := []struct {
		id    string
		index int
		ok    bool
	}{
		{"__item4-__xmlview1--moduleTable-0", 0, true},
		{"__item12-__xmlview3--moduleTable-17", 17, true},
		{"__item1-__xmlview0--moduleTable-007", 7, true},
		{"__xmlview1--moduleTable-listUl", 0, false},
		{"__item4-__xmlview1--moduleTable-tblHeader", 0, false},
		{"__item4-__xmlview1--moduleTable-3-sub", 0, false},
		{"moduleTable-3", 0, false},
		{"__item4-__xmlview1--moduleTable-65535", MaxRowIndex, true},
		{"__item4-__xmlview1--moduleTable-65536", 0, false},
		{"__item4-__xmlview1--moduleTable-30000000", 0, false},
		{"__item4-__xmlview1--moduleTable-9223372036854775807", 0, false},
		{"__item4-__xmlview1--moduleTable-99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		idx, ok := ParseRowIndex(tt.id)
		if ok != tt.ok || idx != tt.index {
			t.Errorf("ParseRowIndex(%q) = (%d, %v), want (%d, %v)", tt.id, idx, ok, tt.index, tt.ok)
		}
	}
}

func TestExtractRows(t *testing.T) {
	doc := openFixture(t, "timetable.html")

	matrix := ExtractRows(doc)
	if matrix.Len() != 3 || matrix.Count() != 3 {
		t.Fatalf("expected 3 rows, got len=%d count=%d", matrix.Len(), matrix.Count())
	}
	if gaps := matrix.Gaps(); len(gaps) != 0 {
		t.Errorf("expected no gaps, got %v", gaps)
	}

	row, ok := matrix.Row(1)
	if !ok {
		t.Fatalf("expected row 1 to exist")
	}
	if len(row.Cells) != 9 {
		t.Fatalf("expected 9 cells in row 1, got %d", len(row.Cells))
	}
	if got := row.Cells[2].Text(); got != "Operating Systems" {
		t.Errorf("expected cell 2 to be the course name, got %q", got)
	}
	if _, ok := row.Cell(9); ok {
		t.Errorf("expected cell 9 to be out of range")
	}
}

func TestExtractRows_Gap(t *testing.T) {
	doc := openFixture(t, "gap.html")

	matrix := ExtractRows(doc)
	if matrix.Len() != 3 {
		t.Errorf("expected matrix length 3, got %d", matrix.Len())
	}
	if matrix.Count() != 2 {
		t.Errorf("expected 2 rows, got %d", matrix.Count())
	}
	if _, ok := matrix.Row(1); ok {
		t.Errorf("expected index 1 to be a gap")
	}
	if gaps := matrix.Gaps(); !reflect.DeepEqual(gaps, []int{1}) {
		t.Errorf("expected gaps [1], got %v", gaps)
	}

	var indices []int
	for _, r := range matrix.Rows() {
		indices = append(indices, r.Index)
	}
	if !reflect.DeepEqual(indices, []int{0, 2}) {
		t.Errorf("expected rows in index order [0 2], got %v", indices)
	}
}

func TestMatrixSet_ReplacesDuplicateIndex(t *testing.T) {
	m := NewMatrix()
	m.Set(Row{Index: 4})
	m.Set(Row{Index: 4})
	m.Set(Row{Index: 1})

	if m.Count() != 2 || m.Len() != 5 {
		t.Errorf("expected count 2 and len 5, got count=%d len=%d", m.Count(), m.Len())
	}
}

func TestMatrixSet_RejectsOutOfRangeIndex(t *testing.T) {
	m := NewMatrix()
	for _, idx := range []int{-1, MaxRowIndex + 1, int(^uint(0) >> 1)} {
		if m.Set(Row{Index: idx}) {
			t.Errorf("Set accepted index %d", idx)
		}
	}
	if m.Count() != 0 || m.Len() != 0 {
		t.Errorf("expected an empty matrix, got count=%d len=%d", m.Count(), m.Len())
	}
}

func TestMatrixGaps_SparseIndices(t *testing.T) {
	m := NewMatrix()
	m.Set(Row{Index: 7})
	m.Set(Row{Index: 2})
	m.Set(Row{Index: 3})

	if gaps := m.Gaps(); !reflect.DeepEqual(gaps, []int{0, 1, 4, 5, 6}) {
		t.Errorf("expected gaps [0 1 4 5 6], got %v", gaps)
	}
	if gaps := NewMatrix().Gaps(); len(gaps) != 0 {
		t.Errorf("expected no gaps in an empty matrix, got %v", gaps)
	}
}
