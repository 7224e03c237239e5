package dom

import (
	"regexp"
	"sort"
	"strconv"

	"ttgrab/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

// RowMarker is the id substring shared by every table row element.
const RowMarker = "moduleTable-"

// MaxRowIndex is the largest row index accepted from an element id.
// Larger indices are treated like ids that do not parse.
const MaxRowIndex = 1<<16 - 1

// rowIDPattern captures the row index from ids like
// "__item12-__xmlview3--moduleTable-7".
var rowIDPattern = regexp.MustCompile(`(?m)__item\d+-__xmlview\d+--moduleTable-(\d+)$`)

// Row is one table row: its index parsed from the element id and the
// element's children at extraction time.
type Row struct {
	Index int
	Cells []*goquery.Selection
}

// Cell returns the cell at position i, or false if the row is shorter.
func (r Row) Cell(i int) (*goquery.Selection, bool) {
	if i < 0 || i >= len(r.Cells) {
		return nil, false
	}
	return r.Cells[i], true
}

// Matrix maps row indices to rows. Indices below Len that have no row
// are gaps.
type Matrix struct {
	rows map[int]Row
	size int
}

// NewMatrix returns an empty matrix.
func NewMatrix() *Matrix {
	return &Matrix{rows: make(map[int]Row)}
}

// Set stores row at its index, replacing any earlier row there. Rows
// with an index outside 0..MaxRowIndex are not stored and Set reports
// false.
func (m *Matrix) Set(row Row) bool {
	if row.Index < 0 || row.Index > MaxRowIndex {
		return false
	}
	m.rows[row.Index] = row
	if row.Index+1 > m.size {
		m.size = row.Index + 1
	}
	return true
}

// Len is the highest stored index plus one.
func (m *Matrix) Len() int {
	return m.size
}

// Count is the number of stored rows.
func (m *Matrix) Count() int {
	return len(m.rows)
}

// Row returns the row at index i.
func (m *Matrix) Row(i int) (Row, bool) {
	r, ok := m.rows[i]
	return r, ok
}

// Rows returns the stored rows in ascending index order.
func (m *Matrix) Rows() []Row {
	out := make([]Row, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})
	return out
}

// Gaps returns the indices below Len that hold no row, found between
// neighbouring stored indices.
func (m *Matrix) Gaps() []int {
	var gaps []int
	next := 0
	for _, r := range m.Rows() {
		for i := next; i < r.Index; i++ {
			gaps = append(gaps, i)
		}
		next = r.Index + 1
	}
	return gaps
}

// ParseRowIndex extracts the row index from a row element id. Indices
// above MaxRowIndex do not parse.
func ParseRowIndex(id string) (int, bool) {
	match := rowIDPattern.FindStringSubmatch(id)
	if match == nil {
		return 0, false
	}

	idx, err := strconv.Atoi(match[1])
	if err != nil || idx > MaxRowIndex {
		return 0, false
	}
	return idx, true
}

// ExtractRows collects every element whose id carries the row marker and
// parses to a row index. Other ids are skipped.
func ExtractRows(doc *goquery.Document) *Matrix {
	matrix := NewMatrix()
	skipped := 0

	doc.Find(`[id*="` + RowMarker + `"]`).Each(func(_ int, el *goquery.Selection) {
		id, _ := el.Attr("id")
		idx, ok := ParseRowIndex(id)
		if !ok {
			skipped++
			return
		}

		var cells []*goquery.Selection
		el.Children().Each(func(_ int, child *goquery.Selection) {
			cells = append(cells, child)
		})

		if !matrix.Set(Row{Index: idx, Cells: cells}) {
			skipped++
		}
	})

	logger.Debug("table rows extracted",
		"rows", matrix.Count(),
		"len", matrix.Len(),
		"skipped_ids", skipped)

	return matrix
}
