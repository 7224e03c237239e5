package timetable

import (
	"ttgrab/pkg/dom"
	"ttgrab/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

// DefaultScanEnd bounds the span normalizer's index scan.
const DefaultScanEnd = 200

// Options controls a pipeline run.
type Options struct {
	Variant Variant
	Gaps    GapPolicy

	// Span normalization
	SkipNormalize bool
	SpanAttr      string
	ScanFrom      int
	ScanTo        int
}

// DefaultOptions scans id="__text0-" through "__text199-" spans and
// projects with the dated layout, skipping gap rows.
func DefaultOptions() Options {
	return Options{
		Variant:  Dated,
		Gaps:     SkipGaps,
		SpanAttr: dom.AttrID,
		ScanFrom: 0,
		ScanTo:   DefaultScanEnd,
	}
}

// Result is the outcome of Run.
type Result struct {
	Records []Record
	Filled  int   // Spans set to the NULL sentinel
	Rows    int   // Rows found on the page
	Gaps    []int // Row indices absent from the page
}

// Run fills empty spans, extracts the table rows from doc and cleans them.
func Run(doc *goquery.Document, opts Options) (*Result, error) {
	res := &Result{}

	if !opts.SkipNormalize {
		res.Filled = dom.FillEmptySpans(doc, opts.SpanAttr, opts.ScanFrom, opts.ScanTo)
		logger.Debug("empty spans filled", "count", res.Filled, "attr", opts.SpanAttr)
	}

	matrix := dom.ExtractRows(doc)
	res.Rows = matrix.Count()
	res.Gaps = matrix.Gaps()

	if res.Rows == 0 {
		return nil, ErrNoRows
	}

	if len(res.Gaps) > 0 && opts.Gaps == SkipGaps {
		logger.Warn("skipping missing table rows", "count", len(res.Gaps), "first", firstFew(res.Gaps, 5))
	}

	records, err := Project(matrix, opts.Variant, opts.Gaps)
	if err != nil {
		return nil, err
	}
	res.Records = records

	logger.Info("timetable extracted", "variant", opts.Variant.Name, "records", len(records))
	return res, nil
}

func firstFew(indices []int, n int) []int {
	if len(indices) > n {
		return indices[:n]
	}
	return indices
}
