package dom

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func openFixture(t *testing.T, name string) *goquery.Document {
	t.Helper()
	doc, err := Open("testdata/" + name)
	if err != nil {
		t.Fatalf("failed to open fixture %s: %v", name, err)
	}
	return doc
}

func TestFillEmptySpans(t *testing.T) {
	doc := openFixture(t, "timetable.html")

	filled := FillEmptySpans(doc, AttrID, 0, 200)
	if filled != 3 {
		t.Errorf("expected 3 spans to be filled, got %d", filled)
	}

	cases := map[string]string{
		"__text4-__clone1": NullSentinel, // whitespace only
		"__text6-__clone1": NullSentinel,
		"__text12-footer":  NullSentinel,
		"__text4-__clone0": "Dr. Ayse Kaya",
		"__text6-__clone2": "NULL",
		"__text5-__clone0": "MON : 09:20 - 11:20 - WED : 13:20 - 15:20",
	}
	for id, want := range cases {
		got := doc.Find(`span[id="` + id + `"]`).Text()
		if got != want {
			t.Errorf("span %s: expected %q, got %q", id, want, got)
		}
	}
}

func TestFillEmptySpans_OutsideRange(t *testing.T) {
	doc := openFixture(t, "timetable.html")

	// The footer span is __text12 and must stay empty when the scan stops at 10.
	FillEmptySpans(doc, AttrID, 0, 10)
	if got := doc.Find(`span[id="__text12-footer"]`).Text(); got != "" {
		t.Errorf("expected footer span to stay empty, got %q", got)
	}
}

func TestFillEmptySpans_SAPUIAttribute(t *testing.T) {
	doc := openFixture(t, "sapui.html")

	if filled := FillEmptySpans(doc, AttrSAPUI, 0, 200); filled != 2 {
		t.Errorf("expected 2 data-sap-ui spans filled, got %d", filled)
	}
	if got := doc.Find(`span[id="__text3-__clone9"]`).Text(); got != "" {
		t.Errorf("id-only span should be untouched when scanning data-sap-ui, got %q", got)
	}
	if got := doc.Find(`span[data-sap-ui="__text3-__clone8"]`).Text(); got != "Room 5" {
		t.Errorf("non-empty span changed to %q", got)
	}
}

func TestPageText(t *testing.T) {
	doc := openFixture(t, "timetable.html")

	text := PageText(doc)
	if strings.Contains(text, "sapUiBoot") {
		t.Errorf("script content leaked into page text")
	}
	if !strings.Contains(text, "Linear Algebra") || !strings.Contains(text, "Quota") {
		t.Errorf("expected table text in page text, got:\n%s", text)
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			t.Fatalf("page text contains blank lines:\n%s", text)
		}
	}

	// The clone must not have removed the script from the document itself.
	if doc.Find("script").Length() != 1 {
		t.Errorf("PageText modified the document")
	}
}
