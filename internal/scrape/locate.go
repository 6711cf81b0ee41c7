package scrape

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

const (
	// MinCells is the smallest cell count a standings row can have.
	MinCells = 7

	// SelectorFallbackScan names the heuristic row scan in LocateResult.
	SelectorFallbackScan = "fallback-scan"
)

// TableLayout tells LocateRows where a league's table lives.
type TableLayout struct {
	// Selectors are tried in order; the first one yielding ExpectedRows wins.
	Selectors    []string
	ExpectedRows int
	// PositionCell is the index of the cell holding the rank, used by the
	// fallback scan to recognise standings rows.
	PositionCell int
}

// LocateResult holds the rows found and the strategy that found them.
type LocateResult struct {
	Rows     []*goquery.Selection
	Selector string
}

// LocateRows finds the standings rows in doc. When no selector yields the
// expected row count it scans every table row for ones that look like
// standings entries and keeps whichever candidate set is larger.
func LocateRows(doc *goquery.Document, layout TableLayout) LocateResult {
	var best LocateResult
	for _, selector := range layout.Selectors {
		rows := collect(doc.Find(selector))
		if len(rows) >= layout.ExpectedRows && len(rows) > 0 {
			return LocateResult{Rows: rows, Selector: selector}
		}
		if len(rows) > len(best.Rows) {
			best = LocateResult{Rows: rows, Selector: selector}
		}
	}

	scanned := scanRows(doc, layout)
	if len(scanned) >= len(best.Rows) {
		return LocateResult{Rows: scanned, Selector: SelectorFallbackScan}
	}
	return best
}

func scanRows(doc *goquery.Document, layout TableLayout) []*goquery.Selection {
	var rows []*goquery.Selection
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := Cells(row)
		if cells.Length() < MinCells {
			return
		}
		text := CellText(cells, layout.PositionCell)
		if !IsPlainInt(text) {
			return
		}
		pos, err := strconv.Atoi(text)
		if err != nil || pos < 1 || pos > layout.ExpectedRows {
			return
		}
		rows = append(rows, row)
	})
	return rows
}

func collect(sel *goquery.Selection) []*goquery.Selection {
	rows := make([]*goquery.Selection, 0, sel.Length())
	sel.Each(func(_ int, row *goquery.Selection) {
		rows = append(rows, row)
	})
	return rows
}
