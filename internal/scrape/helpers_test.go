package scrape

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := ParseDocument([]byte(html))
	require.NoError(t, err)
	return doc
}

func tableHTML(class string, rows int, posOffset int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<table class="%s"><thead><tr><th>#</th><th>Club</th></tr></thead><tbody>`, class)
	for i := 1; i <= rows; i++ {
		fmt.Fprintf(&b, `<tr><td>%d</td><td>Club %d</td><td>30</td><td>1|2|3</td><td>10-5</td><td>5</td><td>40</td></tr>`, i+posOffset, i)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

// simpleParser reads "position, name" rows and leaves every counter at zero.
func simpleParser(index int, row *goquery.Selection) RowResult {
	cells := Cells(row)
	name := NormalizeName(CellText(cells, 1))
	if len(name) < 2 {
		return Skip("row %d: missing name", index)
	}
	return Parsed(standings.Team{Position: ParseInt(CellText(cells, 0)), Name: name})
}

func rowsOf(t *testing.T, html string) []*goquery.Selection {
	t.Helper()
	return collect(mustDoc(t, html).Find("tbody tr"))
}
