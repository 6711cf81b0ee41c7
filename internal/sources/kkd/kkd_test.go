package kkd

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/scrape"
)

func firstRow(t *testing.T, cells string) *goquery.Selection {
	t.Helper()
	doc, err := scrape.ParseDocument([]byte("<table><tbody><tr>" + cells + "</tr></tbody></table>"))
	require.NoError(t, err)
	return doc.Find("tbody tr").First()
}

func TestParseRowUsesCrestAltText(t *testing.T) {
	row := firstRow(t, `<td></td><td>5</td><td><img alt="PEC Zwolle" src="pec.png"></td><td></td>`+
		`<td>30</td><td>10/5/15</td><td>35</td><td>40/50</td><td>-10</td>`)

	res := NewParser(nil).ParseRow(4, row)

	require.True(t, res.OK, res.Reason)
	assert.Equal(t, standings.Team{
		Position:       5,
		Name:           "PEC Zwolle",
		Games:          30,
		Wins:           10,
		Draws:          5,
		Losses:         15,
		Points:         35,
		GoalsFor:       40,
		GoalsAgainst:   50,
		GoalDifference: -10,
	}, res.Team)
}

func TestParseRowOutOfRangePositionUsesSequence(t *testing.T) {
	row := firstRow(t, `<td></td><td>25</td><td><img alt="Telstar"></td><td></td>`+
		`<td>30</td><td>10/5/15</td><td>35</td><td>40/50</td><td>-10</td>`)

	res := NewParser(nil).ParseRow(6, row)

	require.True(t, res.OK)
	assert.Equal(t, 7, res.Team.Position)
}

func TestParseRowPrefersDesktopNameCell(t *testing.T) {
	row := firstRow(t, `<td></td><td>1</td><td><img alt="VOL"></td>`+
		`<td class="font-bold hidden lg:table-cell"><a href="/clubs/volendam">FC  Volendam*</a></td>`+
		`<td>38</td><td>24/7/7</td><td>79</td><td>80/41</td><td>39</td>`)

	res := NewParser(nil).ParseRow(0, row)

	require.True(t, res.OK)
	assert.Equal(t, "FC Volendam", res.Team.Name)
}

func TestParseRowFallsBackToThirdCellText(t *testing.T) {
	row := firstRow(t, `<td></td><td>2</td><td><img src="x.png"></td><td> Excelsior </td>`+
		`<td>38</td><td>22/9/7</td><td>75</td><td>83/40</td><td>43</td>`)

	res := NewParser(nil).ParseRow(1, row)

	require.True(t, res.OK)
	assert.Equal(t, "Excelsior", res.Team.Name)
}

func TestParseRowSkipsRowsWithoutName(t *testing.T) {
	row := firstRow(t, `<td></td><td>2</td><td></td><td>X</td><td>38</td><td>22/9/7</td><td>75</td>`)

	res := NewParser(nil).ParseRow(1, row)

	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, "team name")
}

func TestParseRowMissingTrailingCellsReadAsZero(t *testing.T) {
	row := firstRow(t, `<td></td><td>3</td><td><img alt="ADO Den Haag"></td><td></td><td>20</td><td>12/4/4</td><td>40</td>`)

	res := NewParser(nil).ParseRow(2, row)

	require.True(t, res.OK)
	assert.Equal(t, 0, res.Team.GoalsFor)
	assert.Equal(t, 0, res.Team.GoalsAgainst)
	assert.Equal(t, 0, res.Team.GoalDifference)
	assert.Equal(t, 40, res.Team.Points)
}

func TestParseRowLogsNegativePoints(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	row := firstRow(t, `<td></td><td>20</td><td><img alt="Vitesse"></td><td></td>`+
		`<td>38</td><td>9/9/20</td><td>-12</td><td>40/67</td><td>-27</td>`)

	res := NewParser(logger).ParseRow(19, row)

	require.True(t, res.OK)
	assert.Equal(t, -12, res.Team.Points)
	assert.Contains(t, buf.String(), "team=Vitesse")
	assert.Contains(t, buf.String(), "points=-12")
}

func TestLayoutFindsRowsAcrossSplitTables(t *testing.T) {
	var b strings.Builder
	b.WriteString("<div>")
	for i := 1; i <= MaxPosition; i++ {
		fmt.Fprintf(&b, `<table class="x"><tr><td></td><td>%d</td><td><img alt="Club %d"></td><td></td><td>1</td><td>1/0/0</td><td>3</td><td>2/1</td><td>1</td></tr></table>`, i, i)
	}
	b.WriteString("</div>")
	doc, err := scrape.ParseDocument([]byte(b.String()))
	require.NoError(t, err)

	located := scrape.LocateRows(doc, Layout)

	assert.Len(t, located.Rows, MaxPosition)
}
