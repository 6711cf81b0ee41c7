package scrape

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NormalizeName strips the status marker (*) some sites append to club names
// and collapses whitespace runs to single spaces.
func NormalizeName(raw string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(raw, "*", "")), " ")
}

// ParseInt keeps only digits and minus signs and parses the rest.
// Anything that does not parse, including an empty remainder, yields 0.
func ParseInt(raw string) int {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// SplitInts splits raw on sep and parses every part with ParseInt.
func SplitInts(raw, sep string) []int {
	parts := strings.Split(raw, sep)
	out := make([]int, len(parts))
	for i, p := range parts {
		out[i] = ParseInt(p)
	}
	return out
}

// Part returns parts[i], or 0 when the index is out of range.
func Part(parts []int, i int) int {
	if i < 0 || i >= len(parts) {
		return 0
	}
	return parts[i]
}

// IsPlainInt reports whether s is a non-empty run of ASCII digits.
func IsPlainInt(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Cells returns the td/th children of a table row.
func Cells(row *goquery.Selection) *goquery.Selection {
	return row.ChildrenFiltered("td, th")
}

// CellText returns the trimmed text of the i-th cell, or "" when missing.
func CellText(cells *goquery.Selection, i int) string {
	if i < 0 || i >= cells.Length() {
		return ""
	}
	return strings.TrimSpace(cells.Eq(i).Text())
}
