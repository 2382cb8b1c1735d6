package dataset

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Table is a rectangular, string typed sheet: one header row and data rows.
// Rows may be ragged; Cell pads missing trailing cells with "".
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *Table) Cell(row, col int) string {
	if t == nil || col < 0 || row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Column finds the first header matching any alias. Matching ignores case,
// Unicode compatibility forms and surrounding or repeated whitespace, so
// "PUBLIKASI", "Publikasi" and " publikasi " are the same column.
func (t *Table) Column(aliases ...string) (int, bool) {
	if t == nil {
		return -1, false
	}
	for _, alias := range aliases {
		want := headerKey(alias)
		for i, name := range t.Header {
			if headerKey(name) == want {
				return i, true
			}
		}
	}
	return -1, false
}

func headerKey(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = norm.NFKC.String(name)
	// Casers keep state, so one is made per call.
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}
