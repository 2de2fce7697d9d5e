// Package htmltable renders 2-D grids of untrusted cell values as HTML tables.
package htmltable

import (
	"html"
	"strings"
)

// Placeholder is returned for an empty grid.
const Placeholder = "<p>No data</p>"

// Render converts rows into an HTML table, treating the first row as the
// header. Every cell value is HTML-escaped; a cell can never be interpreted
// as markup. Ragged rows are rendered as-is; column counts are not validated
// against the header.
func Render(rows [][]string) string {
	if len(rows) == 0 {
		return Placeholder
	}

	var b strings.Builder
	b.WriteString(`<table class="table table-bordered">`)
	for i, row := range rows {
		tag := "td"
		if i == 0 {
			tag = "th"
		}
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<" + tag + ">")
			b.WriteString(html.EscapeString(cell))
			b.WriteString("</" + tag + ">")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}
