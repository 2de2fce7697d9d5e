package htmltable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{name: "nil grid", rows: nil, want: Placeholder},
		{name: "empty grid", rows: [][]string{}, want: Placeholder},
		{
			name: "header only",
			rows: [][]string{{"Module", "Grade"}},
			want: `<table class="table table-bordered"><tr><th>Module</th><th>Grade</th></tr></table>`,
		},
		{
			name: "header and rows",
			rows: [][]string{{"Module", "Grade"}, {"Algebra", "14.5"}, {"Geology", "11"}},
			want: `<table class="table table-bordered">` +
				`<tr><th>Module</th><th>Grade</th></tr>` +
				`<tr><td>Algebra</td><td>14.5</td></tr>` +
				`<tr><td>Geology</td><td>11</td></tr>` +
				`</table>`,
		},
		{
			name: "ragged rows kept as-is",
			rows: [][]string{{"A", "B"}, {"1"}, {"2", "3", "4"}},
			want: `<table class="table table-bordered">` +
				`<tr><th>A</th><th>B</th></tr>` +
				`<tr><td>1</td></tr>` +
				`<tr><td>2</td><td>3</td><td>4</td></tr>` +
				`</table>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.rows))
		})
	}
}

func TestRender_escapesCells(t *testing.T) {
	out := Render([][]string{
		{"Name"},
		{`<script>alert("x")</script>`},
		{"O'Neil & sons"},
	})

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&#34;x&#34;")
	assert.Contains(t, out, "O&#39;Neil &amp; sons")

	// no raw markup characters may survive outside the table tags themselves
	stripped := out
	for _, tag := range []string{"<table class=\"table table-bordered\">", "</table>", "<tr>", "</tr>", "<th>", "</th>", "<td>", "</td>"} {
		stripped = strings.ReplaceAll(stripped, tag, "")
	}
	assert.NotContains(t, stripped, "<")
	assert.NotContains(t, stripped, ">")
}
