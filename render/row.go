package render

import (
	"strings"
	"unicode/utf8"

	"github.com/andres-b-devops/desafio-03/model"
)

// cell clips a value to width runes and left-justifies it. Truncating on
// rune boundaries keeps multibyte values valid UTF-8.
func cell(v string, width int) string {
	if r := []rune(v); len(r) > width {
		v = string(r[:width])
	}
	return v + strings.Repeat(" ", width-utf8.RuneCountInString(v))
}

// RenderRow renders one record as one or more bordered table lines. The
// first line carries the ten fixed fields plus the first wrapped command
// segment; continuation lines blank the fixed cells and carry the next
// segment. Every cell is clipped to its column width, which also bounds the
// long-word wrap overflow case.
func RenderRow(rec model.Record, cols []Column) []string {
	last := len(cols) - 1
	fixed := rec.Fields()
	segments := Wrap(rec.Cmd, cols[last].Width)

	lines := make([]string, 0, len(segments))
	for i, seg := range segments {
		cells := make([]string, len(cols))
		for j := 0; j < last; j++ {
			v := ""
			if i == 0 {
				v = fixed[j]
			}
			cells[j] = cell(v, cols[j].Width)
		}
		cells[last] = cell(seg, cols[last].Width)
		lines = append(lines, "|"+strings.Join(cells, "|")+"|")
	}
	return lines
}
