package render

import (
	"strings"

	"github.com/andres-b-devops/desafio-03/model"
)

func divider(cols []Column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = strings.Repeat("-", c.Width)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

func header(cols []Column) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = cell(c.Name, c.Width)
	}
	return "|" + strings.Join(cells, "|") + "|"
}

// RenderTable renders the full bordered table: top divider, header row, all
// row lines in input order, bottom divider and a trailing blank line. No
// sorting or filtering happens here. Zero records still renders the dividers
// and the header.
func RenderTable(records []model.Record, cols []Column) []string {
	lines := []string{divider(cols), header(cols)}
	for _, rec := range records {
		lines = append(lines, RenderRow(rec, cols)...)
	}
	return append(lines, divider(cols), "")
}
