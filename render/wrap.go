package render

import "strings"

const breakSet = " \t"

// Wrap splits text into lines no wider than width using greedy word-wrap:
// each line takes the longest prefix that breaks at a whitespace boundary at
// or before the limit. A single word longer than width goes on its own line
// unsplit, so that one case may exceed width. Empty input yields a single
// empty line so the record still renders one row.
func Wrap(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	// leading whitespace would otherwise produce an empty first segment
	rest := strings.TrimLeft(text, breakSet)
	for len(rest) > width {
		brk := strings.LastIndexAny(rest[:width+1], breakSet)
		if brk <= 0 {
			brk = strings.IndexAny(rest, breakSet)
			if brk < 0 {
				break
			}
		}
		lines = append(lines, strings.TrimRight(rest[:brk], breakSet))
		rest = strings.TrimLeft(rest[brk:], breakSet)
	}
	if rest != "" || len(lines) == 0 {
		lines = append(lines, rest)
	}
	return lines
}
