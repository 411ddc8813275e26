package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TerminalTabWidth is the tab stop spacing assumed for output written to a
// terminal.
const TerminalTabWidth = 8

// DisplayWidth reports the printable width of text accounting for wide runes
// and tab stops. Zero-width and control runes count as one column.
func DisplayWidth(text string) int {
	column := 0
	for _, ru := range text {
		column = advanceColumn(column, ru)
	}
	return column
}

// TruncateToWidth returns the longest prefix of text that fits in maxColumns
// terminal columns, cut on a rune boundary, and whether anything was removed.
// A non-positive limit leaves text untouched. Tabs are measured to the next
// tab stop but never rewritten.
func TruncateToWidth(text string, maxColumns int) (string, bool) {
	if maxColumns <= 0 || DisplayWidth(text) <= maxColumns {
		return text, false
	}
	column := 0
	for idx, ru := range text {
		next := advanceColumn(column, ru)
		if next > maxColumns {
			return text[:idx], true
		}
		column = next
	}
	return text, false
}

func advanceColumn(column int, ru rune) int {
	if ru == '\t' {
		return column + TerminalTabWidth - column%TerminalTabWidth
	}
	w := runewidth.RuneWidth(ru)
	if w <= 0 {
		w = 1
	}
	return column + w
}
