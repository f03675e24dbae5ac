package output

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// gutter is the minimum spacing between columns.
const gutter = 4

// VisibleWidth returns the printable width of s, ignoring ANSI escape
// sequences of the form ESC [ ... m.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			// Skip until 'm'
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			i = j + 1
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}

// Columns lays entries out row-major into uniform columns sized for
// outWidth. Every column is maxVisible+gutter wide; the column count never
// drops below 1. The last entry of each row is not padded, so rows carry no
// trailing whitespace.
func Columns(entries []Entry, maxVisible, outWidth int) string {
	if len(entries) == 0 {
		return ""
	}

	colWidth := maxVisible + gutter
	cols := outWidth / colWidth
	if cols < 1 {
		cols = 1
	}

	var sb strings.Builder
	for i, e := range entries {
		sb.WriteString(e.Text)
		if (i+1)%cols == 0 || i == len(entries)-1 {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(strings.Repeat(" ", max(colWidth-e.Width, 0)))
	}
	return sb.String()
}
