package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleWidth measures s in display columns. Escape sequences take no columns.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most width display columns, keeping escape sequences intact.
func Truncate(s string, width int) string {
	return ansi.Truncate(s, width, "")
}

// PadRight appends spaces until s is width display columns wide.
func PadRight(s string, width int) string {
	if gap := width - VisibleWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Strip removes every escape sequence from s.
func Strip(s string) string {
	return ansi.Strip(s)
}

func blank(width int) string {
	return strings.Repeat(" ", width)
}
