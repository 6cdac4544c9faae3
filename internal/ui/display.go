package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-runewidth"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 120

// TermWidth returns the width of the terminal on stdout, or a fixed
// fallback when stdout is redirected.
func TermWidth() int {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// Truncate shortens s to at most width display cells, ending with an
// ellipsis when anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
