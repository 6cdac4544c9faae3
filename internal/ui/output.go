package ui

import "fmt"

// Status prefixes. Color stays off the symbols so output reads the same
// in a pipe.
const (
	markSuccess = "✓"
	markError   = "✗"
	markWarning = "⚠"
)

func status(mark, msg string) string { return mark + " " + msg }

// Success prefixes msg with a check mark.
func Success(msg string) string { return status(markSuccess, msg) }

// Successf is Success with formatting.
func Successf(format string, args ...interface{}) string {
	return Success(fmt.Sprintf(format, args...))
}

// Error prefixes msg with a cross.
func Error(msg string) string { return status(markError, msg) }

// Warning prefixes msg with a warning sign.
func Warning(msg string) string { return status(markWarning, msg) }

// FilePath renders a note path in the accent color.
func FilePath(path string) string { return Accent.Render(path) }

// Hint renders secondary text in the muted color.
func Hint(msg string) string { return Muted.Render(msg) }

// Plural formats n with noun, adding an "s" unless n is 1.
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
