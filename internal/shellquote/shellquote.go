// Package shellquote builds strings that are safe to hand to "sh -c".
package shellquote

import "strings"

// Quote wraps s in single quotes, escaping any internal single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Command appends quoted args to a user-supplied command prefix, which is
// passed through as written so it may carry its own flags.
func Command(prefix string, args ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, arg := range args {
		b.WriteByte(' ')
		b.WriteString(Quote(arg))
	}
	return b.String()
}
