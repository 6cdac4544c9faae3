// Package notes stores short Markdown notes in a date-bucketed directory tree:
//
//	notes/<YYYY>/<MM>/<DD>/<HH>.<mm>.md
//
// Paths handled by this package are slash-separated and relative to the
// store root (the directory that contains "notes/"). The filesystem is the
// only source of truth; nothing is cached between calls.
package notes

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Dir is the top-level directory that holds every note.
const Dir = "notes"

// Ext is the extension of note files.
const Ext = ".md"

// DerivePath returns the storage path for a note created at t.
// Fields are taken from t as given; pass a local time to bucket by local date.
// Two notes created within the same minute map to the same path.
func DerivePath(t time.Time) string {
	return fmt.Sprintf("%s/%04d/%02d/%02d/%02d.%02d%s",
		Dir, t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), Ext)
}

// ParsePath is the inverse of DerivePath. It reports false when p is not a
// derived note path. The returned time is in loc.
func ParsePath(p string, loc *time.Location) (time.Time, bool) {
	p = path.Clean(strings.TrimPrefix(p, "./"))
	parts := strings.Split(p, "/")
	if len(parts) != 5 || parts[0] != Dir || !strings.HasSuffix(parts[4], Ext) {
		return time.Time{}, false
	}
	stamp := strings.Join(parts[1:4], "-") + " " + strings.TrimSuffix(parts[4], Ext)
	t, err := time.ParseInLocation("2006-01-02 15.04", stamp, loc)
	if err != nil {
		return time.Time{}, false
	}
	if DerivePath(t) != p {
		return time.Time{}, false
	}
	return t, true
}
