// Package dates parses the day arguments accepted by list filters.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// ParseDay parses a day argument into midnight of that day in now's
// location. It accepts "today", "yesterday", or YYYY-MM-DD.
func ParseDay(arg string, now time.Time) (time.Time, error) {
	day := strings.ToLower(strings.TrimSpace(arg))
	switch day {
	case "", "today":
		return StartOfDay(now), nil
	case "yesterday":
		return StartOfDay(now).AddDate(0, 0, -1), nil
	}

	parsed, err := time.ParseInLocation(dayLayout, day, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD, today, or yesterday", arg)
	}
	return parsed, nil
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Window is a half-open [From, To) time range. A zero bound is open.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !t.Before(w.To) {
		return false
	}
	return true
}

// IsZero reports whether the window has no bounds.
func (w Window) IsZero() bool {
	return w.From.IsZero() && w.To.IsZero()
}

// On is the window covering the single day starting at day.
func On(day time.Time) Window {
	return Window{From: day, To: day.AddDate(0, 0, 1)}
}
