// Package schedule provides pure time arithmetic for session booking:
// end-time computation, interval overlap checks, duration formatting,
// display-status derivation, and calendar slot generation. Every function
// is deterministic and side-effect free; invalid temporal input maps to a
// defined sentinel instead of an error escaping to rendering code.
package schedule

import (
	"fmt"
	"time"
)

// instantLayouts are the accepted formats for temporal string input, tried
// in order.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseInstant parses a date or date-time string into an instant. Callers
// that need the fail-soft contract collapse the error to a sentinel; the
// explicit error return keeps the parse step testable on its own.
func ParseInstant(value string) (time.Time, error) {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized instant %q", value)
}

// SessionEnd returns start plus the given number of minutes. Instant
// arithmetic alone accounts for day-boundary crossings.
func SessionEnd(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}

// SessionEndLabel computes the end of a session from a start string and a
// duration, formatted for form previews. On unparseable input it returns
// the empty string so callers can render a fallback without error handling.
func SessionEndLabel(start string, durationMinutes int) string {
	t, err := ParseInstant(start)
	if err != nil {
		return ""
	}
	return SessionEnd(t, durationMinutes).Format("2006-01-02 15:04")
}

// Overlaps reports whether two half-open intervals [start, start+dur)
// intersect. Intervals that merely touch do not overlap.
func Overlaps(startA time.Time, durationA int, startB time.Time, durationB int) bool {
	return OverlapsBuffered(startA, durationA, startB, durationB, 0)
}

// OverlapsBuffered is Overlaps with both durations inflated by a shared
// buffer, used to enforce a minimum gap between back-to-back bookings.
// The check is symmetric in the two intervals.
func OverlapsBuffered(startA time.Time, durationA int, startB time.Time, durationB int, bufferMinutes int) bool {
	endA := SessionEnd(startA, durationA+bufferMinutes)
	endB := SessionEnd(startB, durationB+bufferMinutes)
	return startA.Before(endB) && startB.Before(endA)
}
