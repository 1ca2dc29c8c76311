package schedule

import "time"

// Display statuses derived from the clock. These decorate list views and
// badges only; the persisted session status remains the authoritative
// lifecycle state.
const (
	StatusUpcoming   = "upcoming"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// StatusAt derives the display status of a session scheduled at the given
// instant, as seen at now. Both ends of the in-progress window are
// inclusive.
func StatusAt(scheduled time.Time, durationMinutes int, now time.Time) string {
	if now.Before(scheduled) {
		return StatusUpcoming
	}
	if !now.After(SessionEnd(scheduled, durationMinutes)) {
		return StatusInProgress
	}
	return StatusCompleted
}

// DeriveStatus parses a scheduled instant string and derives the display
// status assuming the default session duration. Unparseable input yields
// StatusCompleted so stale or malformed records sort to the bottom of
// upcoming views instead of breaking them.
func DeriveStatus(scheduled string, now time.Time) string {
	t, err := ParseInstant(scheduled)
	if err != nil {
		return StatusCompleted
	}
	return StatusAt(t, DefaultSessionMinutes, now)
}
