package schedule

import "fmt"

// Session duration bounds, in minutes.
const (
	MinSessionMinutes     = 15
	MaxSessionMinutes     = 480
	DefaultSessionMinutes = 60
)

// ValidateDuration checks that a session duration falls within the allowed
// bounds. Call sites that skip validation still get defined behavior from
// the other functions in this package.
func ValidateDuration(minutes int) error {
	if minutes < MinSessionMinutes || minutes > MaxSessionMinutes {
		return fmt.Errorf("duration must be between %d and %d minutes, got %d", MinSessionMinutes, MaxSessionMinutes, minutes)
	}
	return nil
}

// FormatDuration renders minutes as a compact human label: "1h 30min",
// "1h", "45min", "0min". Negative values keep their sign: "-30min",
// "-1h 30min".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		if minutes > -60 {
			return fmt.Sprintf("%dmin", minutes)
		}
		return "-" + FormatDuration(-minutes)
	}
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	hours := minutes / 60
	rem := minutes % 60
	if rem == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dmin", hours, rem)
}
