package schedule

import (
	"fmt"

	"fitstudio/models"
)

// GenerateTimeSlots produces consecutive calendar slots from startHour
// (inclusive) to endHour (exclusive), stepping by intervalMinutes.
// Degenerate input (non-positive interval, startHour >= endHour) returns
// an empty sequence; the interval guard also keeps a non-positive step
// from looping forever.
func GenerateTimeSlots(startHour, endHour, intervalMinutes int) []models.TimeSlot {
	if intervalMinutes <= 0 || startHour >= endHour {
		return []models.TimeSlot{}
	}

	var slots []models.TimeSlot
	for minute := startHour * 60; minute < endHour*60; minute += intervalMinutes {
		h := minute / 60
		m := minute % 60
		slots = append(slots, models.TimeSlot{
			Label:  fmt.Sprintf("%02d:%02d", h, m),
			Hour:   h,
			Minute: m,
		})
	}
	return slots
}
