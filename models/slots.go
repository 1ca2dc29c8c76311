package models

import "time"

// TimeSlot represents a bookable calendar slot projected for UI pickers.
// Slots are generated on demand and never persisted.
type TimeSlot struct {
	Label  string `json:"label"` // e.g., "09:30"
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
}

// AvailableSlot is a TimeSlot resolved onto a concrete date for a trainer,
// after conflicting bookings have been filtered out.
type AvailableSlot struct {
	Date   string    `json:"date"` // e.g., "2025-02-25"
	Label  string    `json:"label"`
	Hour   int       `json:"hour"`
	Minute int       `json:"minute"`
	Start  time.Time `json:"start"`
}
