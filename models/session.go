package models

import "time"

// Persisted session status values. These are the authoritative lifecycle
// states stored on the record; the derived display status computed by the
// schedule package is a separate, cosmetic value.
const (
	SessionStatusScheduled = "scheduled"
	SessionStatusConfirmed = "confirmed"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// Session represents a booked training session between a member and a trainer.
type Session struct {
	ID              string    `bson:"id" json:"id"`
	MemberID        string    `bson:"memberId" json:"memberId"`
	TrainerID       string    `bson:"trainerId" json:"trainerId"`
	Title           string    `bson:"title,omitempty" json:"title,omitempty"`
	ScheduledAt     time.Time `bson:"scheduledAt" json:"scheduledAt"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Status          string    `bson:"status" json:"status"` // scheduled, confirmed, completed, cancelled
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// End returns the instant the session finishes.
func (s Session) End() time.Time {
	return s.ScheduledAt.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

// SessionDetail is a read view of a session decorated with the derived
// display status ("upcoming", "in-progress", "completed") and a formatted
// duration for badges and previews.
type SessionDetail struct {
	Session
	DisplayStatus string `json:"displayStatus"`
	DurationLabel string `json:"durationLabel"`
}

// ScheduleConflict reports an existing session that collides with a
// requested interval.
type ScheduleConflict struct {
	SessionID string    `json:"sessionId"`
	TrainerID string    `json:"trainerId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}
