package session

import (
	"errors"
	"fmt"

	"fitstudio/models"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrTrainerNotFound      = errors.New("trainer not found")
	ErrTrainerInactive      = errors.New("trainer is not active")
	ErrMemberNotFound       = errors.New("member not found")
	ErrNoActiveSubscription = errors.New("member has no subscription covering the session")
)

// ScheduleConflictError signals that a requested interval collides with
// existing bookings.
type ScheduleConflictError struct {
	Conflicts []models.ScheduleConflict
}

func (e ScheduleConflictError) Error() string {
	return fmt.Sprintf("requested time conflicts with %d existing session(s)", len(e.Conflicts))
}
