package scheduling

import (
	"context"
	"fmt"
	"time"

	"fitstudio/config"
	"fitstudio/models"
	"fitstudio/schedule"
)

// FindConflicts returns the trainer's existing sessions that collide with
// the requested interval, honoring the configured booking buffer.
// excludeSessionID skips one session, so reschedules do not conflict with
// themselves.
func (s *DefaultSchedulingService) FindConflicts(ctx context.Context, trainerID string, start time.Time, durationMinutes int, excludeSessionID string) ([]models.ScheduleConflict, error) {
	buffer := config.AppConfig.BookingBufferMin

	// Any session overlapping the requested interval must start within
	// this window once buffers are accounted for.
	margin := time.Duration(schedule.MaxSessionMinutes+buffer) * time.Minute
	from := start.Add(-margin)
	to := schedule.SessionEnd(start, durationMinutes+buffer)

	sessions, err := s.Sessions.ListByTrainerBetween(ctx, trainerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load trainer schedule: %w", err)
	}

	var conflicts []models.ScheduleConflict
	for _, sess := range sessions {
		if sess.ID == excludeSessionID {
			continue
		}
		if !schedule.OverlapsBuffered(start, durationMinutes, sess.ScheduledAt, sess.DurationMinutes, buffer) {
			continue
		}
		conflicts = append(conflicts, models.ScheduleConflict{
			SessionID: sess.ID,
			TrainerID: sess.TrainerID,
			Start:     sess.ScheduledAt,
			End:       sess.End(),
		})
	}
	return conflicts, nil
}
