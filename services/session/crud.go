package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitstudio/models"
	"fitstudio/schedule"
	"fitstudio/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func validateSession(sess models.Session) error {
	if sess.MemberID == "" {
		return fmt.Errorf("memberId is required")
	}
	if sess.TrainerID == "" {
		return fmt.Errorf("trainerId is required")
	}
	if sess.ScheduledAt.IsZero() {
		return fmt.Errorf("scheduledAt is required")
	}
	return schedule.ValidateDuration(sess.DurationMinutes)
}

// detail decorates a persisted session with the derived display status and
// a formatted duration. The persisted status field is carried unchanged.
func detail(sess models.Session, now time.Time) models.SessionDetail {
	return models.SessionDetail{
		Session:       sess,
		DisplayStatus: schedule.StatusAt(sess.ScheduledAt, sess.DurationMinutes, now),
		DurationLabel: schedule.FormatDuration(sess.DurationMinutes),
	}
}

// CreateSession books a new session: it validates the duration, checks the
// member's subscription, rejects conflicting intervals, persists the
// record, invalidates cached availability, and enqueues a reminder.
func (s *DefaultSessionService) CreateSession(ctx context.Context, sess models.Session) (*models.SessionDetail, error) {
	logger := utils.GetLogger()

	if err := validateSession(sess); err != nil {
		return nil, err
	}

	trainer, err := s.Trainers.GetByID(ctx, sess.TrainerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("failed to load trainer: %w", err)
	}
	if !trainer.Active {
		return nil, ErrTrainerInactive
	}

	if _, err := s.Members.GetByID(ctx, sess.MemberID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to load member: %w", err)
	}

	if _, err := s.Subscriptions.GetCoveringSubscription(ctx, sess.MemberID, sess.ScheduledAt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoActiveSubscription
		}
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}

	conflicts, err := s.Scheduler.FindConflicts(ctx, sess.TrainerID, sess.ScheduledAt, sess.DurationMinutes, "")
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, ScheduleConflictError{Conflicts: conflicts}
	}

	sess.Status = models.SessionStatusScheduled
	if err := s.Repo.Create(ctx, &sess); err != nil {
		return nil, err
	}
	s.invalidateFor(ctx, sess)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, sess); err != nil {
			// The booking stands even when the reminder queue is down.
			logger.Warn("failed to schedule reminder", zap.String("sessionID", sess.ID), zap.Error(err))
		}
	}

	logger.Info("session booked",
		zap.String("sessionID", sess.ID),
		zap.String("trainerID", sess.TrainerID),
		zap.Time("scheduledAt", sess.ScheduledAt))
	result := detail(sess, time.Now())
	return &result, nil
}

func (s *DefaultSessionService) GetSession(ctx context.Context, id string) (*models.SessionDetail, error) {
	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	result := detail(*sess, time.Now())
	return &result, nil
}

func (s *DefaultSessionService) ListMemberSessions(ctx context.Context, memberID string) ([]models.SessionDetail, error) {
	sessions, err := s.Repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	details := make([]models.SessionDetail, len(sessions))
	for i, sess := range sessions {
		details[i] = detail(sess, now)
	}
	return details, nil
}

func (s *DefaultSessionService) ListTrainerSessionsOn(ctx context.Context, trainerID, date string) ([]models.SessionDetail, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	sessions, err := s.Repo.ListByTrainerBetween(ctx, trainerID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	now := time.Now()
	details := make([]models.SessionDetail, len(sessions))
	for i, sess := range sessions {
		details[i] = detail(sess, now)
	}
	return details, nil
}

// RescheduleSession moves an existing session to a new start and duration,
// re-running duration validation and conflict checks. The session itself is
// excluded from the conflict scan.
func (s *DefaultSessionService) RescheduleSession(ctx context.Context, id string, req RescheduleRequest) (*models.SessionDetail, error) {
	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if req.Start.IsZero() {
		return nil, fmt.Errorf("start is required")
	}
	if err := schedule.ValidateDuration(req.DurationMinutes); err != nil {
		return nil, err
	}

	conflicts, err := s.Scheduler.FindConflicts(ctx, sess.TrainerID, req.Start, req.DurationMinutes, sess.ID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, ScheduleConflictError{Conflicts: conflicts}
	}

	if err := s.Repo.UpdateWithDocument(ctx, sess.ID, map[string]any{
		"scheduledAt":     req.Start,
		"durationMinutes": req.DurationMinutes,
		"updatedAt":       time.Now(),
	}); err != nil {
		return nil, err
	}

	// Both the old and the new day change availability.
	s.invalidateFor(ctx, *sess)
	moved := *sess
	moved.ScheduledAt = req.Start
	moved.DurationMinutes = req.DurationMinutes
	s.invalidateFor(ctx, moved)

	result := detail(moved, time.Now())
	return &result, nil
}

func (s *DefaultSessionService) ConfirmSession(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, models.SessionStatusConfirmed)
}

func (s *DefaultSessionService) CancelSession(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, models.SessionStatusCancelled)
}

func (s *DefaultSessionService) setStatus(ctx context.Context, id, status string) error {
	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to load session: %w", err)
	}
	if err := s.Repo.SetStatus(ctx, id, status); err != nil {
		return err
	}
	s.invalidateFor(ctx, *sess)
	return nil
}

func (s *DefaultSessionService) DeleteSession(ctx context.Context, id string) error {
	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to load session: %w", err)
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateFor(ctx, *sess)
	return nil
}

// invalidateFor drops cached availability for every day the session
// touches (a late booking can cross midnight).
func (s *DefaultSessionService) invalidateFor(ctx context.Context, sess models.Session) {
	startDay := sess.ScheduledAt.Format("2006-01-02")
	s.Scheduler.InvalidateAvailability(ctx, sess.TrainerID, startDay)
	if endDay := sess.End().Format("2006-01-02"); endDay != startDay {
		s.Scheduler.InvalidateAvailability(ctx, sess.TrainerID, endDay)
	}
}
