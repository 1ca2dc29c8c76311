package session

import (
	"context"
	"time"

	memberRepo "fitstudio/database/repository/member"
	sessionRepo "fitstudio/database/repository/session"
	subscriptionRepo "fitstudio/database/repository/subscription"
	trainerRepo "fitstudio/database/repository/trainer"
	"fitstudio/models"
	"fitstudio/services/scheduling"
)

// SessionService owns the authoritative session lifecycle: booking,
// rescheduling, confirmation, cancellation. Reads are decorated with the
// derived display status, which never feeds back into persisted state.
type SessionService interface {
	CreateSession(ctx context.Context, sess models.Session) (*models.SessionDetail, error)
	GetSession(ctx context.Context, id string) (*models.SessionDetail, error)
	ListMemberSessions(ctx context.Context, memberID string) ([]models.SessionDetail, error)
	ListTrainerSessionsOn(ctx context.Context, trainerID, date string) ([]models.SessionDetail, error)
	RescheduleSession(ctx context.Context, id string, req RescheduleRequest) (*models.SessionDetail, error)
	ConfirmSession(ctx context.Context, id string) error
	CancelSession(ctx context.Context, id string) error
	DeleteSession(ctx context.Context, id string) error
}

// RescheduleRequest carries the new timing for an existing session.
type RescheduleRequest struct {
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"durationMinutes"`
}

// ReminderScheduler enqueues a reminder for a booked session. Implemented
// by the cron package; nil disables reminders.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, sess models.Session) error
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Repo          sessionRepo.SessionRepository
	Members       memberRepo.MemberRepository
	Trainers      trainerRepo.TrainerRepository
	Subscriptions subscriptionRepo.SubscriptionRepository
	Scheduler     scheduling.SchedulingService
	Reminders     ReminderScheduler
}
