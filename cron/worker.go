package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"fitstudio/config"
	sessionRepo "fitstudio/database/repository/session"
	"fitstudio/models"
	"fitstudio/schedule"
	"fitstudio/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeSessionReminder   = "session:reminder"
	TypeCompletionSweep   = "session:completion-sweep"
	TypeSubscriptionSweep = "subscription:expiry-sweep"
)

// SubscriptionSweeper expires lapsed member plans. Implemented by the
// subscription service.
type SubscriptionSweeper interface {
	ExpireLapsed(ctx context.Context, now time.Time) (int, error)
}

// ReminderPayload identifies the session a reminder fires for.
type ReminderPayload struct {
	SessionID string `json:"sessionId"`
	MemberID  string `json:"memberId"`
	TrainerID string `json:"trainerId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Client enqueues scheduled tasks. It implements the session service's
// ReminderScheduler interface.
type Client struct {
	asynq *asynq.Client
}

// NewClient constructs a queue client against the configured Redis.
func NewClient() *Client {
	return &Client{asynq: asynq.NewClient(redisOpts())}
}

// ScheduleReminder enqueues a reminder to fire the configured lead time
// before the session starts. Sessions starting inside the lead window get
// no reminder.
func (c *Client) ScheduleReminder(ctx context.Context, sess models.Session) error {
	fireAt := sess.ScheduledAt.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		SessionID: sess.ID,
		MemberID:  sess.MemberID,
		TrainerID: sess.TrainerID,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeSessionReminder, payload)
	_, err = c.asynq.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	return err
}

// InitWorker runs the async worker and the periodic sweeps in the
// background.
func InitWorker(repo sessionRepo.SessionRepository, sweeper SubscriptionSweeper) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionReminder, handleReminderTask(repo))
	mux.HandleFunc(TypeCompletionSweep, handleCompletionSweep(repo))
	mux.HandleFunc(TypeSubscriptionSweep, handleSubscriptionSweep(sweeper))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatalf("failed to start session worker: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts(), nil)
	if _, err := scheduler.Register("@every 10m", asynq.NewTask(TypeCompletionSweep, nil)); err != nil {
		log.Fatalf("failed to register completion sweep: %v", err)
	}
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeSubscriptionSweep, nil)); err != nil {
		log.Fatalf("failed to register subscription sweep: %v", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("failed to start task scheduler: %v", err)
		}
	}()
}

func handleReminderTask(repo sessionRepo.SessionRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		sess, err := repo.GetByID(ctx, p.SessionID)
		if err != nil {
			// Deleted sessions need no reminder.
			logger.Warn("reminder for unknown session", zap.String("sessionID", p.SessionID), zap.Error(err))
			return nil
		}
		if sess.Status == models.SessionStatusCancelled {
			return nil
		}

		logger.Info("session reminder due",
			zap.String("sessionID", sess.ID),
			zap.String("memberID", sess.MemberID),
			zap.String("trainerID", sess.TrainerID),
			zap.Time("scheduledAt", sess.ScheduledAt),
			zap.String("duration", schedule.FormatDuration(sess.DurationMinutes)))
		return nil
	}
}

// handleCompletionSweep transitions scheduled or confirmed sessions whose
// end time has passed to the completed status. This is the authoritative
// lifecycle transition; the derived display status never writes back.
func handleCompletionSweep(repo sessionRepo.SessionRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		now := time.Now()

		sessions, err := repo.ListActiveStartedBefore(ctx, now)
		if err != nil {
			return err
		}

		var sweepErr error
		completed := 0
		for _, sess := range sessions {
			if !sess.End().Before(now) {
				continue
			}
			if err := repo.SetStatus(ctx, sess.ID, models.SessionStatusCompleted); err != nil {
				logger.Error("failed to complete session", zap.String("sessionID", sess.ID), zap.Error(err))
				sweepErr = errors.Join(sweepErr, err)
				continue
			}
			completed++
		}

		if completed > 0 {
			logger.Info("completion sweep finished", zap.Int("completed", completed))
		}
		return sweepErr
	}
}

func handleSubscriptionSweep(sweeper SubscriptionSweeper) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		expired, err := sweeper.ExpireLapsed(ctx, time.Now())
		if err != nil {
			return err
		}
		if expired > 0 {
			utils.GetLogger().Info("subscription sweep finished", zap.Int("expired", expired))
		}
		return nil
	}
}
