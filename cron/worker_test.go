package cron

import (
	"context"
	"testing"
	"time"

	"fitstudio/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type sweepRepoStub struct {
	active []models.Session
	status map[string]string
}

func (s *sweepRepoStub) EnsureIndexes() error { return nil }
func (s *sweepRepoStub) Create(ctx context.Context, sess *models.Session) error { return nil }
func (s *sweepRepoStub) Delete(ctx context.Context, id string) error { return nil }
func (s *sweepRepoStub) UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error {
	return nil
}
func (s *sweepRepoStub) ListByMember(ctx context.Context, memberID string) ([]models.Session, error) {
	return nil, nil
}
func (s *sweepRepoStub) ListByTrainerBetween(ctx context.Context, trainerID string, from, to time.Time) ([]models.Session, error) {
	return nil, nil
}

func (s *sweepRepoStub) GetByID(ctx context.Context, id string) (*models.Session, error) {
	for _, sess := range s.active {
		if sess.ID == id {
			return &sess, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *sweepRepoStub) SetStatus(ctx context.Context, id, status string) error {
	if s.status == nil {
		s.status = map[string]string{}
	}
	s.status[id] = status
	return nil
}

func (s *sweepRepoStub) ListActiveStartedBefore(ctx context.Context, before time.Time) ([]models.Session, error) {
	var out []models.Session
	for _, sess := range s.active {
		if sess.ScheduledAt.Before(before) {
			out = append(out, sess)
		}
	}
	return out, nil
}

func TestCompletionSweepMarksOnlyFinishedSessions(t *testing.T) {
	now := time.Now()
	repo := &sweepRepoStub{active: []models.Session{
		{ID: "done", ScheduledAt: now.Add(-2 * time.Hour), DurationMinutes: 60, Status: models.SessionStatusScheduled},
		{ID: "running", ScheduledAt: now.Add(-30 * time.Minute), DurationMinutes: 60, Status: models.SessionStatusConfirmed},
	}}

	handler := handleCompletionSweep(repo)
	err := handler(context.Background(), asynq.NewTask(TypeCompletionSweep, nil))
	require.NoError(t, err)

	assert.Equal(t, models.SessionStatusCompleted, repo.status["done"])
	// Still in progress: start has passed but the end has not.
	assert.NotContains(t, repo.status, "running")
}

func TestReminderHandlerSkipsCancelledSessions(t *testing.T) {
	repo := &sweepRepoStub{active: []models.Session{
		{ID: "s1", MemberID: "m1", TrainerID: "t1", ScheduledAt: time.Now().Add(time.Hour), DurationMinutes: 60, Status: models.SessionStatusCancelled},
	}}

	task := asynq.NewTask(TypeSessionReminder, []byte(`{"sessionId":"s1","memberId":"m1","trainerId":"t1"}`))
	err := handleReminderTask(repo)(context.Background(), task)
	assert.NoError(t, err)
}

func TestReminderHandlerToleratesDeletedSessions(t *testing.T) {
	repo := &sweepRepoStub{}

	task := asynq.NewTask(TypeSessionReminder, []byte(`{"sessionId":"gone"}`))
	err := handleReminderTask(repo)(context.Background(), task)
	assert.NoError(t, err)
}
