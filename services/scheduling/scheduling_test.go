package scheduling

import (
	"context"
	"testing"
	"time"

	"fitstudio/config"
	"fitstudio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionRepoStub struct {
	sessions []models.Session
	err      error
}

func (s *sessionRepoStub) EnsureIndexes() error { return nil }
func (s *sessionRepoStub) Create(ctx context.Context, sess *models.Session) error { return nil }
func (s *sessionRepoStub) GetByID(ctx context.Context, id string) (*models.Session, error) {
	return nil, nil
}
func (s *sessionRepoStub) UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error {
	return nil
}
func (s *sessionRepoStub) SetStatus(ctx context.Context, id, status string) error { return nil }
func (s *sessionRepoStub) Delete(ctx context.Context, id string) error { return nil }
func (s *sessionRepoStub) ListByMember(ctx context.Context, memberID string) ([]models.Session, error) {
	return nil, nil
}
func (s *sessionRepoStub) ListActiveStartedBefore(ctx context.Context, before time.Time) ([]models.Session, error) {
	return nil, nil
}

func (s *sessionRepoStub) ListByTrainerBetween(ctx context.Context, trainerID string, from, to time.Time) ([]models.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Session
	for _, sess := range s.sessions {
		if sess.TrainerID == trainerID {
			out = append(out, sess)
		}
	}
	return out, nil
}

func setStudioConfig(openHour, closeHour, interval, buffer int) {
	config.AppConfig.OpenHour = openHour
	config.AppConfig.CloseHour = closeHour
	config.AppConfig.SlotIntervalMinutes = interval
	config.AppConfig.BookingBufferMin = buffer
}

func bookedAt(t *testing.T, trainerID, at string, minutes int) models.Session {
	t.Helper()
	start, err := time.Parse("2006-01-02 15:04", at)
	require.NoError(t, err)
	return models.Session{
		ID:              "existing-" + at,
		TrainerID:       trainerID,
		MemberID:        "m1",
		ScheduledAt:     start,
		DurationMinutes: minutes,
		Status:          models.SessionStatusScheduled,
	}
}

func TestAvailableSlotsFiltersBookedIntervals(t *testing.T) {
	setStudioConfig(9, 12, 60, 0)
	svc := &DefaultSchedulingService{
		Sessions: &sessionRepoStub{sessions: []models.Session{
			bookedAt(t, "t1", "2025-03-10 10:00", 60),
		}},
	}

	slots, err := svc.AvailableSlots(context.Background(), "t1", "2025-03-10")
	require.NoError(t, err)

	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Label
	}
	assert.Equal(t, []string{"09:00", "11:00"}, labels)
}

func TestAvailableSlotsHonorsBookingBuffer(t *testing.T) {
	setStudioConfig(9, 12, 60, 15)
	svc := &DefaultSchedulingService{
		Sessions: &sessionRepoStub{sessions: []models.Session{
			bookedAt(t, "t1", "2025-03-10 10:00", 60),
		}},
	}

	// With a 15-minute gap enforced, the 09:00 and 11:00 slots press too
	// close against the booking and drop out as well.
	slots, err := svc.AvailableSlots(context.Background(), "t1", "2025-03-10")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsOtherTrainerUnaffected(t *testing.T) {
	setStudioConfig(9, 12, 60, 0)
	svc := &DefaultSchedulingService{
		Sessions: &sessionRepoStub{sessions: []models.Session{
			bookedAt(t, "t1", "2025-03-10 10:00", 60),
		}},
	}

	slots, err := svc.AvailableSlots(context.Background(), "t2", "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestAvailableSlotsDegenerateHours(t *testing.T) {
	setStudioConfig(21, 9, 30, 0)
	svc := &DefaultSchedulingService{Sessions: &sessionRepoStub{}}

	slots, err := svc.AvailableSlots(context.Background(), "t1", "2025-03-10")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsInvalidDate(t *testing.T) {
	setStudioConfig(9, 12, 60, 0)
	svc := &DefaultSchedulingService{Sessions: &sessionRepoStub{}}

	_, err := svc.AvailableSlots(context.Background(), "t1", "not-a-date")
	assert.Error(t, err)
}

func TestFindConflicts(t *testing.T) {
	setStudioConfig(9, 21, 30, 0)
	existing := bookedAt(t, "t1", "2025-03-10 10:00", 60)
	svc := &DefaultSchedulingService{
		Sessions: &sessionRepoStub{sessions: []models.Session{existing}},
	}

	start, _ := time.Parse("2006-01-02 15:04", "2025-03-10 10:30")
	conflicts, err := svc.FindConflicts(context.Background(), "t1", start, 60, "")
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, existing.ID, conflicts[0].SessionID)
	assert.Equal(t, existing.ScheduledAt, conflicts[0].Start)
	assert.Equal(t, existing.End(), conflicts[0].End)
}

func TestFindConflictsTouchingIntervalsAllowed(t *testing.T) {
	setStudioConfig(9, 21, 30, 0)
	svc := &DefaultSchedulingService{
		Sessions: &sessionRepoStub{sessions: []models.Session{
			bookedAt(t, "t1", "2025-03-10 10:00", 60),
		}},
	}

	// Back-to-back is fine without a buffer.
	start, _ := time.Parse("2006-01-02 15:04", "2025-03-10 11:00")
	conflicts, err := svc.FindConflicts(context.Background(), "t1", start, 60, "")
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflictsExcludesSession(t *testing.T) {
	setStudioConfig(9, 21, 30, 0)
	existing := bookedAt(t, "t1", "2025-03-10 10:00", 60)
	svc := &DefaultSchedulingService{
		Sessions: &sessionRepoStub{sessions: []models.Session{existing}},
	}

	// A reschedule keeping the same time must not conflict with itself.
	conflicts, err := svc.FindConflicts(context.Background(), "t1", existing.ScheduledAt, 60, existing.ID)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}
