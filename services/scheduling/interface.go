package scheduling

import (
	"context"
	"time"

	sessionRepo "fitstudio/database/repository/session"
	"fitstudio/models"

	"github.com/go-redis/redis/v8"
)

// SchedulingService computes trainer availability and detects booking
// conflicts. It is the only consumer of the schedule package that touches
// persisted state; the arithmetic itself stays pure.
type SchedulingService interface {
	AvailableSlots(ctx context.Context, trainerID, date string) ([]models.AvailableSlot, error)
	FindConflicts(ctx context.Context, trainerID string, start time.Time, durationMinutes int, excludeSessionID string) ([]models.ScheduleConflict, error)
	InvalidateAvailability(ctx context.Context, trainerID, date string)
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	Sessions sessionRepo.SessionRepository
	Cache    *redis.Client // optional; nil disables availability caching
}
