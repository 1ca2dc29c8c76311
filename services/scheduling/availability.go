package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fitstudio/config"
	"fitstudio/models"
	"fitstudio/schedule"
	"fitstudio/utils"

	"go.uber.org/zap"
)

// AvailableSlots returns the open calendar slots for a trainer on a given
// date ("2006-01-02"). Slots are generated from the studio's opening hours
// and filtered against the trainer's existing sessions; results are cached
// per trainer and date until a booking mutation invalidates them.
func (s *DefaultSchedulingService) AvailableSlots(ctx context.Context, trainerID, date string) ([]models.AvailableSlot, error) {
	logger := utils.GetLogger()

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	if cached, ok := s.cachedAvailability(ctx, trainerID, date); ok {
		return cached, nil
	}

	cfg := config.AppConfig
	slots := schedule.GenerateTimeSlots(cfg.OpenHour, cfg.CloseHour, cfg.SlotIntervalMinutes)
	if len(slots) == 0 {
		return []models.AvailableSlot{}, nil
	}

	// Widen the query window so sessions starting before the day but
	// running into it are still considered.
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	from := dayStart.Add(-time.Duration(schedule.MaxSessionMinutes) * time.Minute)
	to := dayStart.AddDate(0, 0, 1)

	sessions, err := s.Sessions.ListByTrainerBetween(ctx, trainerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load trainer schedule: %w", err)
	}

	available := make([]models.AvailableSlot, 0, len(slots))
	for _, slot := range slots {
		start := dayStart.Add(time.Duration(slot.Hour*60+slot.Minute) * time.Minute)
		if s.slotTaken(start, cfg.SlotIntervalMinutes, sessions, cfg.BookingBufferMin) {
			continue
		}
		available = append(available, models.AvailableSlot{
			Date:   date,
			Label:  slot.Label,
			Hour:   slot.Hour,
			Minute: slot.Minute,
			Start:  start,
		})
	}

	s.cacheAvailability(ctx, trainerID, date, available)
	logger.Debug("computed availability",
		zap.String("trainerID", trainerID),
		zap.String("date", date),
		zap.Int("openSlots", len(available)))
	return available, nil
}

func (s *DefaultSchedulingService) slotTaken(start time.Time, durationMinutes int, sessions []models.Session, bufferMinutes int) bool {
	for _, sess := range sessions {
		if schedule.OverlapsBuffered(start, durationMinutes, sess.ScheduledAt, sess.DurationMinutes, bufferMinutes) {
			return true
		}
	}
	return false
}

func availabilityCacheKey(trainerID, date string) string {
	return utils.AvailabilityCachePrefix + trainerID + ":" + date
}

func (s *DefaultSchedulingService) cachedAvailability(ctx context.Context, trainerID, date string) ([]models.AvailableSlot, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, availabilityCacheKey(trainerID, date)).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.AvailableSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultSchedulingService) cacheAvailability(ctx context.Context, trainerID, date string, slots []models.AvailableSlot) {
	if s.Cache == nil {
		return
	}
	payload, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, availabilityCacheKey(trainerID, date), payload, utils.AvailabilityCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability", zap.String("trainerID", trainerID), zap.Error(err))
	}
}

// InvalidateAvailability drops the cached slot set for a trainer and date.
// Called after any booking mutation touching that day.
func (s *DefaultSchedulingService) InvalidateAvailability(ctx context.Context, trainerID, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, availabilityCacheKey(trainerID, date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("trainerID", trainerID), zap.String("date", date), zap.Error(err))
	}
}
