package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInstant(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := ParseInstant(value)
	require.NoError(t, err)
	return parsed
}

func TestSessionEndAddsExactDuration(t *testing.T) {
	start := mustInstant(t, "2025-03-10 10:00")

	for _, minutes := range []int{0, 1, 15, 45, 60, 90, 480} {
		end := SessionEnd(start, minutes)
		assert.Equal(t, time.Duration(minutes)*time.Minute, end.Sub(start))
	}
}

func TestSessionEndCrossesDayBoundary(t *testing.T) {
	start := mustInstant(t, "2025-03-10 23:30")
	end := SessionEnd(start, 60)

	assert.Equal(t, 11, end.Day())
	assert.Equal(t, 0, end.Hour())
	assert.Equal(t, 30, end.Minute())
}

func TestSessionEndLabel(t *testing.T) {
	assert.Equal(t, "2025-03-10 11:30", SessionEndLabel("2025-03-10 10:00", 90))
	assert.Equal(t, "2025-03-11 00:30", SessionEndLabel("2025-03-10 23:30", 60))
	assert.Equal(t, "2025-03-10 09:30", SessionEndLabel("2025-03-10", 570))
}

func TestSessionEndLabelFailsSoftOnBadInput(t *testing.T) {
	assert.Equal(t, "", SessionEndLabel("invalid-date", 60))
	assert.Equal(t, "", SessionEndLabel("", 60))
	assert.Equal(t, "", SessionEndLabel("25/03/10", 60))
}

func TestOverlaps(t *testing.T) {
	tenAM := mustInstant(t, "2025-03-10 10:00")
	halfPastTen := mustInstant(t, "2025-03-10 10:30")
	elevenAM := mustInstant(t, "2025-03-10 11:00")

	tests := []struct {
		name   string
		startA time.Time
		durA   int
		startB time.Time
		durB   int
		want   bool
	}{
		{"overlapping", tenAM, 60, halfPastTen, 60, true},
		{"touching intervals do not overlap", tenAM, 60, elevenAM, 60, false},
		{"contained", tenAM, 120, halfPastTen, 30, true},
		{"identical", tenAM, 60, tenAM, 60, true},
		{"disjoint", tenAM, 30, elevenAM, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.startA, tt.durA, tt.startB, tt.durB))
			// Symmetry must hold for every pair.
			assert.Equal(t, tt.want, Overlaps(tt.startB, tt.durB, tt.startA, tt.durA))
		})
	}
}

func TestOverlapsBuffered(t *testing.T) {
	tenAM := mustInstant(t, "2025-03-10 10:00")
	elevenAM := mustInstant(t, "2025-03-10 11:00")

	// Back-to-back sessions conflict once a minimum gap is enforced.
	assert.False(t, OverlapsBuffered(tenAM, 60, elevenAM, 60, 0))
	assert.True(t, OverlapsBuffered(tenAM, 60, elevenAM, 60, 15))

	// Zero buffer behaves exactly like the unbuffered form.
	assert.Equal(t,
		Overlaps(tenAM, 60, elevenAM, 60),
		OverlapsBuffered(tenAM, 60, elevenAM, 60, 0))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{90, "1h 30min"},
		{60, "1h"},
		{45, "45min"},
		{0, "0min"},
		{1, "1min"},
		{120, "2h"},
		{125, "2h 5min"},
		{480, "8h"},
		{-30, "-30min"},
		{-90, "-1h 30min"},
		{-60, "-1h"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes), "FormatDuration(%d)", tt.minutes)
	}
}

func TestValidateDuration(t *testing.T) {
	assert.NoError(t, ValidateDuration(15))
	assert.NoError(t, ValidateDuration(60))
	assert.NoError(t, ValidateDuration(480))

	assert.Error(t, ValidateDuration(14))
	assert.Error(t, ValidateDuration(481))
	assert.Error(t, ValidateDuration(0))
	assert.Error(t, ValidateDuration(-30))
}

func TestStatusAt(t *testing.T) {
	scheduled := mustInstant(t, "2025-03-10 10:00")

	assert.Equal(t, StatusUpcoming, StatusAt(scheduled, 60, scheduled.Add(-time.Minute)))
	assert.Equal(t, StatusInProgress, StatusAt(scheduled, 60, scheduled))
	assert.Equal(t, StatusInProgress, StatusAt(scheduled, 60, scheduled.Add(30*time.Minute)))
	assert.Equal(t, StatusInProgress, StatusAt(scheduled, 60, scheduled.Add(60*time.Minute)))
	assert.Equal(t, StatusCompleted, StatusAt(scheduled, 60, scheduled.Add(61*time.Minute)))
}

func TestDeriveStatus(t *testing.T) {
	now := mustInstant(t, "2025-03-10 12:00")

	assert.Equal(t, StatusUpcoming, DeriveStatus("2025-03-10 14:00", now))
	assert.Equal(t, StatusInProgress, DeriveStatus("2025-03-10 11:30", now))
	assert.Equal(t, StatusCompleted, DeriveStatus("2025-03-10 09:00", now))
	assert.Equal(t, StatusCompleted, DeriveStatus("not-a-date", now))
}

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots(10, 16, 60)
	require.Len(t, slots, 6)

	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Label
	}
	assert.Equal(t, []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00"}, labels)
}

func TestGenerateTimeSlotsHalfHour(t *testing.T) {
	slots := GenerateTimeSlots(9, 11, 30)
	require.Len(t, slots, 4)

	assert.Equal(t, "09:00", slots[0].Label)
	assert.Equal(t, "09:30", slots[1].Label)
	assert.Equal(t, "10:00", slots[2].Label)
	assert.Equal(t, "10:30", slots[3].Label)

	// Strictly increasing, no duplicates.
	for i := 1; i < len(slots); i++ {
		prev := slots[i-1].Hour*60 + slots[i-1].Minute
		cur := slots[i].Hour*60 + slots[i].Minute
		assert.Greater(t, cur, prev)
	}
}

func TestGenerateTimeSlotsDegenerateInput(t *testing.T) {
	assert.Empty(t, GenerateTimeSlots(9, 10, 0))
	assert.Empty(t, GenerateTimeSlots(9, 10, -15))
	assert.Empty(t, GenerateTimeSlots(15, 10, 30))
	assert.Empty(t, GenerateTimeSlots(10, 10, 30))
}

func TestFunctionsAreIdempotent(t *testing.T) {
	start := mustInstant(t, "2025-03-10 10:00")
	other := mustInstant(t, "2025-03-10 10:45")

	assert.Equal(t, SessionEnd(start, 90), SessionEnd(start, 90))
	assert.Equal(t, Overlaps(start, 60, other, 60), Overlaps(start, 60, other, 60))
	assert.Equal(t, FormatDuration(75), FormatDuration(75))
	assert.Equal(t, GenerateTimeSlots(9, 21, 30), GenerateTimeSlots(9, 21, 30))
}
