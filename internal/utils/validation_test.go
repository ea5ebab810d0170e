package utils

import (
	"testing"
	"time"

	"github.com/nexplant/production-manager/backend/internal/domain"
	"github.com/nexplant/production-manager/backend/internal/shiftwindow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(start, end string) shiftwindow.Interval {
	return shiftwindow.NewInterval(shiftwindow.MustParseTimeOfDay(start), shiftwindow.MustParseTimeOfDay(end))
}

func shift(name, start, end string) *domain.Shift {
	w := window(start, end)
	return &domain.Shift{Name: name, StartTime: w.Start, EndTime: w.End}
}

func TestValidateShiftAgainstExisting(t *testing.T) {
	existing := []*domain.Shift{
		shift("Morning", "06:00", "14:00"),
		shift("Night", "22:00", "06:00"),
	}

	tests := []struct {
		name      string
		candidate shiftwindow.Interval
		conflict  string
	}{
		{"fills the gap", window("14:00", "22:00"), ""},
		{"overlaps morning", window("13:00", "18:00"), "Morning"},
		{"overlaps night before midnight", window("20:00", "23:00"), "Night"},
		{"overlaps night after midnight", window("05:00", "07:00"), "Morning"},
		{"inside night", window("01:00", "03:00"), "Night"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShiftAgainstExisting(tt.candidate, existing)
			if tt.conflict == "" {
				assert.NoError(t, err)
				return
			}

			var overlapErr *ShiftOverlapError
			require.ErrorAs(t, err, &overlapErr)
			assert.Equal(t, tt.conflict, overlapErr.Name)
		})
	}

	err := ValidateShiftAgainstExisting(window("09:00", "09:00"), nil)
	assert.ErrorIs(t, err, shiftwindow.ErrDegenerateInterval)
}

func TestBuildScheduleOccurrences(t *testing.T) {
	w := window("22:00", "02:00")
	base := &domain.ProductionSchedule{
		Name:      "Night run",
		StartTime: w.Start,
		EndTime:   w.End,
	}
	dates := []time.Time{
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
	}

	schedules := BuildScheduleOccurrences(base, dates)
	require.Len(t, schedules, 2)

	for i, ps := range schedules {
		assert.True(t, ps.ScheduledDate.Equal(dates[i]), "schedules[%d].ScheduledDate = %v", i, ps.ScheduledDate)
		assert.True(t, ps.StartAt.Equal(dates[i].Add(22*time.Hour)), "schedules[%d].StartAt = %v", i, ps.StartAt)
		assert.True(t, ps.EndAt.Equal(dates[i].Add(26*time.Hour)), "schedules[%d].EndAt = %v", i, ps.EndAt)
		assert.Equal(t, base.Name, ps.Name)
	}

	assert.NotSame(t, schedules[0], schedules[1])
}
