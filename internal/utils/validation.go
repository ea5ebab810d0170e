package utils

import (
	"fmt"
	"time"

	"github.com/nexplant/production-manager/backend/internal/domain"
	"github.com/nexplant/production-manager/backend/internal/shiftwindow"
)

// ShiftOverlapError names the existing shift a new window collides with.
type ShiftOverlapError struct {
	Name   string
	Window shiftwindow.Interval
}

func (e *ShiftOverlapError) Error() string {
	return fmt.Sprintf("shift overlaps with %q (%s - %s)", e.Name, e.Window.Start, e.Window.End)
}

// ValidateShiftAgainstExisting rejects a degenerate window and any window
// that shares time with one of the company's existing shifts. Shifts that
// only meet at a handover minute are allowed.
func ValidateShiftAgainstExisting(candidate shiftwindow.Interval, existing []*domain.Shift) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	for _, shift := range existing {
		if candidate.Overlaps(shift.Window()) {
			return &ShiftOverlapError{Name: shift.Name, Window: shift.Window()}
		}
	}

	return nil
}

// BuildScheduleOccurrences copies base onto every date, filling the concrete
// start and end timestamps from the base window.
func BuildScheduleOccurrences(base *domain.ProductionSchedule, dates []time.Time) []*domain.ProductionSchedule {
	window := base.Window()
	schedules := make([]*domain.ProductionSchedule, 0, len(dates))

	for _, date := range dates {
		ps := *base
		ps.ScheduledDate = date
		ps.StartAt, ps.EndAt = shiftwindow.Occurrence(date, window)
		schedules = append(schedules, &ps)
	}

	return schedules
}
