package shiftwindow

import "time"

type NamedWindow struct {
	ID     int64
	Name   string
	Window Interval
}

// Boundary is a shift placed on the timeline around a given instant.
type Boundary struct {
	ShiftID   int64     `json:"shiftID"`
	ShiftName string    `json:"shiftName"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
}

// CurrentShift finds the shift running at now and returns its concrete start
// and end. Start is inclusive, end exclusive. An overnight shift observed
// after midnight started the previous day.
func CurrentShift(shifts []NamedWindow, now time.Time) (Boundary, bool) {
	nowMinute := now.Hour()*60 + now.Minute()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, shift := range shifts {
		w := shift.Window
		if w.Degenerate() {
			continue
		}

		start, end := int(w.Start), int(w.End)
		var day time.Time
		switch {
		case !w.IsOvernight() && nowMinute >= start && nowMinute < end:
			day = today
		case w.IsOvernight() && nowMinute >= start:
			day = today
		case w.IsOvernight() && nowMinute < end:
			day = today.AddDate(0, 0, -1)
		default:
			continue
		}

		startAt, endAt := Occurrence(day, w)
		return Boundary{
			ShiftID:   shift.ID,
			ShiftName: shift.Name,
			StartAt:   startAt,
			EndAt:     endAt,
		}, true
	}

	return Boundary{}, false
}
