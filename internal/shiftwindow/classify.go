package shiftwindow

import "time"

type Status string

const (
	StatusCurrent Status = "current"
	StatusNext    Status = "next"
	StatusNormal  Status = "normal"
)

// Slot is a schedule placed on a concrete calendar date. Date is compared by
// its own year, month and day, so it should be built in the same location as
// the now passed to Classify. Recurring schedules must be expanded into one
// Slot per date before classification.
type Slot struct {
	ID     int64
	Date   time.Time
	Window Interval
}

// Classify tags every slot relative to now. Slot IDs are expected to be
// unique. Only slots dated on now's calendar day can be current or next;
// among the slots that have not started yet the earliest start is next,
// ties going to the lowest ID.
func Classify(slots []Slot, now time.Time) map[int64]Status {
	result := make(map[int64]Status, len(slots))

	nowMinute := now.Hour()*60 + now.Minute()
	nowYear, nowMonth, nowDay := now.Date()

	var (
		nextID    int64
		nextStart int
		hasNext   bool
	)

	for _, slot := range slots {
		result[slot.ID] = StatusNormal

		y, m, d := slot.Date.Date()
		if y != nowYear || m != nowMonth || d != nowDay {
			continue
		}

		start, end := slot.Window.Normalize()
		adjusted := nowMinute
		// early-morning continuation of an overnight window; an overnight run
		// that has not started yet today stays a next candidate
		if slot.Window.IsOvernight() && nowMinute < start && nowMinute <= int(slot.Window.End) {
			adjusted += MinutesPerDay
		}

		if adjusted >= start && adjusted <= end {
			result[slot.ID] = StatusCurrent
			continue
		}

		if start > adjusted {
			if !hasNext || start < nextStart || (start == nextStart && slot.ID < nextID) {
				nextID = slot.ID
				nextStart = start
				hasNext = true
			}
		}
	}

	if hasNext {
		result[nextID] = StatusNext
	}

	return result
}
