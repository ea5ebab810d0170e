package shiftwindow

import (
	"errors"
	"time"
)

const MaxExpandDays = 366

var (
	ErrDateRangeReversed = errors.New("end date must not be before start date")
	ErrDateRangeTooLong  = errors.New("date range is too long")
)

// Occurrence places w on date. Overnight windows end on the following day.
func Occurrence(date time.Time, w Interval) (time.Time, time.Time) {
	y, m, d := date.Date()
	start, end := w.Normalize()
	return time.Date(y, m, d, 0, start, 0, 0, date.Location()), time.Date(y, m, d, 0, end, 0, 0, date.Location())
}

// ExpandDates lists every calendar day in [from, to].
func ExpandDates(from, to time.Time) ([]time.Time, error) {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, from.Location())

	if to.Before(from) {
		return nil, ErrDateRangeReversed
	}

	dates := make([]time.Time, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if len(dates) == MaxExpandDays {
			return nil, ErrDateRangeTooLong
		}
		dates = append(dates, d)
	}
	return dates, nil
}
