package shiftwindow

import "errors"

var (
	ErrDegenerateInterval = errors.New("start and end time must differ")
	ErrOutOfRange         = errors.New("time of day must be between 00:00 and 23:59")
)

// Interval is a time-of-day window. When End <= Start the window wraps past
// midnight and ends on the following day.
type Interval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

func NewInterval(start, end TimeOfDay) Interval {
	return Interval{Start: start, End: end}
}

// ParseInterval parses both bounds and rejects zero-length windows.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}

	iv := Interval{Start: s, End: e}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

func (iv Interval) Degenerate() bool {
	return iv.Start == iv.End
}

func (iv Interval) Validate() error {
	if !iv.Start.Valid() || !iv.End.Valid() {
		return ErrOutOfRange
	}
	if iv.Degenerate() {
		return ErrDegenerateInterval
	}
	return nil
}

// Duration returns the length in minutes. A zero-length window yields 0.
func (iv Interval) Duration() int {
	return (int(iv.End) - int(iv.Start) + MinutesPerDay) % MinutesPerDay
}

func (iv Interval) IsOvernight() bool {
	return iv.End <= iv.Start
}

// Normalize returns the bounds on a linear minute axis where end > start.
func (iv Interval) Normalize() (int, int) {
	start, end := int(iv.Start), int(iv.End)
	if iv.IsOvernight() {
		end += MinutesPerDay
	}
	return start, end
}

// Contains reports whether inner lies fully inside iv. Both windows may wrap
// past midnight; inner is placed on the same day boundary as iv before
// comparing.
func (iv Interval) Contains(inner Interval) bool {
	oStart, oEnd := iv.Normalize()

	iStart, iEnd := int(inner.Start), int(inner.End)
	if iv.IsOvernight() {
		if iStart < oStart {
			iStart += MinutesPerDay
		}
		if iEnd < oStart {
			iEnd += MinutesPerDay
		}
	}
	if iEnd <= iStart {
		iEnd += MinutesPerDay
	}

	return iStart >= oStart && iEnd <= oEnd
}

// Overlaps reports whether the two windows share at least one minute.
// Windows that only touch at an endpoint do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	aStart, aEnd := iv.Normalize()
	bStart, bEnd := other.Normalize()

	// other may also be observed on the previous or next day relative to iv
	for _, shift := range []int{-MinutesPerDay, 0, MinutesPerDay} {
		if aStart < bEnd+shift && bStart+shift < aEnd {
			return true
		}
	}
	return false
}
