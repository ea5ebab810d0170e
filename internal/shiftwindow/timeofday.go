package shiftwindow

import (
	"encoding/json"
	"fmt"
	"strings"
)

const MinutesPerDay = 1440

// TimeOfDay is a wall-clock time expressed as minutes since midnight, in [0, 1440).
type TimeOfDay int

type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time %q: %s", e.Input, e.Reason)
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS". Seconds are validated and then dropped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, &ParseError{Input: s, Reason: "expected HH:MM or HH:MM:SS"}
	}

	limits := []int{23, 59, 59}
	values := make([]int, len(parts))
	for i, part := range parts {
		v, ok := parseTwoDigits(part)
		if !ok {
			return 0, &ParseError{Input: s, Reason: "expected HH:MM or HH:MM:SS"}
		}
		if v > limits[i] {
			return 0, &ParseError{Input: s, Reason: "value out of range"}
		}
		values[i] = v
	}

	return TimeOfDay(values[0]*60 + values[1]), nil
}

func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func parseTwoDigits(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// String formats t as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
