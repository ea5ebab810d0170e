package shiftwindow

import (
	"errors"
	"testing"
	"time"
)

func TestOccurrence(t *testing.T) {
	date := day(2025, time.June, 30)

	start, end := Occurrence(date, iv("08:00", "16:00"))
	if !start.Equal(at(2025, time.June, 30, 8, 0)) || !end.Equal(at(2025, time.June, 30, 16, 0)) {
		t.Errorf("day window = %v - %v", start, end)
	}

	start, end = Occurrence(date, iv("22:00", "06:00"))
	if !start.Equal(at(2025, time.June, 30, 22, 0)) || !end.Equal(at(2025, time.July, 1, 6, 0)) {
		t.Errorf("overnight window = %v - %v", start, end)
	}
}

func TestExpandDates(t *testing.T) {
	dates, err := ExpandDates(day(2025, time.February, 27), day(2025, time.March, 2))
	if err != nil {
		t.Fatalf("ExpandDates returned error: %v", err)
	}
	want := []time.Time{
		day(2025, time.February, 27),
		day(2025, time.February, 28),
		day(2025, time.March, 1),
		day(2025, time.March, 2),
	}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d", len(dates), len(want))
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Errorf("dates[%d] = %v, want %v", i, dates[i], want[i])
		}
	}

	single, err := ExpandDates(day(2025, time.May, 1), day(2025, time.May, 1))
	if err != nil || len(single) != 1 {
		t.Errorf("single day: %v, %v", single, err)
	}

	if _, err := ExpandDates(day(2025, time.May, 2), day(2025, time.May, 1)); !errors.Is(err, ErrDateRangeReversed) {
		t.Errorf("reversed range: error = %v", err)
	}
	if _, err := ExpandDates(day(2025, time.January, 1), day(2026, time.June, 1)); !errors.Is(err, ErrDateRangeTooLong) {
		t.Errorf("long range: error = %v", err)
	}
}

func TestCurrentShift(t *testing.T) {
	shifts := []NamedWindow{
		{ID: 1, Name: "Morning", Window: iv("06:00", "14:00")},
		{ID: 2, Name: "Afternoon", Window: iv("14:00", "22:00")},
		{ID: 3, Name: "Night", Window: iv("22:00", "06:00")},
	}

	tests := []struct {
		name    string
		now     time.Time
		id      int64
		startAt time.Time
		endAt   time.Time
	}{
		{"morning", at(2025, time.April, 10, 9, 0), 1, at(2025, time.April, 10, 6, 0), at(2025, time.April, 10, 14, 0)},
		{"handover belongs to next shift", at(2025, time.April, 10, 14, 0), 2, at(2025, time.April, 10, 14, 0), at(2025, time.April, 10, 22, 0)},
		{"night before midnight", at(2025, time.April, 10, 23, 0), 3, at(2025, time.April, 10, 22, 0), at(2025, time.April, 11, 6, 0)},
		{"night after midnight", at(2025, time.April, 10, 3, 0), 3, at(2025, time.April, 9, 22, 0), at(2025, time.April, 10, 6, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := CurrentShift(shifts, tt.now)
			if !ok {
				t.Fatal("no current shift found")
			}
			if b.ShiftID != tt.id {
				t.Errorf("ShiftID = %d, want %d", b.ShiftID, tt.id)
			}
			if !b.StartAt.Equal(tt.startAt) || !b.EndAt.Equal(tt.endAt) {
				t.Errorf("boundary = %v - %v, want %v - %v", b.StartAt, b.EndAt, tt.startAt, tt.endAt)
			}
		})
	}

	if _, ok := CurrentShift(shifts[:2], at(2025, time.April, 10, 23, 0)); ok {
		t.Error("expected no shift at 23:00 without a night shift")
	}
}
