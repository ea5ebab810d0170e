package shiftwindow

import (
	"reflect"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	today := day(2025, time.March, 14)
	morning := []Slot{
		{ID: 1, Date: today, Window: iv("09:00", "10:00")},
		{ID: 2, Date: today, Window: iv("11:00", "12:00")},
	}

	tests := []struct {
		name  string
		slots []Slot
		now   time.Time
		want  map[int64]Status
	}{
		{
			name:  "one running and one upcoming",
			slots: morning,
			now:   at(2025, time.March, 14, 9, 30),
			want:  map[int64]Status{1: StatusCurrent, 2: StatusNext},
		},
		{
			name:  "before everything",
			slots: morning,
			now:   at(2025, time.March, 14, 8, 0),
			want:  map[int64]Status{1: StatusNext, 2: StatusNormal},
		},
		{
			name:  "start bound is inclusive",
			slots: morning,
			now:   at(2025, time.March, 14, 9, 0),
			want:  map[int64]Status{1: StatusCurrent, 2: StatusNext},
		},
		{
			name:  "end bound is inclusive",
			slots: morning,
			now:   at(2025, time.March, 14, 10, 0),
			want:  map[int64]Status{1: StatusCurrent, 2: StatusNext},
		},
		{
			name:  "after everything",
			slots: morning,
			now:   at(2025, time.March, 14, 13, 0),
			want:  map[int64]Status{1: StatusNormal, 2: StatusNormal},
		},
		{
			name:  "other days are normal",
			slots: morning,
			now:   at(2025, time.March, 15, 8, 0),
			want:  map[int64]Status{1: StatusNormal, 2: StatusNormal},
		},
		{
			name: "tie on start goes to lowest id",
			slots: []Slot{
				{ID: 7, Date: today, Window: iv("14:00", "15:00")},
				{ID: 3, Date: today, Window: iv("14:00", "16:00")},
				{ID: 5, Date: today, Window: iv("18:00", "19:00")},
			},
			now:  at(2025, time.March, 14, 12, 0),
			want: map[int64]Status{7: StatusNormal, 3: StatusNext, 5: StatusNormal},
		},
		{
			name: "overnight running in early morning",
			slots: []Slot{
				{ID: 1, Date: today, Window: iv("22:00", "06:00")},
				{ID: 2, Date: today, Window: iv("08:00", "12:00")},
			},
			now:  at(2025, time.March, 14, 2, 0),
			want: map[int64]Status{1: StatusCurrent, 2: StatusNext},
		},
		{
			name: "overnight running in the evening",
			slots: []Slot{
				{ID: 1, Date: today, Window: iv("22:00", "06:00")},
			},
			now:  at(2025, time.March, 14, 23, 15),
			want: map[int64]Status{1: StatusCurrent},
		},
		{
			name: "overnight not yet started",
			slots: []Slot{
				{ID: 1, Date: today, Window: iv("22:00", "06:00")},
				{ID: 2, Date: today, Window: iv("08:00", "12:00")},
			},
			now:  at(2025, time.March, 14, 14, 0),
			want: map[int64]Status{1: StatusNext, 2: StatusNormal},
		},
		{
			name:  "empty input",
			slots: nil,
			now:   at(2025, time.March, 14, 14, 0),
			want:  map[int64]Status{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.slots, tt.now)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyIsIdempotentAndOrderIndependent(t *testing.T) {
	today := day(2025, time.March, 14)
	slots := []Slot{
		{ID: 4, Date: today, Window: iv("15:00", "16:00")},
		{ID: 2, Date: today, Window: iv("11:00", "12:00")},
		{ID: 9, Date: day(2025, time.March, 13), Window: iv("11:00", "12:00")},
		{ID: 1, Date: today, Window: iv("09:00", "10:00")},
	}
	reversed := make([]Slot, len(slots))
	for i := range slots {
		reversed[len(slots)-1-i] = slots[i]
	}

	now := at(2025, time.March, 14, 9, 45)
	first := Classify(slots, now)
	second := Classify(slots, now)
	third := Classify(reversed, now)

	if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(first, third) {
		t.Errorf("results differ: %v / %v / %v", first, second, third)
	}
	want := map[int64]Status{1: StatusCurrent, 2: StatusNext, 4: StatusNormal, 9: StatusNormal}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("Classify = %v, want %v", first, want)
	}
	if slots[0].ID != 4 {
		t.Error("input slice was modified")
	}
}

func TestClassifyUsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	today := time.Date(2025, time.March, 14, 0, 0, 0, 0, loc)
	slots := []Slot{{ID: 1, Date: today, Window: iv("07:00", "09:00")}}

	// 23:30 UTC on the 13th is 07:30 on the 14th in UTC+8
	now := time.Date(2025, time.March, 13, 23, 30, 0, 0, time.UTC).In(loc)
	got := Classify(slots, now)
	if got[1] != StatusCurrent {
		t.Errorf("status = %v, want current", got[1])
	}
}
