package shiftwindow

import (
	"errors"
	"testing"
)

func TestValidateProduction(t *testing.T) {
	tests := []struct {
		name       string
		shift      Interval
		production Interval
		valid      bool
	}{
		{"exact match", iv("08:00", "16:00"), iv("08:00", "16:00"), true},
		{"overnight shift wide production", iv("20:00", "04:00"), iv("21:00", "03:00"), true},
		{"starts before overnight shift", iv("20:00", "04:00"), iv("19:00", "23:00"), false},
		{"ends after day shift", iv("08:00", "16:00"), iv("09:00", "16:01"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduction(tt.shift, tt.production)
			if tt.valid {
				if err != nil {
					t.Errorf("ValidateProduction returned error: %v", err)
				}
				return
			}

			var windowErr *InvalidWindowError
			if !errors.As(err, &windowErr) {
				t.Fatalf("error = %v, want *InvalidWindowError", err)
			}
			if windowErr.ShiftStart != tt.shift.Start || windowErr.ShiftEnd != tt.shift.End {
				t.Errorf("error bounds = %v-%v, want %v-%v", windowErr.ShiftStart, windowErr.ShiftEnd, tt.shift.Start, tt.shift.End)
			}
		})
	}
}

func TestValidateProductionMessage(t *testing.T) {
	err := ValidateProduction(iv("20:00", "04:00"), iv("19:00", "23:00"))
	want := "production times must be within shift hours (20:00 - 04:00)"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestValidateProductionDegenerate(t *testing.T) {
	if err := ValidateProduction(iv("08:00", "08:00"), iv("09:00", "10:00")); !errors.Is(err, ErrDegenerateInterval) {
		t.Errorf("degenerate shift: error = %v", err)
	}
	if err := ValidateProduction(iv("08:00", "16:00"), iv("09:00", "09:00")); !errors.Is(err, ErrDegenerateInterval) {
		t.Errorf("degenerate production: error = %v", err)
	}
}

func TestResolveProduction(t *testing.T) {
	shift := iv("22:00", "06:00")

	got, err := ResolveProduction(shift, Interval{}, true)
	if err != nil {
		t.Fatalf("useEntireShift returned error: %v", err)
	}
	if got != shift {
		t.Errorf("useEntireShift = %v, want %v", got, shift)
	}

	got, err = ResolveProduction(shift, iv("23:00", "01:00"), false)
	if err != nil {
		t.Fatalf("returned error: %v", err)
	}
	if got != iv("23:00", "01:00") {
		t.Errorf("got %v", got)
	}

	if _, err := ResolveProduction(shift, iv("12:00", "13:00"), false); err == nil {
		t.Error("expected error for production outside shift")
	}

	if _, err := ResolveProduction(iv("07:00", "07:00"), Interval{}, true); !errors.Is(err, ErrDegenerateInterval) {
		t.Errorf("degenerate shift with useEntireShift: error = %v", err)
	}
}
