package shiftwindow

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TimeOfDay
		valid bool
	}{
		{"midnight", "00:00", 0, true},
		{"morning", "09:30", 570, true},
		{"last minute", "23:59", 1439, true},
		{"with seconds", "08:15:59", 495, true},
		{"postgres time", "22:00:00", 1320, true},
		{"hour out of range", "24:00", 0, false},
		{"minute out of range", "12:60", 0, false},
		{"second out of range", "12:00:60", 0, false},
		{"single digit hour", "9:00", 0, false},
		{"not a time", "abc", 0, false},
		{"empty string", "", 0, false},
		{"too many fields", "01:02:03:04", 0, false},
		{"signed", "-1:00", 0, false},
		{"trailing space", "09:00 ", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.valid {
				if err != nil {
					t.Fatalf("ParseTimeOfDay(%q) returned error: %v", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.input, got, tt.want)
				}
				return
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, want *ParseError", tt.input, err)
			}
			if parseErr.Input != tt.input {
				t.Errorf("ParseError.Input = %q, want %q", parseErr.Input, tt.input)
			}
		})
	}
}

func TestTimeOfDayRoundTrip(t *testing.T) {
	for m := TimeOfDay(0); m < MinutesPerDay; m++ {
		got, err := ParseTimeOfDay(m.String())
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q) returned error: %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("round trip of %d gave %d", m, got)
		}
	}
}

func TestTimeOfDayJSON(t *testing.T) {
	var v struct {
		At TimeOfDay `json:"at"`
	}
	if err := json.Unmarshal([]byte(`{"at":"21:05:00"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.At != 21*60+5 {
		t.Errorf("At = %d, want %d", v.At, 21*60+5)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"at":"21:05"}` {
		t.Errorf("marshal = %s", out)
	}

	if err := json.Unmarshal([]byte(`{"at":"25:00"}`), &v); err == nil {
		t.Error("expected error for out of range time")
	}
}
