package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan(t *testing.T) {
	input := `device_id,device_name,product,rated_speed,06:00-14:00,14:00-22:00,22:00-06:00
PRS-001,Press Line 1,Bracket A,42,x,,x
CNC-101,CNC Cell 1,Housing C,12.5,,x,
`

	plan, err := ParsePlan(strings.NewReader(input))
	require.NoError(t, err)

	wantShifts := []string{"Morning", "Afternoon", "Night"}
	require.Len(t, plan.Shifts, len(wantShifts))
	for i, name := range wantShifts {
		assert.Equal(t, name, plan.Shifts[i].Name)
	}
	assert.True(t, plan.Shifts[2].Window.IsOvernight(), "night shift should be overnight")

	require.Len(t, plan.Rows, 2)
	assert.Equal(t, []int{0, 2}, plan.Rows[0].Shifts)
	assert.Equal(t, 12.5, plan.Rows[1].RatedSpeed)
}

func TestParsePlanErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing info column", "device_id,device_name,product,06:00-14:00\nA,B,C,x\n"},
		{"no shift columns", "device_id,device_name,product,rated_speed\nA,B,C,1\n"},
		{"bad shift header", "device_id,device_name,product,rated_speed,6-14\nA,B,C,1,x\n"},
		{"degenerate shift", "device_id,device_name,product,rated_speed,08:00-08:00\nA,B,C,1,x\n"},
		{"overlapping shifts", "device_id,device_name,product,rated_speed,06:00-14:00,12:00-20:00\nA,B,C,1,x,\n"},
		{"zero rated speed", "device_id,device_name,product,rated_speed,06:00-14:00\nA,B,C,0,x\n"},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlan(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
