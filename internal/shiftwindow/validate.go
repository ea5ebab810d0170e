package shiftwindow

import "fmt"

// InvalidWindowError is returned when a production window does not lie
// within its shift. It carries the shift bounds for display.
type InvalidWindowError struct {
	ShiftStart TimeOfDay
	ShiftEnd   TimeOfDay
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("production times must be within shift hours (%s - %s)", e.ShiftStart, e.ShiftEnd)
}

// ValidateProduction checks that production lies fully inside shift.
func ValidateProduction(shift, production Interval) error {
	if err := shift.Validate(); err != nil {
		return err
	}
	if err := production.Validate(); err != nil {
		return err
	}

	if !shift.Contains(production) {
		return &InvalidWindowError{ShiftStart: shift.Start, ShiftEnd: shift.End}
	}
	return nil
}

// ResolveProduction returns the production window to persist. With
// useEntireShift the window is the shift itself and production is ignored.
func ResolveProduction(shift, production Interval, useEntireShift bool) (Interval, error) {
	if useEntireShift {
		if err := shift.Validate(); err != nil {
			return Interval{}, err
		}
		return shift, nil
	}

	if err := ValidateProduction(shift, production); err != nil {
		return Interval{}, err
	}
	return production, nil
}
