package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Slot represents a candidate appointment start time that fits inside an
// availability window without overlapping any occupied interval
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// End returns the end boundary of the slot
func (s *Slot) End() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
