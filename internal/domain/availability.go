package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AvailabilityWindow represents a recurring weekly interval during which
// a professional accepts bookings
type AvailabilityWindow struct {
	ID             int64
	ProfessionalID int64
	Weekday        time.Weekday // 0 = Sunday ... 6 = Saturday
	StartTime      types.TimeString
	EndTime        types.TimeString
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Interval returns the window span as minutes from midnight
func (w *AvailabilityWindow) Interval() (Interval, error) {
	startMin, err := w.StartTime.Minutes()
	if err != nil {
		return Interval{}, err
	}
	endMin, err := w.EndTime.Minutes()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: startMin, End: endMin}, nil
}

// Overlaps reports whether two windows on the same weekday intersect.
// Windows on different weekdays never overlap.
func (w *AvailabilityWindow) Overlaps(other *AvailabilityWindow) bool {
	if w.Weekday != other.Weekday {
		return false
	}
	wi, err := w.Interval()
	if err != nil {
		return false
	}
	oi, err := other.Interval()
	if err != nil {
		return false
	}
	return wi.Overlaps(oi)
}
