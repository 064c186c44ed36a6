package domain

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Interval is a half-open [Start, End) span expressed as minutes from midnight.
//
// This is the single overlap predicate shared by slot resolution and the
// booking write path. Two intervals overlap only if they actually intersect:
// an interval ending exactly where another begins does NOT overlap it.
type Interval struct {
	Start int
	End   int
}

// NewInterval builds the occupied interval [start, start+duration)
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return Interval{}, err
	}
	if durationMinutes <= 0 {
		return Interval{}, fmt.Errorf("interval duration must be positive, got %d", durationMinutes)
	}
	return Interval{Start: startMin, End: startMin + durationMinutes}, nil
}

// Overlaps reports whether i and other intersect.
// Boundary-touching intervals (i.End == other.Start) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return other.Start < i.End && other.End > i.Start
}

// OverlapsAny reports whether i intersects at least one of the intervals
func (i Interval) OverlapsAny(intervals []Interval) bool {
	for _, other := range intervals {
		if i.Overlaps(other) {
			return true
		}
	}
	return false
}
