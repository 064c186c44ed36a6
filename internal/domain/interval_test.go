package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Interval
		b        Interval
		expected bool
	}{
		{
			name:     "identical intervals overlap",
			a:        Interval{Start: 600, End: 660},
			b:        Interval{Start: 600, End: 660},
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        Interval{Start: 600, End: 660},
			b:        Interval{Start: 630, End: 690},
			expected: true,
		},
		{
			name:     "containment",
			a:        Interval{Start: 600, End: 720},
			b:        Interval{Start: 630, End: 660},
			expected: true,
		},
		{
			name:     "adjacent intervals do not overlap",
			a:        Interval{Start: 600, End: 660},
			b:        Interval{Start: 660, End: 720},
			expected: false,
		},
		{
			name:     "adjacent intervals reversed",
			a:        Interval{Start: 660, End: 720},
			b:        Interval{Start: 600, End: 660},
			expected: false,
		},
		{
			name:     "disjoint intervals",
			a:        Interval{Start: 540, End: 570},
			b:        Interval{Start: 600, End: 660},
			expected: false,
		},
		{
			name:     "one minute overlap",
			a:        Interval{Start: 600, End: 661},
			b:        Interval{Start: 660, End: 720},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			// Предикат симметричен
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_OverlapsAny(t *testing.T) {
	occupied := []Interval{
		{Start: 600, End: 660},
		{Start: 720, End: 780},
	}

	assert.True(t, Interval{Start: 630, End: 690}.OverlapsAny(occupied))
	assert.True(t, Interval{Start: 750, End: 810}.OverlapsAny(occupied))
	assert.False(t, Interval{Start: 660, End: 720}.OverlapsAny(occupied))
	assert.False(t, Interval{Start: 0, End: 60}.OverlapsAny(nil))
}

func TestNewInterval(t *testing.T) {
	start, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)

	interval, err := NewInterval(start, 45)
	require.NoError(t, err)

	assert.Equal(t, 600, interval.Start)
	assert.Equal(t, 645, interval.End)
}
