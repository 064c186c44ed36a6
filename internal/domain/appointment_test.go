package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_IsTimeConsuming(t *testing.T) {
	tests := []struct {
		status   AppointmentStatus
		expected bool
	}{
		{StatusScheduled, true},
		{StatusConfirmed, true},
		{StatusInProgress, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.expected, a.IsTimeConsuming())
			assert.Equal(t, !tt.expected, a.IsTerminal())
		})
	}
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     AppointmentStatus
		to       AppointmentStatus
		expected bool
	}{
		{"scheduled to confirmed", StatusScheduled, StatusConfirmed, true},
		{"scheduled to in_progress", StatusScheduled, StatusInProgress, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to no_show", StatusScheduled, StatusNoShow, true},
		{"scheduled to completed", StatusScheduled, StatusCompleted, false},
		{"confirmed to in_progress", StatusConfirmed, StatusInProgress, true},
		{"confirmed to scheduled", StatusConfirmed, StatusScheduled, false},
		{"in_progress to completed", StatusInProgress, StatusCompleted, true},
		{"in_progress to no_show", StatusInProgress, StatusNoShow, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusScheduled, false},
		{"same status is idempotent no-op", StatusCompleted, StatusCompleted, true},
		{"same status scheduled", StatusScheduled, StatusScheduled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.expected, a.CanTransitionTo(tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusScheduled))
	assert.True(t, ValidStatus(StatusNoShow))
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus(""))
}
