package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// Appointment represents a booked appointment with a professional
type Appointment struct {
	ID              int64
	OrganizationID  int64
	ProfessionalID  int64
	ServiceID       int64
	ClientID        int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int // копируется из услуги при создании, последующие правки услуги не влияют
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTimeConsuming returns true if the appointment still occupies calendar time
// and must be checked for conflicts
func (a *Appointment) IsTimeConsuming() bool {
	return a.Status == StatusScheduled ||
		a.Status == StatusConfirmed ||
		a.Status == StatusInProgress
}

// IsTerminal returns true if the appointment reached a historical status
// that never blocks new slots
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted ||
		a.Status == StatusCancelled ||
		a.Status == StatusNoShow
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// OccupiedInterval returns the [start, start+duration) span consumed by the
// appointment as minutes from midnight
func (a *Appointment) OccupiedInterval() (Interval, error) {
	return NewInterval(a.StartTime, a.DurationMinutes)
}

// ValidStatus returns true for a known appointment status
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// allowedTransitions staff-driven lifecycle of an appointment.
// Transition to the current status is an idempotent no-op and is always allowed.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled:  {StatusConfirmed, StatusInProgress, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// CanTransitionTo returns true if the appointment may move to the target status
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	if a.Status == target {
		return true
	}
	for _, allowed := range allowedTransitions[a.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ProfessionalAppointmentsFilter фильтр для выборки записей профессионала
type ProfessionalAppointmentsFilter struct {
	ProfessionalID    int64
	StartDate         *time.Time         // начало периода (опционально)
	EndDate           *time.Time         // конец периода (опционально)
	Status            *AppointmentStatus // фильтр по статусу (опционально)
	TimeConsumingOnly bool               // только статусы, занимающие время в календаре
}
