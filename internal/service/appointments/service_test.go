package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	byID map[int64]*domain.Appointment
}

func newFakeAppointmentRepo(appointments ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{byID: make(map[int64]*domain.Appointment)}
	for _, a := range appointments {
		repo.byID[a.ID] = a
	}
	return repo
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetByClientID(_ context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, a := range f.byID {
		if a.ClientID != clientID {
			continue
		}
		if status != nil && a.Status != *status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, a := range f.byID {
		if a.ProfessionalID != filter.ProfessionalID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.TimeConsumingOnly && !a.IsTimeConsuming() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	a, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64, reason string) error {
	a, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	now := time.Now()
	a.Status = domain.StatusCancelled
	a.CancellationReason = &reason
	a.CancelledAt = &now
	a.UpdatedAt = now
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(f.byID, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduledAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		OrganizationID:  1,
		ProfessionalID:  5,
		ServiceID:       10,
		ClientID:        7,
		AppointmentDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusScheduled,
		ServiceName:     "Стрижка",
		ServicePrice:    1500,
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeAppointmentRepo(scheduledAppointment(1))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "scheduled", resp.Status)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestTransition_Lifecycle(t *testing.T) {
	repo := newFakeAppointmentRepo(scheduledAppointment(1))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Transition(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	resp, err = svc.Transition(context.Background(), 1, &models.UpdateStatusRequest{Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", resp.Status)

	resp, err = svc.Transition(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestTransition_IdempotentNoOp(t *testing.T) {
	appointment := scheduledAppointment(1)
	appointment.Status = domain.StatusConfirmed
	repo := newFakeAppointmentRepo(appointment)
	svc := NewService(repo, nopLogger{})

	before := appointment.UpdatedAt

	resp, err := svc.Transition(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	// Запись не менялась
	assert.Equal(t, before, repo.byID[1].UpdatedAt)
}

func TestTransition_InvalidTransitionRejected(t *testing.T) {
	appointment := scheduledAppointment(1)
	appointment.Status = domain.StatusCompleted
	repo := newFakeAppointmentRepo(appointment)
	svc := NewService(repo, nopLogger{})

	_, err := svc.Transition(context.Background(), 1, &models.UpdateStatusRequest{Status: "scheduled"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_UnknownStatus(t *testing.T) {
	repo := newFakeAppointmentRepo(scheduledAppointment(1))
	svc := NewService(repo, nopLogger{})

	_, err := svc.Transition(context.Background(), 1, &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransition_CancelStoresReason(t *testing.T) {
	repo := newFakeAppointmentRepo(scheduledAppointment(1))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Transition(context.Background(), 1, &models.UpdateStatusRequest{
		Status: "cancelled",
		Reason: ptr.Ptr("клиент попросил перенести"),
	})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "клиент попросил перенести", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)
}

func TestTransition_NotFound(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), nopLogger{})

	_, err := svc.Transition(context.Background(), 42, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetClientAppointments(t *testing.T) {
	first := scheduledAppointment(1)
	second := scheduledAppointment(2)
	second.Status = domain.StatusCancelled
	repo := newFakeAppointmentRepo(first, second)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetClientAppointments(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = svc.GetClientAppointments(context.Background(), 7, ptr.Ptr("cancelled"))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetClientAppointments(context.Background(), 7, ptr.Ptr("pending"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetProfessionalAppointments(t *testing.T) {
	first := scheduledAppointment(1)
	second := scheduledAppointment(2)
	second.Status = domain.StatusNoShow
	repo := newFakeAppointmentRepo(first, second)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetProfessionalAppointments(context.Background(), &models.GetProfessionalAppointmentsRequest{
		ProfessionalID:    5,
		TimeConsumingOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestDelete(t *testing.T) {
	repo := newFakeAppointmentRepo(scheduledAppointment(1))
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrAppointmentNotFound)
}
