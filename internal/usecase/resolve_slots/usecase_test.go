package resolve_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   domain.ProfessionalAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.appointments, f.err
}

type fakeAvailabilityRepo struct {
	windows []*domain.AvailabilityWindow
	err     error
}

func (f *fakeAvailabilityRepo) GetByProfessionalAndWeekday(_ context.Context, _ int64, _ int) ([]*domain.AvailabilityWindow, error) {
	return f.windows, f.err
}

type fakeTimeOffRepo struct {
	blocked bool
	err     error
}

func (f *fakeTimeOffRepo) IsBlocked(_ context.Context, _ int64, _ time.Time) (bool, error) {
	return f.blocked, f.err
}

type fakeCatalogClient struct {
	org    *catalogservice.Organization
	orgErr error
	svc    *catalogservice.Service
	svcErr error
}

func (f *fakeCatalogClient) GetOrganization(_ context.Context, _ int64) (*catalogservice.Organization, error) {
	return f.org, f.orgErr
}

func (f *fakeCatalogClient) GetService(_ context.Context, _ int64) (*catalogservice.Service, error) {
	return f.svc, f.svcErr
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeService(duration int) *catalogservice.Service {
	return &catalogservice.Service{
		ID:              10,
		OrganizationID:  1,
		Name:            "Стрижка",
		Price:           ptr.Ptr(1500.0),
		DurationMinutes: duration,
		Active:          true,
	}
}

func utcOrganization() *catalogservice.Organization {
	return &catalogservice.Organization{ID: 1, Name: "Салон", Timezone: "UTC"}
}

func newTestUseCase(
	appointments *fakeAppointmentRepo,
	availability *fakeAvailabilityRepo,
	timeOff *fakeTimeOffRepo,
	catalog *fakeCatalogClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(appointments, availability, timeOff, catalog, 30, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_HappyPath(t *testing.T) {
	now := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)
	appointments := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		},
	}
	availability := &fakeAvailabilityRepo{
		windows: []*domain.AvailabilityWindow{window("09:00", "12:00")},
	}

	uc := newTestUseCase(appointments, availability, &fakeTimeOffRepo{},
		&fakeCatalogClient{org: utcOrganization(), svc: activeService(60)}, now)

	// Запрос на завтра
	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 5,
		ServiceID:      10,
		Date:           time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, []string{"09:00", "11:00"}, slotStrings(resp.Slots))
	// Выборка занятых интервалов ограничена запрошенной датой
	assert.True(t, appointments.lastFilter.TimeConsumingOnly)
	require.NotNil(t, appointments.lastFilter.StartDate)
	assert.Equal(t, "2025-10-15", appointments.lastFilter.StartDate.Format(domain.DateFormat))
}

func TestExecute_TimeOffShortCircuits(t *testing.T) {
	now := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)
	availability := &fakeAvailabilityRepo{
		windows: []*domain.AvailabilityWindow{window("09:00", "12:00")},
	}

	uc := newTestUseCase(&fakeAppointmentRepo{}, availability, &fakeTimeOffRepo{blocked: true},
		&fakeCatalogClient{org: utcOrganization(), svc: activeService(60)}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 5,
		ServiceID:      10,
		Date:           time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoWindowsOnWeekday(t *testing.T) {
	now := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, &fakeTimeOffRepo{},
		&fakeCatalogClient{org: utcOrganization(), svc: activeService(60)}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 5,
		ServiceID:      10,
		Date:           time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateReturnsNoSlots(t *testing.T) {
	now := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)
	availability := &fakeAvailabilityRepo{
		windows: []*domain.AvailabilityWindow{window("09:00", "12:00")},
	}

	uc := newTestUseCase(&fakeAppointmentRepo{}, availability, &fakeTimeOffRepo{},
		&fakeCatalogClient{org: utcOrganization(), svc: activeService(60)}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 5,
		ServiceID:      10,
		Date:           time.Date(2025, 10, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodayExcludesElapsedSlots(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	availability := &fakeAvailabilityRepo{
		windows: []*domain.AvailabilityWindow{window("09:00", "12:00")},
	}

	uc := newTestUseCase(&fakeAppointmentRepo{}, availability, &fakeTimeOffRepo{},
		&fakeCatalogClient{org: utcOrganization(), svc: activeService(60)}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 5,
		ServiceID:      10,
		Date:           time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"10:30", "11:00"}, slotStrings(resp.Slots))
}

func TestExecute_InactiveService(t *testing.T) {
	now := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)
	svc := activeService(60)
	svc.Active = false

	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, &fakeTimeOffRepo{},
		&fakeCatalogClient{org: utcOrganization(), svc: svc}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 5,
		ServiceID:      10,
		Date:           time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_InvalidDurationFailsFast(t *testing.T) {
	now := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, &fakeTimeOffRepo{},
		&fakeCatalogClient{org: utcOrganization(), svc: activeService(0)}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 5,
		ServiceID:      10,
		Date:           time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, &fakeTimeOffRepo{},
		&fakeCatalogClient{svcErr: catalogservice.ErrServiceNotFound}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 5,
		ServiceID:      10,
		Date:           time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, &fakeTimeOffRepo{},
		&fakeCatalogClient{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 0, ServiceID: 10, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProfessionalID: 5, ServiceID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
