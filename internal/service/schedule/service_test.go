package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	timeoffRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/timeoff"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeAvailabilityRepo struct {
	windows   []*domain.AvailabilityWindow
	getErr    error
	createErr error
	updateErr error
	deleteErr error
	nextID    int64
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *window
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.windows = append(f.windows, &created)
	return &created, nil
}

func (f *fakeAvailabilityRepo) Update(_ context.Context, window *domain.AvailabilityWindow) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, w := range f.windows {
		if w.ID == window.ID {
			f.windows[i] = window
			return nil
		}
	}
	return availabilityRepo.ErrWindowNotFound
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, professionalID, windowID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, w := range f.windows {
		if w.ID == windowID && w.ProfessionalID == professionalID {
			f.windows = append(f.windows[:i], f.windows[i+1:]...)
			return nil
		}
	}
	return availabilityRepo.ErrWindowNotFound
}

func (f *fakeAvailabilityRepo) GetByID(_ context.Context, id int64) (*domain.AvailabilityWindow, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, w := range f.windows {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, availabilityRepo.ErrWindowNotFound
}

func (f *fakeAvailabilityRepo) GetByProfessional(_ context.Context, professionalID int64, onlyActive bool) ([]*domain.AvailabilityWindow, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := make([]*domain.AvailabilityWindow, 0)
	for _, w := range f.windows {
		if w.ProfessionalID != professionalID {
			continue
		}
		if onlyActive && !w.Active {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

type fakeTimeOffRepo struct {
	periods []*domain.TimeOffPeriod
	nextID  int64
}

func (f *fakeTimeOffRepo) Create(_ context.Context, period *domain.TimeOffPeriod) (*domain.TimeOffPeriod, error) {
	f.nextID++
	created := *period
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.periods = append(f.periods, &created)
	return &created, nil
}

func (f *fakeTimeOffRepo) Delete(_ context.Context, professionalID, periodID int64) error {
	for i, p := range f.periods {
		if p.ID == periodID && p.ProfessionalID == professionalID {
			f.periods = append(f.periods[:i], f.periods[i+1:]...)
			return nil
		}
	}
	return timeoffRepo.ErrPeriodNotFound
}

func (f *fakeTimeOffRepo) GetByProfessional(_ context.Context, professionalID int64) ([]*domain.TimeOffPeriod, error) {
	out := make([]*domain.TimeOffPeriod, 0)
	for _, p := range f.periods {
		if p.ProfessionalID == professionalID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeTimeOffRepo) IsBlocked(_ context.Context, professionalID int64, date time.Time) (bool, error) {
	for _, p := range f.periods {
		if p.ProfessionalID == professionalID && p.Contains(date) {
			return true, nil
		}
	}
	return false, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeAvailabilityRepo, *fakeTimeOffRepo) {
	availability := &fakeAvailabilityRepo{}
	timeOff := &fakeTimeOffRepo{}
	return NewService(availability, timeOff, nopLogger{}), availability, timeOff
}

func TestCreateWindow(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.CreateWindow(context.Background(), &models.CreateWindowRequest{
		ProfessionalID: 5,
		Weekday:        1,
		StartTime:      "09:00",
		EndTime:        "12:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.True(t, resp.Active)
	assert.Equal(t, "09:00", resp.StartTime)
}

func TestCreateWindow_InvalidTimeRange(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"start after end", "12:00", "09:00"},
		{"start equals end", "09:00", "09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateWindow(context.Background(), &models.CreateWindowRequest{
				ProfessionalID: 5,
				Weekday:        1,
				StartTime:      tt.start,
				EndTime:        tt.end,
			})
			assert.ErrorIs(t, err, ErrInvalidTimeRange)
		})
	}
}

func TestCreateWindow_OverlappingWindowRejected(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateWindow(context.Background(), &models.CreateWindowRequest{
		ProfessionalID: 5, Weekday: 1, StartTime: "09:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	// Пересечение с существующим окном того же дня недели
	_, err = svc.CreateWindow(context.Background(), &models.CreateWindowRequest{
		ProfessionalID: 5, Weekday: 1, StartTime: "11:00", EndTime: "14:00",
	})
	assert.ErrorIs(t, err, ErrOverlappingWindow)

	// Примыкающее окно допустимо
	_, err = svc.CreateWindow(context.Background(), &models.CreateWindowRequest{
		ProfessionalID: 5, Weekday: 1, StartTime: "12:00", EndTime: "14:00",
	})
	assert.NoError(t, err)

	// Другой день недели не конфликтует
	_, err = svc.CreateWindow(context.Background(), &models.CreateWindowRequest{
		ProfessionalID: 5, Weekday: 2, StartTime: "09:00", EndTime: "12:00",
	})
	assert.NoError(t, err)
}

func TestUpdateWindow_SoftDisable(t *testing.T) {
	svc, availability, _ := newTestService()

	created, err := svc.CreateWindow(context.Background(), &models.CreateWindowRequest{
		ProfessionalID: 5, Weekday: 1, StartTime: "09:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	resp, err := svc.UpdateWindow(context.Background(), &models.UpdateWindowRequest{
		ProfessionalID: 5,
		WindowID:       created.ID,
		Weekday:        1,
		StartTime:      "09:00",
		EndTime:        "12:00",
		Active:         false,
	})
	require.NoError(t, err)
	assert.False(t, resp.Active)

	// Отключенное окно не участвует в проверке пересечений
	active, err := availability.GetByProfessional(context.Background(), 5, true)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestUpdateWindow_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateWindow(context.Background(), &models.UpdateWindowRequest{
		ProfessionalID: 5,
		WindowID:       42,
		Weekday:        1,
		StartTime:      "09:00",
		EndTime:        "12:00",
		Active:         true,
	})
	assert.ErrorIs(t, err, ErrWindowNotFound)
}

func TestUpdateWindow_ExcludesSelfFromOverlapCheck(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateWindow(context.Background(), &models.CreateWindowRequest{
		ProfessionalID: 5, Weekday: 1, StartTime: "09:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	// Сдвиг собственных границ не конфликтует сам с собой
	resp, err := svc.UpdateWindow(context.Background(), &models.UpdateWindowRequest{
		ProfessionalID: 5,
		WindowID:       created.ID,
		Weekday:        1,
		StartTime:      "10:00",
		EndTime:        "13:00",
		Active:         true,
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestDeleteWindow(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateWindow(context.Background(), &models.CreateWindowRequest{
		ProfessionalID: 5, Weekday: 1, StartTime: "09:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWindow(context.Background(), 5, created.ID))
	assert.ErrorIs(t, svc.DeleteWindow(context.Background(), 5, created.ID), ErrWindowNotFound)
}

func TestCreateTimeOff(t *testing.T) {
	svc, _, timeOff := newTestService()

	resp, err := svc.CreateTimeOff(context.Background(), &models.CreateTimeOffRequest{
		ProfessionalID: 5,
		StartDate:      "2025-12-24",
		EndDate:        "2025-12-26",
		Title:          "Отпуск",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-12-24", resp.StartDate)

	// Границы периода включительны
	blocked, err := timeOff.IsBlocked(context.Background(), 5, time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = timeOff.IsBlocked(context.Background(), 5, time.Date(2025, 12, 27, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestCreateTimeOff_InvalidDateRange(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateTimeOff(context.Background(), &models.CreateTimeOffRequest{
		ProfessionalID: 5,
		StartDate:      "2025-12-26",
		EndDate:        "2025-12-24",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCreateTimeOff_SingleDay(t *testing.T) {
	svc, _, _ := newTestService()

	// Однодневный период: start == end
	_, err := svc.CreateTimeOff(context.Background(), &models.CreateTimeOffRequest{
		ProfessionalID: 5,
		StartDate:      "2025-12-24",
		EndDate:        "2025-12-24",
	})
	assert.NoError(t, err)
}

func TestDeleteTimeOff_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	assert.ErrorIs(t, svc.DeleteTimeOff(context.Background(), 5, 42), ErrPeriodNotFound)
}

func TestGetSchedule(t *testing.T) {
	svc, availability, _ := newTestService()

	_, err := svc.CreateWindow(context.Background(), &models.CreateWindowRequest{
		ProfessionalID: 5, Weekday: 1, StartTime: "09:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	// Отключенные окна тоже попадают в расписание
	availability.windows = append(availability.windows, &domain.AvailabilityWindow{
		ID:             99,
		ProfessionalID: 5,
		Weekday:        time.Tuesday,
		StartTime:      types.TimeString("14:00"),
		EndTime:        types.TimeString("18:00"),
		Active:         false,
	})

	_, err = svc.CreateTimeOff(context.Background(), &models.CreateTimeOffRequest{
		ProfessionalID: 5,
		StartDate:      "2025-12-24",
		EndDate:        "2025-12-26",
		Title:          "Отпуск",
	})
	require.NoError(t, err)

	resp, err := svc.GetSchedule(context.Background(), 5)
	require.NoError(t, err)

	assert.Len(t, resp.Windows, 2)
	assert.Len(t, resp.TimeOff, 1)
}
