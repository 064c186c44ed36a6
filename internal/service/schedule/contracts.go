package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	Update(ctx context.Context, window *domain.AvailabilityWindow) error
	Delete(ctx context.Context, professionalID, windowID int64) error
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error)
	GetByProfessional(ctx context.Context, professionalID int64, onlyActive bool) ([]*domain.AvailabilityWindow, error)
}

// TimeOffRepository интерфейс репозитория периодов отсутствия
type TimeOffRepository interface {
	Create(ctx context.Context, period *domain.TimeOffPeriod) (*domain.TimeOffPeriod, error)
	Delete(ctx context.Context, professionalID, periodID int64) error
	GetByProfessional(ctx context.Context, professionalID int64) ([]*domain.TimeOffPeriod, error)
	IsBlocked(ctx context.Context, professionalID int64, date time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
