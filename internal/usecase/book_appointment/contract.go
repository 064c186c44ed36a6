package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// Create сохраняет запись; при нарушении exclusion constraint
	// возвращает appointment.ErrSlotConflict
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)

	// GetByProfessionalWithFilter получает записи профессионала на дату
	// Внутри транзакции выборка выполняется с блокировкой FOR UPDATE
	GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByProfessionalAndWeekday(ctx context.Context, professionalID int64, weekday int) ([]*domain.AvailabilityWindow, error)
}

// TimeOffRepository интерфейс репозитория периодов отсутствия
type TimeOffRepository interface {
	IsBlocked(ctx context.Context, professionalID int64, date time.Time) (bool, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetOrganization(ctx context.Context, organizationID int64) (*catalogservice.Organization, error)
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет fn в сериализуемой транзакции
	// с повтором при serialization failure
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
