package resolve_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для расчёта доступных слотов (только чтение, без побочных эффектов)
type UseCase struct {
	appointmentRepo    AppointmentRepository
	availabilityRepo   AvailabilityRepository
	timeOffRepo        TimeOffRepository
	catalogClient      CatalogServiceClient
	timeProvider       TimeProvider
	granularityMinutes int
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	timeOffRepo TimeOffRepository,
	catalogClient CatalogServiceClient,
	granularityMinutes int,
	logger Logger,
) *UseCase {
	if granularityMinutes <= 0 {
		granularityMinutes = domain.DefaultSlotGranularityMinutes
	}
	return &UseCase{
		appointmentRepo:    appointmentRepo,
		availabilityRepo:   availabilityRepo,
		timeOffRepo:        timeOffRepo,
		catalogClient:      catalogClient,
		timeProvider:       &RealTimeProvider{},
		granularityMinutes: granularityMinutes,
		logger:             logger,
	}
}

// Execute выполняет use case расчёта доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveSlots: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу - источник длительности слота
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("ResolveSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("ResolveSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		uc.logger.Warn("ResolveSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// Нулевая или отрицательная длительность - ошибка данных, а не "все слоты свободны"
	if service.DurationMinutes <= 0 {
		uc.logger.Warn("ResolveSlots: service id=%d has invalid duration %d",
			req.ServiceID, service.DurationMinutes)
		return nil, ErrInvalidDuration
	}

	// 3. Таймзона организации: границы дат и "сегодня" считаются в ней
	loc, err := uc.resolveLocation(ctx, service.OrganizationID)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now().In(loc)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)

	emptyResponse := &Response{
		Date:            date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []types.TimeString{},
	}

	// Прошедшие даты не имеют слотов
	if isDateInPast(date, now) {
		uc.logger.Info("ResolveSlots: date %s is in the past", date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	// 4. Период отсутствия закрывает весь день независимо от окон
	blocked, err := uc.timeOffRepo.IsBlocked(ctx, req.ProfessionalID, date)
	if err != nil {
		uc.logger.Error("ResolveSlots: failed to check time off: %v", err)
		return nil, fmt.Errorf("%w: failed to check time off: %v", ErrInternal, err)
	}
	if blocked {
		uc.logger.Info("ResolveSlots: professional=%d is off on %s",
			req.ProfessionalID, date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	// 5. Окна доступности на день недели
	windows, err := uc.availabilityRepo.GetByProfessionalAndWeekday(ctx, req.ProfessionalID, int(date.Weekday()))
	if err != nil {
		uc.logger.Error("ResolveSlots: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}
	if len(windows) == 0 {
		uc.logger.Info("ResolveSlots: professional=%d does not work on weekday=%d",
			req.ProfessionalID, int(date.Weekday()))
		return emptyResponse, nil
	}

	// 6. Занятые интервалы - всегда свежая выборка
	filter := domain.ProfessionalAppointmentsFilter{
		ProfessionalID:    req.ProfessionalID,
		StartDate:         &date,
		EndDate:           &date,
		TimeConsumingOnly: true,
	}

	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ResolveSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	occupied, err := occupiedIntervals(appointments)
	if err != nil {
		uc.logger.Error("ResolveSlots: failed to build occupied intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to build occupied intervals: %v", ErrInternal, err)
	}

	// 7. Генерируем слоты
	nowMinutes := now.Hour()*60 + now.Minute()
	slots, err := generateSlots(
		windows,
		occupied,
		service.DurationMinutes,
		uc.granularityMinutes,
		isSameDay(date, now),
		nowMinutes,
	)
	if err != nil {
		uc.logger.Error("ResolveSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("ResolveSlots: generated %d slots for professional=%d, date=%s",
		len(slots), req.ProfessionalID, date.Format(domain.DateFormat))

	return &Response{
		Date:            date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

// resolveLocation загружает таймзону организации услуги
// При некорректной таймзоне в каталоге используется UTC
func (uc *UseCase) resolveLocation(ctx context.Context, organizationID int64) (*time.Location, error) {
	org, err := uc.catalogClient.GetOrganization(ctx, organizationID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrOrganizationNotFound) {
			uc.logger.Warn("ResolveSlots: organization id=%d not found", organizationID)
			return nil, ErrOrganizationNotFound
		}
		uc.logger.Error("ResolveSlots: failed to get organization id=%d: %v", organizationID, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	loc, err := time.LoadLocation(org.Timezone)
	if err != nil {
		uc.logger.Warn("ResolveSlots: invalid timezone %q for organization id=%d, falling back to UTC",
			org.Timezone, organizationID)
		return time.UTC, nil
	}

	return loc, nil
}
