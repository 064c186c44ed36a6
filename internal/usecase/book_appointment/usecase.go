package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	catalogClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

// storageRetryDelay пауза перед повторным прогоном транзакции
// после транзиентной ошибки хранилища
const storageRetryDelay = 100 * time.Millisecond

// UseCase use case для создания записи к профессионалу
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	timeOffRepo      TimeOffRepository
	catalogClient    CatalogServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	timeOffRepo TimeOffRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		timeOffRepo:      timeOffRepo,
		catalogClient:    catalogClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции,
// занятые интервалы читаются с блокировкой FOR UPDATE
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: client=%d, professional=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу - длительность копируется в запись на момент создания
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("BookAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("BookAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		uc.logger.Warn("BookAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	if service.DurationMinutes <= 0 {
		uc.logger.Warn("BookAppointment: service id=%d has invalid duration %d",
			req.ServiceID, service.DurationMinutes)
		return nil, ErrInvalidDuration
	}

	// 3. Таймзона организации определяет "сейчас" для проверки прошедшего времени
	loc, err := uc.resolveLocation(ctx, service.OrganizationID)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now().In(loc)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)

	// 4. Интервал запрашиваемой записи - тот же предикат пересечения,
	// что и в расчёте доступных слотов
	slot, err := domain.NewInterval(req.StartTime, service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("BookAppointment: invalid start time %s: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if err := validateNotInPast(date, slot.Start, now); err != nil {
		uc.logger.Warn("BookAppointment: requested time is in the past: %s %s",
			date.Format(domain.DateFormat), req.StartTime)
		return nil, err
	}

	// Результат транзакции
	var result *domain.Appointment

	// 5. Проверки и вставка - атомарно, в сериализуемой транзакции
	attempt := func(ctx context.Context) error {
		return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			// 5.1. Период отсутствия перепроверяется внутри транзакции
			blocked, err := uc.timeOffRepo.IsBlocked(txCtx, req.ProfessionalID, date)
			if err != nil {
				uc.logger.Error("BookAppointment: failed to check time off: %v", err)
				return fmt.Errorf("%w: failed to check time off: %v", ErrInternal, err)
			}
			if blocked {
				uc.logger.Warn("BookAppointment: professional=%d is off on %s",
					req.ProfessionalID, date.Format(domain.DateFormat))
				return ErrProfessionalTimeOff
			}

			// 5.2. Интервал должен целиком помещаться в окно доступности
			windows, err := uc.availabilityRepo.GetByProfessionalAndWeekday(txCtx, req.ProfessionalID, int(date.Weekday()))
			if err != nil {
				uc.logger.Error("BookAppointment: failed to get availability windows: %v", err)
				return fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
			}
			if err := validateWithinWindows(slot, windows); err != nil {
				uc.logger.Warn("BookAppointment: time %s is outside working hours for professional=%d",
					req.StartTime, req.ProfessionalID)
				return err
			}

			// 5.3. Свежая выборка занятых интервалов с блокировкой FOR UPDATE
			filter := domain.ProfessionalAppointmentsFilter{
				ProfessionalID:    req.ProfessionalID,
				StartDate:         &date,
				EndDate:           &date,
				TimeConsumingOnly: true,
			}

			appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(txCtx, filter)
			if err != nil {
				uc.logger.Error("BookAppointment: failed to get appointments: %v", err)
				return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
			}

			// 5.4. Проверяем пересечения общим предикатом
			for _, existing := range appointments {
				occupied, err := existing.OccupiedInterval()
				if err != nil {
					continue
				}
				if slot.Overlaps(occupied) {
					uc.logger.Warn("BookAppointment: slot %s overlaps appointment id=%d",
						req.StartTime, existing.ID)
					return ErrSlotTaken
				}
			}

			// 5.5. Создаем запись с денормализацией данных услуги
			appointment := &domain.Appointment{
				OrganizationID:  service.OrganizationID,
				ProfessionalID:  req.ProfessionalID,
				ServiceID:       req.ServiceID,
				ClientID:        req.ClientID,
				AppointmentDate: date,
				StartTime:       req.StartTime,
				DurationMinutes: service.DurationMinutes,
				Status:          domain.StatusScheduled,
				ServiceName:     service.Name,
				ServicePrice:    getServicePrice(service),
				Notes:           req.Notes,
			}

			created, err := uc.appointmentRepo.Create(txCtx, appointment)
			if err != nil {
				// Страховка на уровне БД: exclusion constraint
				if errors.Is(err, appointmentRepo.ErrSlotConflict) {
					uc.logger.Warn("BookAppointment: exclusion constraint rejected slot %s for professional=%d",
						req.StartTime, req.ProfessionalID)
					return ErrSlotTaken
				}
				uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
				return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
			}

			result = created
			return nil
		})
	}

	err = attempt(ctx)
	if err != nil && isTransientStorageError(err) {
		// Один повтор всей транзакции после паузы
		uc.logger.Warn("BookAppointment: transient storage error, retrying: %v", err)

		select {
		case <-time.After(storageRetryDelay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, ctx.Err())
		}

		err = attempt(ctx)
		if err != nil && isTransientStorageError(err) {
			uc.logger.Error("BookAppointment: storage unavailable after retry: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		OrganizationID:  result.OrganizationID,
		ProfessionalID:  result.ProfessionalID,
		ServiceID:       result.ServiceID,
		ClientID:        result.ClientID,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// resolveLocation загружает таймзону организации услуги
// При некорректной таймзоне в каталоге используется UTC
func (uc *UseCase) resolveLocation(ctx context.Context, organizationID int64) (*time.Location, error) {
	org, err := uc.catalogClient.GetOrganization(ctx, organizationID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrOrganizationNotFound) {
			uc.logger.Warn("BookAppointment: organization id=%d not found", organizationID)
			return nil, ErrOrganizationNotFound
		}
		uc.logger.Error("BookAppointment: failed to get organization id=%d: %v", organizationID, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	loc, err := time.LoadLocation(org.Timezone)
	if err != nil {
		uc.logger.Warn("BookAppointment: invalid timezone %q for organization id=%d, falling back to UTC",
			org.Timezone, organizationID)
		return time.UTC, nil
	}

	return loc, nil
}

// getServicePrice извлекает цену из услуги
// Если цена не указана (nil), возвращает 0.0
func getServicePrice(service *catalogClient.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}

// isTransientStorageError определяет ошибки хранилища, после которых
// имеет смысл повторить транзакцию целиком. Бизнес-отказы
// (занятый слот, нерабочее время) повтору не подлежат
func isTransientStorageError(err error) bool {
	if errors.Is(err, ErrSlotTaken) ||
		errors.Is(err, ErrProfessionalTimeOff) ||
		errors.Is(err, ErrOutsideWorkingHours) ||
		errors.Is(err, ErrPastTime) ||
		errors.Is(err, ErrInvalidInput) {
		return false
	}

	if txmanager.IsSerializationFailure(err) {
		return true
	}

	return errors.Is(err, ErrInternal)
}
