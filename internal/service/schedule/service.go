package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	timeoffRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/timeoff"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис управления расписанием профессионала:
// окна доступности и периоды отсутствия
type Service struct {
	availabilityRepo AvailabilityRepository
	timeOffRepo      TimeOffRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	availabilityRepo AvailabilityRepository,
	timeOffRepo TimeOffRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		timeOffRepo:      timeOffRepo,
		logger:           logger,
	}
}

// CreateWindow создает окно доступности
// Отклоняет окно, пересекающееся с существующим активным окном того же дня недели
func (s *Service) CreateWindow(ctx context.Context, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("CreateWindow: professional=%d, weekday=%d, %s-%s",
		req.ProfessionalID, req.Weekday, req.StartTime, req.EndTime)

	window, err := s.buildWindow(req.ProfessionalID, req.Weekday, req.StartTime, req.EndTime, true)
	if err != nil {
		s.logger.Warn("CreateWindow: validation failed: %v", err)
		return nil, err
	}

	// Проверяем инвариант непересечения окон дня недели
	if err := s.checkNoOverlap(ctx, window, 0); err != nil {
		s.logger.Warn("CreateWindow: overlap check failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	created, err := s.availabilityRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("CreateWindow: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: CreateWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateWindow: successfully created window id=%d", created.ID)
	return models.FromDomainWindow(created), nil
}

// UpdateWindow обновляет окно доступности
// Отключение окна выполняется через Active=false, а не удалением
func (s *Service) UpdateWindow(ctx context.Context, req *models.UpdateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("UpdateWindow: window=%d, professional=%d, weekday=%d, %s-%s, active=%t",
		req.WindowID, req.ProfessionalID, req.Weekday, req.StartTime, req.EndTime, req.Active)

	existing, err := s.availabilityRepo.GetByID(ctx, req.WindowID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("UpdateWindow: window id=%d not found", req.WindowID)
			return nil, ErrWindowNotFound
		}
		s.logger.Error("UpdateWindow: repository error for window id=%d: %v", req.WindowID, err)
		return nil, fmt.Errorf("%w: UpdateWindow - repository error: %v", ErrInternal, err)
	}

	if existing.ProfessionalID != req.ProfessionalID {
		s.logger.Warn("UpdateWindow: window id=%d does not belong to professional=%d", req.WindowID, req.ProfessionalID)
		return nil, ErrWindowNotFound
	}

	window, err := s.buildWindow(req.ProfessionalID, req.Weekday, req.StartTime, req.EndTime, req.Active)
	if err != nil {
		s.logger.Warn("UpdateWindow: validation failed: %v", err)
		return nil, err
	}
	window.ID = req.WindowID

	// Активное окно не должно пересекаться с другими активными окнами
	if window.Active {
		if err := s.checkNoOverlap(ctx, window, req.WindowID); err != nil {
			s.logger.Warn("UpdateWindow: overlap check failed for window id=%d: %v", req.WindowID, err)
			return nil, err
		}
	}

	if err := s.availabilityRepo.Update(ctx, window); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			return nil, ErrWindowNotFound
		}
		s.logger.Error("UpdateWindow: repository error for window id=%d: %v", req.WindowID, err)
		return nil, fmt.Errorf("%w: UpdateWindow - repository error: %v", ErrInternal, err)
	}

	window.CreatedAt = existing.CreatedAt
	window.UpdatedAt = time.Now()

	s.logger.Info("UpdateWindow: successfully updated window id=%d", req.WindowID)
	return models.FromDomainWindow(window), nil
}

// DeleteWindow удаляет окно доступности
func (s *Service) DeleteWindow(ctx context.Context, professionalID, windowID int64) error {
	s.logger.Info("DeleteWindow: window=%d, professional=%d", windowID, professionalID)

	if err := s.availabilityRepo.Delete(ctx, professionalID, windowID); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("DeleteWindow: window id=%d not found", windowID)
			return ErrWindowNotFound
		}
		s.logger.Error("DeleteWindow: repository error for window id=%d: %v", windowID, err)
		return fmt.Errorf("%w: DeleteWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteWindow: successfully deleted window id=%d", windowID)
	return nil
}

// CreateTimeOff создает период отсутствия
func (s *Service) CreateTimeOff(ctx context.Context, req *models.CreateTimeOffRequest) (*models.TimeOffResponse, error) {
	s.logger.Info("CreateTimeOff: professional=%d, %s..%s", req.ProfessionalID, req.StartDate, req.EndDate)

	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxTimeOffTitleLength {
		return nil, fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate format: %v", ErrInvalidInput, err)
	}
	endDate, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endDate format: %v", ErrInvalidInput, err)
	}

	// Инвариант периода: начало не позже конца
	if startDate.After(endDate) {
		s.logger.Warn("CreateTimeOff: invalid date range %s..%s for professional=%d",
			req.StartDate, req.EndDate, req.ProfessionalID)
		return nil, ErrInvalidDateRange
	}

	period := &domain.TimeOffPeriod{
		ProfessionalID: req.ProfessionalID,
		StartDate:      startDate,
		EndDate:        endDate,
		Title:          req.Title,
	}

	created, err := s.timeOffRepo.Create(ctx, period)
	if err != nil {
		s.logger.Error("CreateTimeOff: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: CreateTimeOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTimeOff: successfully created period id=%d", created.ID)
	return models.FromDomainTimeOff(created), nil
}

// DeleteTimeOff удаляет период отсутствия
func (s *Service) DeleteTimeOff(ctx context.Context, professionalID, periodID int64) error {
	s.logger.Info("DeleteTimeOff: period=%d, professional=%d", periodID, professionalID)

	if err := s.timeOffRepo.Delete(ctx, professionalID, periodID); err != nil {
		if errors.Is(err, timeoffRepo.ErrPeriodNotFound) {
			s.logger.Warn("DeleteTimeOff: period id=%d not found", periodID)
			return ErrPeriodNotFound
		}
		s.logger.Error("DeleteTimeOff: repository error for period id=%d: %v", periodID, err)
		return fmt.Errorf("%w: DeleteTimeOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTimeOff: successfully deleted period id=%d", periodID)
	return nil
}

// GetSchedule возвращает расписание профессионала: все окна и периоды отсутствия
func (s *Service) GetSchedule(ctx context.Context, professionalID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: professional=%d", professionalID)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	windows, err := s.availabilityRepo.GetByProfessional(ctx, professionalID, false)
	if err != nil {
		s.logger.Error("GetSchedule: failed to get windows for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	periods, err := s.timeOffRepo.GetByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("GetSchedule: failed to get time off for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	resp := &models.ScheduleResponse{
		ProfessionalID: professionalID,
		Windows:        make([]models.WindowResponse, 0, len(windows)),
		TimeOff:        make([]models.TimeOffResponse, 0, len(periods)),
	}
	for _, w := range windows {
		resp.Windows = append(resp.Windows, *models.FromDomainWindow(w))
	}
	for _, p := range periods {
		resp.TimeOff = append(resp.TimeOff, *models.FromDomainTimeOff(p))
	}

	return resp, nil
}

// buildWindow валидирует входные данные и собирает доменную модель окна
func (s *Service) buildWindow(professionalID int64, weekday int, startTime, endTime string, active bool) (*domain.AvailabilityWindow, error) {
	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if weekday < 0 || weekday > 6 {
		return nil, fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(endTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	// Инвариант окна: начало строго раньше конца
	if !start.IsBefore(end) {
		return nil, ErrInvalidTimeRange
	}

	return &domain.AvailabilityWindow{
		ProfessionalID: professionalID,
		Weekday:        time.Weekday(weekday),
		StartTime:      start,
		EndTime:        end,
		Active:         active,
	}, nil
}

// checkNoOverlap проверяет, что окно не пересекается с другими активными
// окнами того же дня недели. excludeID исключает обновляемое окно из проверки.
func (s *Service) checkNoOverlap(ctx context.Context, window *domain.AvailabilityWindow, excludeID int64) error {
	existing, err := s.availabilityRepo.GetByProfessional(ctx, window.ProfessionalID, true)
	if err != nil {
		return fmt.Errorf("%w: checkNoOverlap - repository error: %v", ErrInternal, err)
	}

	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		if window.Overlaps(other) {
			return ErrOverlappingWindow
		}
	}

	return nil
}
