package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с существующими записями:
// чтение, переходы статусов жизненного цикла, административное удаление.
// Создание записи выполняется отдельным usecase book_appointment.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// GetClientAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientAppointments(ctx context.Context, clientID int64, status *string) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d", clientID)

	var domainStatus *domain.AppointmentStatus
	if status != nil {
		st, err := models.ToDomainStatus(*status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%d", *status, clientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &st
	}

	appointments, err := s.appointmentRepo.GetByClientID(ctx, clientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%d",
		len(appointments), clientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetProfessionalAppointments получает записи профессионала с фильтрацией
// по периоду и статусу
func (s *Service) GetProfessionalAppointments(ctx context.Context, req *models.GetProfessionalAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetProfessionalAppointments: fetching appointments for professional=%d", req.ProfessionalID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProfessionalAppointments: invalid filter for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProfessionalAppointments: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetProfessionalAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfessionalAppointments: successfully fetched %d appointments for professional=%d",
		len(appointments), req.ProfessionalID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Transition переводит запись в новый статус жизненного цикла
// (confirm, start, complete, cancel, no-show).
//
// Переход в текущий статус - идемпотентный no-op: запись возвращается
// без изменений. Недопустимые переходы (например, completed -> scheduled)
// отклоняются с ErrInvalidTransition.
func (s *Service) Transition(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Transition: appointment=%d to status=%s", appointmentID, req.Status)

	targetStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("Transition: invalid status=%s for appointment=%d", req.Status, appointmentID)
		return nil, ErrInvalidStatus
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Transition: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Transition: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	// Идемпотентный no-op
	if appointment.Status == targetStatus {
		s.logger.Info("Transition: appointment id=%d already in status=%s, no-op", appointmentID, targetStatus)
		return models.FromDomainAppointment(appointment), nil
	}

	if !appointment.CanTransitionTo(targetStatus) {
		s.logger.Warn("Transition: appointment id=%d cannot move %s -> %s",
			appointmentID, appointment.Status, targetStatus)
		return nil, ErrInvalidTransition
	}

	if targetStatus == domain.StatusCancelled {
		reason := ""
		if req.Reason != nil {
			reason = *req.Reason
		}
		if len(reason) > domain.MaxCancellationReasonLength {
			return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
		}
		err = s.appointmentRepo.Cancel(ctx, appointmentID, reason)
	} else {
		err = s.appointmentRepo.UpdateStatus(ctx, appointmentID, targetStatus)
	}

	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Transition: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	updated, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		s.logger.Error("Transition: failed to re-read appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Transition: successfully moved appointment id=%d to status=%s", appointmentID, targetStatus)
	return models.FromDomainAppointment(updated), nil
}

// Delete физически удаляет запись (административная операция вне потока
// бронирования)
func (s *Service) Delete(ctx context.Context, appointmentID int64) error {
	s.logger.Info("Delete: removing appointment id=%d", appointmentID)

	if err := s.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully removed appointment id=%d", appointmentID)
	return nil
}
