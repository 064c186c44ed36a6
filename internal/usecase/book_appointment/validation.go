package book_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateNotInPast проверяет, что дата и время записи не в прошлом
func validateNotInPast(date time.Time, startMinutes int, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrPastTime
	}

	if dateOnly.Equal(nowOnly) {
		nowMinutes := now.Hour()*60 + now.Minute()
		if startMinutes <= nowMinutes {
			return ErrPastTime
		}
	}

	return nil
}

// validateWithinWindows проверяет, что интервал записи целиком помещается
// хотя бы в одно окно доступности
func validateWithinWindows(slot domain.Interval, windows []*domain.AvailabilityWindow) error {
	for _, window := range windows {
		windowInterval, err := window.Interval()
		if err != nil {
			return fmt.Errorf("%w: invalid availability window id=%d: %v", ErrInternal, window.ID, err)
		}

		if slot.Start >= windowInterval.Start && slot.End <= windowInterval.End {
			return nil
		}
	}

	return ErrOutsideWorkingHours
}
