package schedule

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно доступности не найдено
	ErrWindowNotFound = errors.New("availability window not found")

	// ErrPeriodNotFound возвращается, когда период отсутствия не найден
	ErrPeriodNotFound = errors.New("time off period not found")

	// ErrOverlappingWindow возвращается, когда новое окно пересекается с
	// существующим активным окном того же дня недели
	ErrOverlappingWindow = errors.New("window overlaps an existing window on this weekday")

	// ErrInvalidTimeRange возвращается, когда start_time >= end_time
	ErrInvalidTimeRange = errors.New("invalid time range: start must be before end")

	// ErrInvalidDateRange возвращается, когда start_date > end_date
	ErrInvalidDateRange = errors.New("invalid date range: start must not be after end")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
