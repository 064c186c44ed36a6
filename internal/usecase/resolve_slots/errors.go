package resolve_slots

import "errors"

var (
	// ErrOrganizationNotFound возвращается, когда организация не найдена
	ErrOrganizationNotFound = errors.New("resolve_slots: organization not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("resolve_slots: service not found")

	// ErrServiceInactive возвращается, когда услуга отключена
	ErrServiceInactive = errors.New("resolve_slots: service is inactive")

	// ErrInvalidDuration возвращается, когда длительность услуги не положительна
	// Fail fast: нулевая длительность не должна превращаться в "все слоты свободны"
	ErrInvalidDuration = errors.New("resolve_slots: invalid service duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_slots: internal error")
)
