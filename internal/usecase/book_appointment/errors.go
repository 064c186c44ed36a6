package book_appointment

import "errors"

var (
	// ErrOrganizationNotFound возвращается, когда организация не найдена
	ErrOrganizationNotFound = errors.New("book_appointment: organization not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("book_appointment: service not found")

	// ErrServiceInactive возвращается, когда услуга отключена
	ErrServiceInactive = errors.New("book_appointment: service is inactive")

	// ErrInvalidDuration возвращается, когда длительность услуги не положительна
	ErrInvalidDuration = errors.New("book_appointment: invalid service duration")

	// ErrSlotTaken возвращается, когда запрошенный интервал пересекается
	// с существующей активной записью профессионала
	ErrSlotTaken = errors.New("book_appointment: slot is already taken")

	// ErrOutsideWorkingHours возвращается, когда интервал не помещается
	// целиком ни в одно окно доступности
	ErrOutsideWorkingHours = errors.New("book_appointment: time is outside working hours")

	// ErrProfessionalTimeOff возвращается, когда дата попадает в период отсутствия
	ErrProfessionalTimeOff = errors.New("book_appointment: professional is on time off")

	// ErrPastTime возвращается при попытке записи на прошедшее время
	ErrPastTime = errors.New("book_appointment: cannot book in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrStorageUnavailable возвращается, когда хранилище недоступно
	// после исчерпания повторов. Никогда не маскируется под успех
	// или под занятый слот
	ErrStorageUnavailable = errors.New("book_appointment: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
