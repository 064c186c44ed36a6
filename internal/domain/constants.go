package domain

// Default configuration values
const (
	DefaultSlotGranularityMinutes = 30
	DefaultTimezone               = "UTC"
)

// Business validation constants
const (
	MinServiceDurationMinutes   = 1
	MaxServiceDurationMinutes   = 480 // 8 hours
	MinSlotGranularityMinutes   = 5
	MaxSlotGranularityMinutes   = 240
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxTimeOffTitleLength       = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TimeConsumingStatuses статусы, занимающие время в календаре профессионала
// Используются при поиске конфликтов и расчёте доступных слотов
var TimeConsumingStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
}

// TerminalStatuses исторические статусы, которые не блокируют новые слоты
var TerminalStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
