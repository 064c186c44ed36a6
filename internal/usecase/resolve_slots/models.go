package resolve_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на расчёт доступных слотов
type Request struct {
	ProfessionalID int64     // ID профессионала
	ServiceID      int64     // ID услуги (определяет длительность слота)
	Date           time.Time // Дата для расчёта слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	ProfessionalID  int64              // ID профессионала
	ServiceID       int64              // ID услуги
	DurationMinutes int                // Длительность услуги
	Slots           []types.TimeString // Упорядоченный список времён начала
}
