package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID       int64            // ID клиента (из X-User-ID)
	ProfessionalID int64            // ID профессионала
	ServiceID      int64            // ID услуги (определяет длительность)
	Date           time.Time        // Дата записи
	StartTime      types.TimeString // Время начала
	Notes          *string          // Заметки клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            `json:"id"`
	OrganizationID  int64            `json:"organizationId"`
	ProfessionalID  int64            `json:"professionalId"`
	ServiceID       int64            `json:"serviceId"`
	ClientID        int64            `json:"clientId"`
	AppointmentDate time.Time        `json:"appointmentDate"`
	StartTime       types.TimeString `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Status          string           `json:"status"`
	ServiceName     string           `json:"serviceName"`
	ServicePrice    float64          `json:"servicePrice"`
	Notes           *string          `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
