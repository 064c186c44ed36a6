package create_availability_window

import "github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"

// CreateWindowRequest HTTP request model
// ID профессионала берется из пути
type CreateWindowRequest struct {
	Weekday   int    `json:"weekday"`   // 0 = воскресенье ... 6 = суббота
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "12:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateWindowRequest) ToServiceRequest(professionalID int64) *models.CreateWindowRequest {
	return &models.CreateWindowRequest{
		ProfessionalID: professionalID,
		Weekday:        r.Weekday,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
	}
}
