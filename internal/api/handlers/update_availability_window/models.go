package update_availability_window

import "github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"

// UpdateWindowRequest HTTP request model
// ID профессионала и окна берутся из пути
type UpdateWindowRequest struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Active    bool   `json:"active"` // false = мягкое отключение окна
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateWindowRequest) ToServiceRequest(professionalID, windowID int64) *models.UpdateWindowRequest {
	return &models.UpdateWindowRequest{
		ProfessionalID: professionalID,
		WindowID:       windowID,
		Weekday:        r.Weekday,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Active:         r.Active,
	}
}
