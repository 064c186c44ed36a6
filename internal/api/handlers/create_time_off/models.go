package create_time_off

import "github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"

// CreateTimeOffRequest HTTP request model
// ID профессионала берется из пути
type CreateTimeOffRequest struct {
	StartDate string `json:"startDate"` // "2025-12-24"
	EndDate   string `json:"endDate"`   // "2025-12-26", включительно
	Title     string `json:"title"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTimeOffRequest) ToServiceRequest(professionalID int64) *models.CreateTimeOffRequest {
	return &models.CreateTimeOffRequest{
		ProfessionalID: professionalID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Title:          r.Title,
	}
}
