package get_professional_appointments

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
// Пустые параметры не попадают в фильтр
func ToServiceRequest(professionalID int64, startDateStr, endDateStr, statusStr, timeConsumingOnlyStr string) (*models.GetProfessionalAppointmentsRequest, error) {
	req := &models.GetProfessionalAppointmentsRequest{
		ProfessionalID: professionalID,
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if timeConsumingOnlyStr != "" {
		timeConsumingOnly, err := strconv.ParseBool(timeConsumingOnlyStr)
		if err != nil {
			return nil, err
		}
		req.TimeConsumingOnly = timeConsumingOnly
	}

	return req, nil
}
