package delete_time_off

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidTimeOffID      = "некорректный ID периода отсутствия"
	msgPeriodNotFound        = "период отсутствия не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/professionals/{professionalId}/time-off/{timeOffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/time-off/{timeOffId} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	periodID, err := strconv.ParseInt(vars["timeOffId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/time-off/{timeOffId} - Invalid time off ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeOffID)
		return
	}

	if err := h.service.DeleteTimeOff(r.Context(), professionalID, periodID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrPeriodNotFound):
			h.logger.Warn("DELETE /professionals/{id}/time-off/{timeOffId} - Period not found: time_off_id=%d", periodID)
			handlers.RespondNotFound(w, msgPeriodNotFound)

		default:
			h.logger.Error("DELETE /professionals/{id}/time-off/{timeOffId} - Failed to delete time off: time_off_id=%d, error=%v",
				periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /professionals/{id}/time-off/{timeOffId} - Time off deleted successfully: time_off_id=%d", periodID)
	handlers.RespondNoContent(w)
}
