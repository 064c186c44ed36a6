package create_availability_window

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
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidTimeRange      = "время начала должно быть раньше времени окончания"
	msgOverlappingWindow     = "окно пересекается с существующим окном доступности"
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

// Handle POST /api/v1/professionals/{professionalId}/availability-windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /professionals/{id}/availability-windows - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req CreateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals/{id}/availability-windows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateWindow(r.Context(), req.ToServiceRequest(professionalID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("POST /professionals/{id}/availability-windows - Invalid time range: professional_id=%d, %s-%s",
				professionalID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrOverlappingWindow):
			h.logger.Warn("POST /professionals/{id}/availability-windows - Overlapping window: professional_id=%d, weekday=%d",
				professionalID, req.Weekday)
			handlers.RespondError(w, http.StatusConflict, msgOverlappingWindow)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /professionals/{id}/availability-windows - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /professionals/{id}/availability-windows - Failed to create window: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals/{id}/availability-windows - Window created successfully: window_id=%d, professional_id=%d",
		result.ID, professionalID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
