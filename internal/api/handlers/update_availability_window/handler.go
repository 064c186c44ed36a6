package update_availability_window

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
	msgInvalidWindowID       = "некорректный ID окна доступности"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgWindowNotFound        = "окно доступности не найдено"
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

// Handle PUT /api/v1/professionals/{professionalId}/availability-windows/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/availability-windows/{windowId} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	windowID, err := strconv.ParseInt(vars["windowId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/availability-windows/{windowId} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	var req UpdateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id}/availability-windows/{windowId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWindow(r.Context(), req.ToServiceRequest(professionalID, windowID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrWindowNotFound):
			h.logger.Warn("PUT /professionals/{id}/availability-windows/{windowId} - Window not found: window_id=%d", windowID)
			handlers.RespondNotFound(w, msgWindowNotFound)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /professionals/{id}/availability-windows/{windowId} - Invalid time range: window_id=%d, %s-%s",
				windowID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrOverlappingWindow):
			h.logger.Warn("PUT /professionals/{id}/availability-windows/{windowId} - Overlapping window: window_id=%d", windowID)
			handlers.RespondError(w, http.StatusConflict, msgOverlappingWindow)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id}/availability-windows/{windowId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /professionals/{id}/availability-windows/{windowId} - Failed to update window: window_id=%d, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/availability-windows/{windowId} - Window updated successfully: window_id=%d", windowID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
