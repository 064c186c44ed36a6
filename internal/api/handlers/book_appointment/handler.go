package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	bookAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgSlotTaken            = "выбранный временной слот уже занят"
	msgOrganizationNotFound = "организация не найдена"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceInactive      = "услуга недоступна"
	msgInvalidDuration      = "некорректная длительность услуги"
	msgOutsideWorkingHours  = "время записи вне рабочих часов профессионала"
	msgProfessionalTimeOff  = "профессионал не работает в выбранную дату"
	msgPastTime             = "нельзя записаться на прошедшее время"
	msgStorageUnavailable   = "сервис временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Клиент определяется по заголовку X-User-ID (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: client_id=%d, professional_id=%d, time=%s",
				clientID, req.ProfessionalID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, bookAppointment.ErrOrganizationNotFound):
			h.logger.Warn("POST /appointments - Organization not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgOrganizationNotFound)

		case errors.Is(err, bookAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookAppointment.ErrServiceInactive):
			h.logger.Warn("POST /appointments - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, bookAppointment.ErrInvalidDuration):
			h.logger.Warn("POST /appointments - Invalid service duration: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, bookAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: professional_id=%d, time=%s",
				req.ProfessionalID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, bookAppointment.ErrProfessionalTimeOff):
			h.logger.Warn("POST /appointments - Professional time off: professional_id=%d, date=%s",
				req.ProfessionalID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgProfessionalTimeOff)

		case errors.Is(err, bookAppointment.ErrPastTime):
			h.logger.Warn("POST /appointments - Past time: client_id=%d, date=%s, time=%s",
				clientID, req.AppointmentDate, req.StartTime)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, bookAppointment.ErrStorageUnavailable):
			h.logger.Error("POST /appointments - Storage unavailable: client_id=%d, error=%v", clientID, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, professional_id=%d",
		result.ID, clientID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
