package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// CreateWindowRequest запрос на создание окна доступности
type CreateWindowRequest struct {
	ProfessionalID int64  `json:"professionalId"`
	Weekday        int    `json:"weekday"`   // 0 = воскресенье ... 6 = суббота
	StartTime      string `json:"startTime"` // "09:00"
	EndTime        string `json:"endTime"`   // "12:00"
}

// UpdateWindowRequest запрос на обновление окна доступности
type UpdateWindowRequest struct {
	ProfessionalID int64  `json:"professionalId"`
	WindowID       int64  `json:"windowId"`
	Weekday        int    `json:"weekday"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Active         bool   `json:"active"` // false = мягкое отключение окна
}

// CreateTimeOffRequest запрос на создание периода отсутствия
type CreateTimeOffRequest struct {
	ProfessionalID int64  `json:"professionalId"`
	StartDate      string `json:"startDate"` // "2025-12-24"
	EndDate        string `json:"endDate"`   // "2025-12-26", включительно
	Title          string `json:"title"`
}

// Response модели

// WindowResponse ответ с данными окна доступности
type WindowResponse struct {
	ID             int64  `json:"id"`
	ProfessionalID int64  `json:"professionalId"`
	Weekday        int    `json:"weekday"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Active         bool   `json:"active"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// TimeOffResponse ответ с данными периода отсутствия
type TimeOffResponse struct {
	ID             int64  `json:"id"`
	ProfessionalID int64  `json:"professionalId"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Title          string `json:"title"`
	CreatedAt      string `json:"createdAt"`
}

// ScheduleResponse расписание профессионала: окна доступности и периоды отсутствия
type ScheduleResponse struct {
	ProfessionalID int64             `json:"professionalId"`
	Windows        []WindowResponse  `json:"windows"`
	TimeOff        []TimeOffResponse `json:"timeOff"`
}

// FromDomainWindow конвертирует доменную модель окна в response
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	return &WindowResponse{
		ID:             w.ID,
		ProfessionalID: w.ProfessionalID,
		Weekday:        int(w.Weekday),
		StartTime:      w.StartTime.String(),
		EndTime:        w.EndTime.String(),
		Active:         w.Active,
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      w.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainTimeOff конвертирует доменную модель периода отсутствия в response
func FromDomainTimeOff(p *domain.TimeOffPeriod) *TimeOffResponse {
	return &TimeOffResponse{
		ID:             p.ID,
		ProfessionalID: p.ProfessionalID,
		StartDate:      p.StartDate.Format(domain.DateFormat),
		EndDate:        p.EndDate.Format(domain.DateFormat),
		Title:          p.Title,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}
