package domain

import "time"

// TimeOffPeriod represents an inclusive date range fully blocking bookings
// for a professional regardless of availability windows
type TimeOffPeriod struct {
	ID             int64
	ProfessionalID int64
	StartDate      time.Time // дата без времени
	EndDate        time.Time // включительно
	Title          string
	CreatedAt      time.Time
}

// Contains returns true if the date falls inside the period (inclusive bounds)
func (p *TimeOffPeriod) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(p.StartDate)) && !d.After(truncateToDay(p.EndDate))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
