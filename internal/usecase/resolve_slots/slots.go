package resolve_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// occupiedIntervals собирает занятые интервалы [start, start+duration)
// из записей в статусах, занимающих время
func occupiedIntervals(appointments []*domain.Appointment) ([]domain.Interval, error) {
	intervals := make([]domain.Interval, 0, len(appointments))

	for _, appointment := range appointments {
		// Исторические статусы не блокируют слоты
		if !appointment.IsTimeConsuming() {
			continue
		}

		interval, err := appointment.OccupiedInterval()
		if err != nil {
			// Запись с некорректным временем не должна ронять расчёт
			continue
		}

		intervals = append(intervals, interval)
	}

	return intervals, nil
}

// generateSlots генерирует доступные слоты по окнам доступности
//
// Для каждого окна [wStart, wEnd) кандидаты идут от wStart с шагом granularity,
// пока кандидат + duration помещается в окно. Кандидат принимается, только
// если его интервал [t, t+duration) не пересекается ни с одним занятым
// интервалом (общий предикат domain.Interval.Overlaps - тот же, что в пути
// создания записи).
//
// Если date - сегодня, кандидаты, начинающиеся не строго позже nowMinutes,
// отбрасываются. Результат упорядочен и не содержит дубликатов.
func generateSlots(
	windows []*domain.AvailabilityWindow,
	occupied []domain.Interval,
	durationMinutes int,
	granularityMinutes int,
	isToday bool,
	nowMinutes int,
) ([]types.TimeString, error) {
	candidates := make([]int, 0)
	seen := make(map[int]struct{})

	for _, window := range windows {
		windowInterval, err := window.Interval()
		if err != nil {
			return nil, err
		}

		// Кандидаты не выходят за границу окна: последний старт - wEnd - duration
		for t := windowInterval.Start; t+durationMinutes <= windowInterval.End; t += granularityMinutes {
			if isToday && t <= nowMinutes {
				continue
			}

			slot := domain.Interval{Start: t, End: t + durationMinutes}
			if slot.OverlapsAny(occupied) {
				continue
			}

			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			candidates = append(candidates, t)
		}
	}

	sort.Ints(candidates)

	slots := make([]types.TimeString, 0, len(candidates))
	for _, t := range candidates {
		slot, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
