package get_month_availability

import (
	"sort"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// mergeDaySchedules объединяет активные слоты всех расписаний на заданный
// день недели в карту "HH:MM -> пул кандидатов"
// Один специалист может прийти через несколько расписаний, но в пуле часа
// учитывается один раз (дедупликация по id). Пустая карта - ни одно
// расписание не имеет активных слотов в этот день недели
func mergeDaySchedules(
	weekday domain.Weekday,
	schedules []*domain.Schedule,
	attendants []domain.Attendant,
) map[types.TimeString][]domain.Attendant {
	// Группируем специалистов по расписаниям
	bySchedule := make(map[int64][]domain.Attendant)
	for _, att := range attendants {
		bySchedule[att.ScheduleID] = append(bySchedule[att.ScheduleID], att)
	}

	pools := make(map[types.TimeString]map[int64]domain.Attendant)

	for _, schedule := range schedules {
		scheduleAttendants := bySchedule[schedule.ID]
		if len(scheduleAttendants) == 0 {
			continue
		}

		for _, slot := range schedule.ActiveSlots(weekday) {
			key := slot.Time
			if pools[key] == nil {
				pools[key] = make(map[int64]domain.Attendant)
			}
			for _, att := range scheduleAttendants {
				pools[key][att.ID] = att
			}
		}
	}

	// Разворачиваем множества в отсортированные по id слайсы
	result := make(map[types.TimeString][]domain.Attendant, len(pools))
	for key, set := range pools {
		pool := make([]domain.Attendant, 0, len(set))
		for _, att := range set {
			pool = append(pool, att)
		}
		sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })
		result[key] = pool
	}

	return result
}
