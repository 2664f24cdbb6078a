package domain

// Period период дня для лимитов бронирования
type Period string

const (
	PeriodMorning Period = "morning"
	PeriodEvening Period = "evening"
	PeriodNight   Period = "night"
)

// AllPeriods порядок обхода периодов при подсчете дневных итогов
var AllPeriods = []Period{PeriodMorning, PeriodEvening, PeriodNight}

// PeriodOfHour классифицирует час в период при агрегации записей
// Границы: [6,11] - утро, [12,17] - вечер, остальное - ночь
func PeriodOfHour(hour int) Period {
	switch {
	case hour >= 6 && hour <= 11:
		return PeriodMorning
	case hour >= 12 && hour <= 17:
		return PeriodEvening
	default:
		return PeriodNight
	}
}

// CapacityPeriodOfHour классифицирует час в период при расчете вместимости
// Границы: <=11 - утро, <=17 - вечер, остальное - ночь
// Для часов 0-5 правило расходится с PeriodOfHour; оба варианта сохранены
// намеренно, унифицировать их нельзя без изменения наблюдаемого поведения
func CapacityPeriodOfHour(hour int) Period {
	switch {
	case hour <= 11:
		return PeriodMorning
	case hour <= 17:
		return PeriodEvening
	default:
		return PeriodNight
	}
}
