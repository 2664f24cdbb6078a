package get_month_availability

import (
	"fmt"
	"time"
)

// monthRange окно расчета доступности для одного календарного месяца
type monthRange struct {
	Start time.Time
	End   time.Time
}

// newMonthRange вычисляет границы окна для (year, month)
// Для текущего месяца окно начинается с "сейчас", а не с полуночи первого
// числа - уже прошедшие часы не предлагаются. Конец окна всегда
// 23:59:59.999 последнего дня месяца
func newMonthRange(year, month int, now time.Time) (monthRange, error) {
	if month < 1 || month > 12 {
		return monthRange{}, fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidRange, month)
	}

	loc := now.Location()

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	if year == now.Year() && time.Month(month) == now.Month() {
		start = now
	}

	// День 0 следующего месяца = последний день целевого месяца
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, int(999*time.Millisecond), loc)

	return monthRange{Start: start, End: end}, nil
}
