package get_month_availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// hourCapacity результат расчета вместимости одного часового слота
type hourCapacity struct {
	hour       types.TimeString
	available  bool
	count      int
	attendants []domain.Attendant
}

// dayContext неизменяемый контекст расчета вместимости на один день
// Собирается оркестратором один раз на запрос; агрегаты только читаются
type dayContext struct {
	date           string              // Ключ дня DD/MM/YYYY
	branchID       int64               // ID филиала из запроса
	serviceTypeID  int64               // ID типа услуги из запроса
	serviceType    *domain.ServiceType // nil - тип услуги не найден, ограничений нет
	branch         *domain.Branch      // nil - филиал не найден, вместимость не ограничена
	qualifiedCount int                 // Количество квалифицированных специалистов
	usage          *usage
}

// resolveHourCapacity вычисляет доступность одного часа
//
// Для disregarded-типов услуг вся математика вместимости пропускается:
// слот отдается с sentinel-количеством и полным пулом кандидатов.
// Иначе итог = max(0, min(остаток филиала, остаток услуги,
// свободные специалисты, остаток периода)); неограниченные члены
// минимум не сужают
func resolveHourCapacity(dc dayContext, hour types.TimeString, pool []domain.Attendant) hourCapacity {
	if dc.serviceType != nil && dc.serviceType.Disregarded {
		return hourCapacity{
			hour:       hour,
			available:  true,
			count:      domain.UnlimitedSlotCount,
			attendants: pool,
		}
	}

	hourNum, err := hour.Hour()
	if err != nil {
		// Слот с неразборчивым временем недоступен
		return hourCapacity{hour: hour, attendants: []domain.Attendant{}}
	}

	// Лимит периода исчерпан - час недоступен, остальные проверки не нужны
	period := domain.CapacityPeriodOfHour(hourNum)
	periodUsed := dc.usage.periodCount(dc.date, period, dc.serviceTypeID)

	var periodLimit *int
	if dc.serviceType != nil {
		periodLimit = dc.serviceType.LimitFor(period)
	}
	if periodLimit != nil && periodUsed >= *periodLimit {
		return hourCapacity{hour: hour, attendants: []domain.Attendant{}}
	}

	// Убираем из пула специалистов, уже занятых в этот час
	// (по любому типу услуги)
	free := make([]domain.Attendant, 0, len(pool))
	for _, att := range pool {
		if !dc.usage.isBusy(dc.date, hour.String(), att.ID) {
			free = append(free, att)
		}
	}

	count := len(free)

	// Остаток вместимости филиала
	if dc.branch != nil && dc.branch.HasCapacityLimit() {
		branchRemaining := *dc.branch.AvailableSpaces - dc.usage.branchCount(dc.date, hour.String(), dc.branchID)
		if branchRemaining < count {
			count = branchRemaining
		}
	}

	// Остаток вместимости услуги
	// При нуле квалифицированных специалистов ограничение не применяется
	if dc.qualifiedCount > 0 {
		serviceRemaining := dc.qualifiedCount - dc.usage.serviceCount(dc.date, hour.String(), dc.serviceTypeID)
		if serviceRemaining < count {
			count = serviceRemaining
		}
	}

	// Остаток лимита периода
	if periodLimit != nil {
		periodRemaining := *periodLimit - periodUsed
		if periodRemaining < count {
			count = periodRemaining
		}
	}

	if count < 0 {
		count = 0
	}

	if count == 0 {
		return hourCapacity{hour: hour, attendants: []domain.Attendant{}}
	}

	return hourCapacity{
		hour:       hour,
		available:  true,
		count:      count,
		attendants: free,
	}
}

// applyAttendantFilter сужает результат часа до одного специалиста
// Если специалист есть в списке - список схлопывается до него, количество
// ограничивается единицей. Если нет - час становится недоступным,
// даже если вместимость это позволяла
func applyAttendantFilter(hc hourCapacity, attendantID int64) hourCapacity {
	for _, att := range hc.attendants {
		if att.ID == attendantID {
			count := hc.count
			if count > 1 {
				count = 1
			}
			return hourCapacity{
				hour:       hc.hour,
				available:  count > 0,
				count:      count,
				attendants: []domain.Attendant{att},
			}
		}
	}

	return hourCapacity{hour: hc.hour, attendants: []domain.Attendant{}}
}

// dayTotal вычисляет суммарное количество свободных слотов за день
//
// Без лимитов периодов - простая сумма почасовых количеств. Если хотя бы
// один лимит задан, итог собирается по периодам: для периода с лимитом
// берется остаток лимита, для периода без лимита - сумма уже рассчитанных
// почасовых количеств. Так занятость не вычитается дважды - один раз через
// почасовой потолок и второй раз через потолок периода
func dayTotal(dc dayContext, hours []hourCapacity) int {
	if dc.serviceType == nil || !dc.serviceType.HasPeriodLimits() {
		total := 0
		for _, h := range hours {
			total += h.count
		}
		return total
	}

	perPeriod := make(map[domain.Period]int)
	for _, h := range hours {
		hourNum, err := h.hour.Hour()
		if err != nil {
			continue
		}
		perPeriod[domain.CapacityPeriodOfHour(hourNum)] += h.count
	}

	total := 0
	for _, period := range domain.AllPeriods {
		if limit := dc.serviceType.LimitFor(period); limit != nil {
			remaining := *limit - dc.usage.periodCount(dc.date, period, dc.serviceTypeID)
			if remaining > 0 {
				total += remaining
			}
			continue
		}
		total += perPeriod[period]
	}

	return total
}
