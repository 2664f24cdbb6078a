package get_month_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Ключи агрегатов занятости
type hourServiceKey struct {
	date          string
	hour          string
	serviceTypeID int64
}

type hourBranchKey struct {
	date     string
	hour     string
	branchID int64
}

type periodServiceKey struct {
	date          string
	period        domain.Period
	serviceTypeID int64
}

type dayHourKey struct {
	date string
	hour string
}

// usage агрегаты занятости по записям за окно расчета
// Строятся один раз на запрос чистой функцией buildUsage и дальше
// только читаются - никакого разделяемого изменяемого состояния
type usage struct {
	serviceHourCount      map[hourServiceKey]int
	serviceHourAttendants map[hourServiceKey]map[int64]struct{}
	branchHourCount       map[hourBranchKey]int
	servicePeriodCount    map[periodServiceKey]int
	busyAttendants        map[dayHourKey]map[int64]struct{}
}

// buildUsage агрегирует записи в индексы занятости
// На каждую запись: локализация в бизнес-таймзону, ключ дня (DD/MM/YYYY),
// ключ часа (HH:MM), период по правилу агрегации PeriodOfHour.
// Возвращает агрегаты и количество пропущенных записей (без типа услуги
// или с нулевым временем) - пропуск индивидуальный, не фатальный
func buildUsage(appointments []*domain.Appointment, loc *time.Location) (*usage, int) {
	u := &usage{
		serviceHourCount:      make(map[hourServiceKey]int),
		serviceHourAttendants: make(map[hourServiceKey]map[int64]struct{}),
		branchHourCount:       make(map[hourBranchKey]int),
		servicePeriodCount:    make(map[periodServiceKey]int),
		busyAttendants:        make(map[dayHourKey]map[int64]struct{}),
	}

	skipped := 0

	for _, appt := range appointments {
		// Репозиторий отдает только занимающие место записи, но агрегатор
		// не полагается на это: правило закреплено в домене
		if !appt.CountsTowardUsage() {
			continue
		}

		if appt.ServiceTypeID <= 0 || appt.ScheduledAt.IsZero() {
			skipped++
			continue
		}

		localTime := appt.ScheduledAt.In(loc)
		dateKey := localTime.Format(domain.DateFormat)
		hourKey := types.NewTimeString(localTime).String()
		period := domain.PeriodOfHour(localTime.Hour())

		svcKey := hourServiceKey{date: dateKey, hour: hourKey, serviceTypeID: appt.ServiceTypeID}
		u.serviceHourCount[svcKey]++

		if u.serviceHourAttendants[svcKey] == nil {
			u.serviceHourAttendants[svcKey] = make(map[int64]struct{})
		}
		u.serviceHourAttendants[svcKey][appt.AttendantID] = struct{}{}

		u.branchHourCount[hourBranchKey{date: dateKey, hour: hourKey, branchID: appt.BranchID}]++
		u.servicePeriodCount[periodServiceKey{date: dateKey, period: period, serviceTypeID: appt.ServiceTypeID}]++

		// Занятость специалиста считается по всем типам услуг сразу:
		// специалист не может обслуживать две записи в один час
		busyKey := dayHourKey{date: dateKey, hour: hourKey}
		if u.busyAttendants[busyKey] == nil {
			u.busyAttendants[busyKey] = make(map[int64]struct{})
		}
		u.busyAttendants[busyKey][appt.AttendantID] = struct{}{}
	}

	return u, skipped
}

// serviceCount количество записей на (дата, час, тип услуги)
func (u *usage) serviceCount(date, hour string, serviceTypeID int64) int {
	return u.serviceHourCount[hourServiceKey{date: date, hour: hour, serviceTypeID: serviceTypeID}]
}

// serviceAttendants специалисты с записями на (дата, час, тип услуги),
// дедуплицированные по id
func (u *usage) serviceAttendants(date, hour string, serviceTypeID int64) []int64 {
	set := u.serviceHourAttendants[hourServiceKey{date: date, hour: hour, serviceTypeID: serviceTypeID}]
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

// branchCount количество записей на (дата, час, филиал)
func (u *usage) branchCount(date, hour string, branchID int64) int {
	return u.branchHourCount[hourBranchKey{date: date, hour: hour, branchID: branchID}]
}

// periodCount количество записей на (дата, период, тип услуги)
func (u *usage) periodCount(date string, period domain.Period, serviceTypeID int64) int {
	return u.servicePeriodCount[periodServiceKey{date: date, period: period, serviceTypeID: serviceTypeID}]
}

// isBusy возвращает true, если специалист уже занят в (дата, час)
// независимо от того, по какому типу услуги он записан
func (u *usage) isBusy(date, hour string, attendantID int64) bool {
	set, ok := u.busyAttendants[dayHourKey{date: date, hour: hour}]
	if !ok {
		return false
	}
	_, busy := set[attendantID]
	return busy
}
