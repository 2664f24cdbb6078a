package get_month_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func testPool(ids ...int64) []domain.Attendant {
	pool := make([]domain.Attendant, len(ids))
	for i, id := range ids {
		pool[i] = domain.Attendant{ID: id, ScheduleID: 1}
	}
	return pool
}

func emptyUsage() *usage {
	u, _ := buildUsage(nil, time.UTC)
	return u
}

func TestResolveHourCapacity_Unconstrained(t *testing.T) {
	dc := dayContext{
		date:           "10/03/2025",
		branchID:       7,
		serviceTypeID:  5,
		serviceType:    &domain.ServiceType{ID: 5},
		branch:         &domain.Branch{ID: 7}, // Без лимита вместимости
		qualifiedCount: 3,
		usage:          emptyUsage(),
	}

	hc := resolveHourCapacity(dc, "10:00", testPool(1, 2, 3))

	assert.True(t, hc.available)
	assert.Equal(t, 3, hc.count)
	assert.Len(t, hc.attendants, 3)
}

func TestResolveHourCapacity_DisregardedBypassesEverything(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	// Занятость огромная, но для disregarded-типа она не имеет значения
	appointments := make([]*domain.Appointment, 0)
	for i := 0; i < 50; i++ {
		appointments = append(appointments, appointmentAt(day.Add(10*time.Hour), 5, 7, int64(i)))
	}
	u, _ := buildUsage(appointments, time.UTC)

	dc := dayContext{
		date:           "10/03/2025",
		branchID:       7,
		serviceTypeID:  5,
		serviceType:    &domain.ServiceType{ID: 5, Disregarded: true, MorningLimit: ptr.Ptr(1)},
		branch:         &domain.Branch{ID: 7, AvailableSpaces: ptr.Ptr(1)},
		qualifiedCount: 2,
		usage:          u,
	}

	hc := resolveHourCapacity(dc, "10:00", testPool(1, 2))

	assert.True(t, hc.available)
	assert.Equal(t, domain.UnlimitedSlotCount, hc.count)
	assert.Len(t, hc.attendants, 2)
}

func TestResolveHourCapacity_PeriodLimitShortCircuits(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	u, _ := buildUsage([]*domain.Appointment{
		appointmentAt(day.Add(9*time.Hour), 5, 7, 99),
	}, time.UTC)

	dc := dayContext{
		date:           "10/03/2025",
		branchID:       7,
		serviceTypeID:  5,
		serviceType:    &domain.ServiceType{ID: 5, MorningLimit: ptr.Ptr(1)},
		branch:         &domain.Branch{ID: 7, AvailableSpaces: ptr.Ptr(10)},
		qualifiedCount: 3,
		usage:          u,
	}

	// Лимит утра исчерпан: час недоступен, хотя специалисты и филиал свободны
	hc := resolveHourCapacity(dc, "10:00", testPool(1, 2, 3))

	assert.False(t, hc.available)
	assert.Equal(t, 0, hc.count)
	assert.Empty(t, hc.attendants)
}

func TestResolveHourCapacity_RemovesBusyAttendants(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	// Специалист 1 занят по другой услуге в тот же час
	u, _ := buildUsage([]*domain.Appointment{
		appointmentAt(day.Add(10*time.Hour), 6, 8, 1),
	}, time.UTC)

	dc := dayContext{
		date:           "10/03/2025",
		branchID:       7,
		serviceTypeID:  5,
		serviceType:    &domain.ServiceType{ID: 5},
		branch:         &domain.Branch{ID: 7},
		qualifiedCount: 3,
		usage:          u,
	}

	hc := resolveHourCapacity(dc, "10:00", testPool(1, 2, 3))

	assert.Equal(t, 2, hc.count)
	require.Len(t, hc.attendants, 2)
	assert.Equal(t, int64(2), hc.attendants[0].ID)
	assert.Equal(t, int64(3), hc.attendants[1].ID)
}

func TestResolveHourCapacity_MinOfConstraints(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	// Вместимость филиала 2, одна запись по услуге в этот час на этом филиале
	u, _ := buildUsage([]*domain.Appointment{
		appointmentAt(day.Add(10*time.Hour), 5, 7, 99),
	}, time.UTC)

	dc := dayContext{
		date:           "10/03/2025",
		branchID:       7,
		serviceTypeID:  5,
		serviceType:    &domain.ServiceType{ID: 5},
		branch:         &domain.Branch{ID: 7, AvailableSpaces: ptr.Ptr(2)},
		qualifiedCount: 3,
		usage:          u,
	}

	// min(филиал 2-1, услуга 3-1, свободные 3) = 1
	hc := resolveHourCapacity(dc, "10:00", testPool(1, 2, 3))

	assert.True(t, hc.available)
	assert.Equal(t, 1, hc.count)
}

func TestResolveHourCapacity_ZeroQualifiedTreatedAsUnbounded(t *testing.T) {
	dc := dayContext{
		date:           "10/03/2025",
		branchID:       7,
		serviceTypeID:  5,
		serviceType:    &domain.ServiceType{ID: 5},
		branch:         &domain.Branch{ID: 7},
		qualifiedCount: 0,
		usage:          emptyUsage(),
	}

	// При нуле квалифицированных специалистов ограничение услуги
	// не применяется; итог определяется пулом
	hc := resolveHourCapacity(dc, "10:00", testPool(1, 2))
	assert.Equal(t, 2, hc.count)
}

func TestResolveHourCapacity_NeverNegative(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	// Филиал переполнен: занято больше, чем вместимость
	appointments := []*domain.Appointment{
		appointmentAt(day.Add(10*time.Hour), 6, 7, 11),
		appointmentAt(day.Add(10*time.Hour), 6, 7, 12),
		appointmentAt(day.Add(10*time.Hour), 6, 7, 13),
	}
	u, _ := buildUsage(appointments, time.UTC)

	dc := dayContext{
		date:           "10/03/2025",
		branchID:       7,
		serviceTypeID:  5,
		serviceType:    &domain.ServiceType{ID: 5},
		branch:         &domain.Branch{ID: 7, AvailableSpaces: ptr.Ptr(1)},
		qualifiedCount: 3,
		usage:          u,
	}

	hc := resolveHourCapacity(dc, "10:00", testPool(1, 2, 3))

	assert.False(t, hc.available)
	assert.Equal(t, 0, hc.count)
	assert.Empty(t, hc.attendants)
}

func TestResolveHourCapacity_NoFreeAttendantsMeansUnavailable(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	u, _ := buildUsage([]*domain.Appointment{
		appointmentAt(day.Add(10*time.Hour), 6, 8, 1),
		appointmentAt(day.Add(10*time.Hour), 6, 8, 2),
	}, time.UTC)

	dc := dayContext{
		date:           "10/03/2025",
		branchID:       7,
		serviceTypeID:  5,
		serviceType:    &domain.ServiceType{ID: 5},
		branch:         &domain.Branch{ID: 7, AvailableSpaces: ptr.Ptr(10)},
		qualifiedCount: 2,
		usage:          u,
	}

	// Все кандидаты заняты - час недоступен независимо от прочих лимитов
	hc := resolveHourCapacity(dc, "10:00", testPool(1, 2))

	assert.False(t, hc.available)
	assert.Equal(t, 0, hc.count)
}

func TestResolveHourCapacity_NilServiceTypeAndBranch(t *testing.T) {
	// Отсутствующие филиал и тип услуги не ограничивают вместимость
	dc := dayContext{
		date:           "10/03/2025",
		branchID:       7,
		serviceTypeID:  5,
		qualifiedCount: 2,
		usage:          emptyUsage(),
	}

	hc := resolveHourCapacity(dc, "10:00", testPool(1, 2))
	assert.Equal(t, 2, hc.count)
}

func TestApplyAttendantFilter_Present(t *testing.T) {
	hc := hourCapacity{
		hour:       "10:00",
		available:  true,
		count:      3,
		attendants: testPool(1, 2, 3),
	}

	filtered := applyAttendantFilter(hc, 2)

	assert.True(t, filtered.available)
	assert.Equal(t, 1, filtered.count)
	require.Len(t, filtered.attendants, 1)
	assert.Equal(t, int64(2), filtered.attendants[0].ID)
}

func TestApplyAttendantFilter_Absent(t *testing.T) {
	hc := hourCapacity{
		hour:       "10:00",
		available:  true,
		count:      3,
		attendants: testPool(1, 2, 3),
	}

	filtered := applyAttendantFilter(hc, 42)

	assert.False(t, filtered.available)
	assert.Equal(t, 0, filtered.count)
	assert.Empty(t, filtered.attendants)
}

func TestDayTotal_NoPeriodLimitsSumsHours(t *testing.T) {
	dc := dayContext{
		date:          "10/03/2025",
		serviceTypeID: 5,
		serviceType:   &domain.ServiceType{ID: 5},
		usage:         emptyUsage(),
	}

	hours := []hourCapacity{
		{hour: "10:00", available: true, count: 2},
		{hour: "14:00", available: true, count: 3},
	}

	assert.Equal(t, 5, dayTotal(dc, hours))
}

func TestDayTotal_PeriodLimitsUseRemaining(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	u, _ := buildUsage([]*domain.Appointment{
		appointmentAt(day.Add(9*time.Hour), 5, 7, 1),
	}, time.UTC)

	dc := dayContext{
		date:          "10/03/2025",
		serviceTypeID: 5,
		serviceType:   &domain.ServiceType{ID: 5, MorningLimit: ptr.Ptr(3)},
		usage:         u,
	}

	hours := []hourCapacity{
		{hour: "10:00", available: true, count: 2}, // Утро: перекрывается лимитом
		{hour: "14:00", available: true, count: 4}, // Вечер без лимита: идет суммой
	}

	// Утро: 3-1=2, вечер: 4, ночь: 0
	assert.Equal(t, 6, dayTotal(dc, hours))
}

func TestDayTotal_ExhaustedPeriodClampsAtZero(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	appointments := []*domain.Appointment{
		appointmentAt(day.Add(9*time.Hour), 5, 7, 1),
		appointmentAt(day.Add(10*time.Hour), 5, 7, 2),
	}
	u, _ := buildUsage(appointments, time.UTC)

	dc := dayContext{
		date:          "10/03/2025",
		serviceTypeID: 5,
		serviceType:   &domain.ServiceType{ID: 5, MorningLimit: ptr.Ptr(1)},
		usage:         u,
	}

	hours := []hourCapacity{{hour: "11:00", count: 0}}

	assert.Equal(t, 0, dayTotal(dc, hours))
}
