package get_month_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func appointmentAt(t time.Time, serviceTypeID, branchID, attendantID int64) *domain.Appointment {
	return &domain.Appointment{
		ScheduledAt:   t,
		ServiceTypeID: serviceTypeID,
		BranchID:      branchID,
		AttendantID:   attendantID,
		Status:        domain.StatusScheduled,
	}
}

func TestBuildUsage_Counts(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	appointments := []*domain.Appointment{
		appointmentAt(day.Add(10*time.Hour), 5, 7, 1),
		appointmentAt(day.Add(10*time.Hour), 5, 7, 2),
		appointmentAt(day.Add(11*time.Hour), 5, 7, 1),
		appointmentAt(day.Add(10*time.Hour), 6, 8, 3), // Другая услуга, другой филиал
	}

	u, skipped := buildUsage(appointments, time.UTC)
	require.Equal(t, 0, skipped)

	assert.Equal(t, 2, u.serviceCount("10/03/2025", "10:00", 5))
	assert.Equal(t, 1, u.serviceCount("10/03/2025", "11:00", 5))
	assert.Equal(t, 1, u.serviceCount("10/03/2025", "10:00", 6))
	assert.Equal(t, 0, u.serviceCount("10/03/2025", "12:00", 5))

	assert.Equal(t, 2, u.branchCount("10/03/2025", "10:00", 7))
	assert.Equal(t, 1, u.branchCount("10/03/2025", "10:00", 8))

	// Часы 10 и 11 попадают в утренний период
	assert.Equal(t, 3, u.periodCount("10/03/2025", domain.PeriodMorning, 5))
	assert.Equal(t, 1, u.periodCount("10/03/2025", domain.PeriodMorning, 6))
	assert.Equal(t, 0, u.periodCount("10/03/2025", domain.PeriodEvening, 5))
}

func TestBuildUsage_BusyAcrossServices(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	// Специалист 1 записан по услуге 6 - занят и для услуги 5
	u, _ := buildUsage([]*domain.Appointment{
		appointmentAt(day.Add(10*time.Hour), 6, 7, 1),
	}, time.UTC)

	assert.True(t, u.isBusy("10/03/2025", "10:00", 1))
	assert.False(t, u.isBusy("10/03/2025", "11:00", 1))
	assert.False(t, u.isBusy("10/03/2025", "10:00", 2))
}

func TestBuildUsage_PeriodBoundaries(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		hour   int
		period domain.Period
	}{
		{5, domain.PeriodNight},
		{6, domain.PeriodMorning},
		{11, domain.PeriodMorning},
		{12, domain.PeriodEvening},
		{17, domain.PeriodEvening},
		{18, domain.PeriodNight},
		{23, domain.PeriodNight},
		{0, domain.PeriodNight},
	}

	for _, tt := range tests {
		u, _ := buildUsage([]*domain.Appointment{
			appointmentAt(day.Add(time.Duration(tt.hour)*time.Hour), 5, 7, 1),
		}, time.UTC)
		assert.Equal(t, 1, u.periodCount("10/03/2025", tt.period, 5), "hour %d", tt.hour)
	}
}

func TestBuildUsage_SkipsUnresolvableRecords(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	appointments := []*domain.Appointment{
		appointmentAt(day.Add(10*time.Hour), 5, 7, 1),
		appointmentAt(day.Add(10*time.Hour), 0, 7, 2), // Без типа услуги
		{ServiceTypeID: 5, BranchID: 7, AttendantID: 3, Status: domain.StatusScheduled}, // Нулевое время
	}

	u, skipped := buildUsage(appointments, time.UTC)

	assert.Equal(t, 2, skipped)
	assert.Equal(t, 1, u.serviceCount("10/03/2025", "10:00", 5))
}

func TestBuildUsage_DeduplicatesServiceAttendants(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	// Аномалия данных: две записи одного специалиста в один час по одной
	// услуге. Счетчик растет, но в множестве специалист один
	u, _ := buildUsage([]*domain.Appointment{
		appointmentAt(day.Add(10*time.Hour), 5, 7, 1),
		appointmentAt(day.Add(10*time.Hour), 5, 7, 1),
		appointmentAt(day.Add(10*time.Hour), 5, 7, 2),
	}, time.UTC)

	assert.Equal(t, 3, u.serviceCount("10/03/2025", "10:00", 5))
	assert.ElementsMatch(t, []int64{1, 2}, u.serviceAttendants("10/03/2025", "10:00", 5))
	assert.Empty(t, u.serviceAttendants("10/03/2025", "11:00", 5))
}

func TestBuildUsage_IgnoresNonUsageStatuses(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	cancelled := appointmentAt(day.Add(10*time.Hour), 5, 7, 1)
	cancelled.Status = domain.StatusCancelled
	rescheduled := appointmentAt(day.Add(10*time.Hour), 5, 7, 2)
	rescheduled.Status = domain.StatusRescheduled

	u, skipped := buildUsage([]*domain.Appointment{
		cancelled,
		rescheduled,
		appointmentAt(day.Add(10*time.Hour), 5, 7, 3),
	}, time.UTC)

	// Не занимающие место записи игнорируются молча, без счетчика пропусков
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 1, u.serviceCount("10/03/2025", "10:00", 5))
	assert.False(t, u.isBusy("10/03/2025", "10:00", 1))
}

func TestBuildUsage_TotalCountMatchesInput(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	appointments := make([]*domain.Appointment, 0)
	for hour := 8; hour < 20; hour++ {
		appointments = append(appointments,
			appointmentAt(day.Add(time.Duration(hour)*time.Hour), 5, 7, int64(hour)),
			appointmentAt(day.Add(time.Duration(hour)*time.Hour), 6, 7, int64(hour+100)),
		)
	}

	u, skipped := buildUsage(appointments, time.UTC)
	require.Equal(t, 0, skipped)

	// Сумма по всем (дата, час, услуга) равна количеству входных записей
	total := 0
	for _, count := range u.serviceHourCount {
		total += count
	}
	assert.Equal(t, len(appointments), total)
}

func TestBuildUsage_LocalizesToBusinessZone(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 13:00 UTC = 10:00 в Сан-Паулу (UTC-3)
	u, _ := buildUsage([]*domain.Appointment{
		appointmentAt(time.Date(2025, time.March, 10, 13, 0, 0, 0, time.UTC), 5, 7, 1),
	}, saoPaulo)

	assert.Equal(t, 1, u.serviceCount("10/03/2025", "10:00", 5))
	assert.Equal(t, 0, u.serviceCount("10/03/2025", "13:00", 5))
}
