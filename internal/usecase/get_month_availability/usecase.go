package get_month_availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	branchRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/branch"
	serviceTypeRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/servicetype"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// UseCase use case расчета доступности слотов за календарный месяц
type UseCase struct {
	appointmentRepo AppointmentRepository
	branchRepo      BranchRepository
	serviceTypeRepo ServiceTypeRepository
	attendantRepo   AttendantRepository
	scheduleRepo    ScheduleRepository
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	branchRepo BranchRepository,
	serviceTypeRepo ServiceTypeRepository,
	attendantRepo AttendantRepository,
	scheduleRepo ScheduleRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		branchRepo:      branchRepo,
		serviceTypeRepo: serviceTypeRepo,
		attendantRepo:   attendantRepo,
		scheduleRepo:    scheduleRepo,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет расчет доступности за месяц
//
// Движок ничего не пишет: читает снимки данных, строит агрегаты занятости
// и обходит дни окна. Либо возвращается полный отчет, либо ошибка до его
// формирования - частичного результата не бывает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: branch=%d, service=%d, year=%d, month=%d",
		req.BranchID, req.ServiceTypeID, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно расчета (до обращений к данным)
	now := uc.timeProvider.Now().In(uc.location)

	rng, err := newMonthRange(req.Year, req.Month, now)
	if err != nil {
		uc.logger.Warn("GetMonthAvailability: invalid range year=%d month=%d: %v", req.Year, req.Month, err)
		return nil, err
	}

	// 3. Независимые чтения выполняются параллельно с жесткой точкой
	// синхронизации: агрегация не начинается, пока не завершатся все
	var (
		appointments []*domain.Appointment
		branch       *domain.Branch
		serviceType  *domain.ServiceType
		attendants   []domain.Attendant
		schedules    []*domain.Schedule
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		appointments, err = uc.appointmentRepo.GetByWindow(gctx, rng.Start, rng.End)
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
		return nil
	})

	g.Go(func() error {
		b, err := uc.branchRepo.GetByID(gctx, req.BranchID)
		if err != nil {
			// Отсутствующий филиал трактуется как неограниченная вместимость
			if errors.Is(err, branchRepo.ErrBranchNotFound) {
				uc.logger.Warn("GetMonthAvailability: branch id=%d not found, capacity unbounded", req.BranchID)
				return nil
			}
			return fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
		}
		branch = b
		return nil
	})

	g.Go(func() error {
		st, err := uc.serviceTypeRepo.GetByID(gctx, req.ServiceTypeID)
		if err != nil {
			// Отсутствующий тип услуги трактуется как отсутствие ограничений
			if errors.Is(err, serviceTypeRepo.ErrServiceTypeNotFound) {
				uc.logger.Warn("GetMonthAvailability: service type id=%d not found, no service constraints", req.ServiceTypeID)
				return nil
			}
			return fmt.Errorf("%w: failed to get service type: %v", ErrInternal, err)
		}
		serviceType = st
		return nil
	})

	g.Go(func() error {
		var err error
		attendants, err = uc.attendantRepo.GetQualifiedByServiceType(gctx, req.ServiceTypeID)
		if err != nil {
			return fmt.Errorf("%w: failed to get qualified attendants: %v", ErrInternal, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		schedules, err = uc.scheduleRepo.GetByServiceType(gctx, req.ServiceTypeID)
		if err != nil {
			return fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetMonthAvailability: data retrieval failed: %v", err)
		return nil, err
	}

	// 4. Агрегаты занятости строятся один раз на все окно
	usageIndex, skipped := buildUsage(appointments, uc.location)
	if skipped > 0 {
		uc.logger.Warn("GetMonthAvailability: skipped %d appointments with unresolvable service type or time", skipped)
	}

	// 5. Обход дней окна
	days, err := uc.walkDays(ctx, req, rng, serviceType, branch, attendants, schedules, usageIndex)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetMonthAvailability: computed %d days for branch=%d, service=%d, month=%d/%d",
		len(days), req.BranchID, req.ServiceTypeID, req.Month, req.Year)

	return &Response{
		BranchID:      req.BranchID,
		ServiceTypeID: req.ServiceTypeID,
		Year:          req.Year,
		Month:         req.Month,
		Days:          days,
	}, nil
}

// walkDays обходит каждый календарный день окна и собирает дневные итоги
// Дни без покрытия расписанием опускаются, а не отдаются с нулями
func (uc *UseCase) walkDays(
	ctx context.Context,
	req *Request,
	rng monthRange,
	serviceType *domain.ServiceType,
	branch *domain.Branch,
	attendants []domain.Attendant,
	schedules []*domain.Schedule,
	usageIndex *usage,
) ([]DayAvailability, error) {
	days := make([]DayAvailability, 0)

	firstDay := time.Date(rng.Start.Year(), rng.Start.Month(), rng.Start.Day(), 0, 0, 0, 0, uc.location)
	lastDay := time.Date(rng.End.Year(), rng.End.Month(), rng.End.Day(), 0, 0, 0, 0, uc.location)

	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		// Расчет можно прервать между итерациями дней
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		weekday := domain.WeekdayFromTime(day.Weekday())
		pools := mergeDaySchedules(weekday, schedules, attendants)
		if len(pools) == 0 {
			continue
		}

		hourKeys := make([]types.TimeString, 0, len(pools))
		for key := range pools {
			if !uc.hourInWindow(day, key, rng) {
				continue
			}
			hourKeys = append(hourKeys, key)
		}
		if len(hourKeys) == 0 {
			continue
		}

		sort.Slice(hourKeys, func(i, j int) bool { return hourKeys[i].IsBefore(hourKeys[j]) })

		dc := dayContext{
			date:           day.Format(domain.DateFormat),
			branchID:       req.BranchID,
			serviceTypeID:  req.ServiceTypeID,
			serviceType:    serviceType,
			branch:         branch,
			qualifiedCount: len(attendants),
			usage:          usageIndex,
		}

		hours := make([]hourCapacity, 0, len(hourKeys))
		anyAvailable := false
		for _, key := range hourKeys {
			hc := resolveHourCapacity(dc, key, pools[key])
			if req.AttendantID != nil {
				hc = applyAttendantFilter(hc, *req.AttendantID)
			}
			if hc.available {
				anyAvailable = true
			}
			hours = append(hours, hc)
		}

		total := dayTotal(dc, hours)

		days = append(days, DayAvailability{
			Date: dc.date,
			// Дизъюнкция намеренно избыточна: расхождение условий
			// указывает на ошибку агрегации
			HaveSpace:           total > 0 || anyAvailable,
			TotalAvailableSlots: total,
			Hours:               toHourModels(hours),
		})
	}

	return days, nil
}

// hourInWindow возвращает true, если час слота попадает в окно расчета
// Для текущего месяца первый день окна начинается с "сейчас" - более
// ранние часы этого дня не предлагаются
func (uc *UseCase) hourInWindow(day time.Time, hour types.TimeString, rng monthRange) bool {
	minutes, err := hour.Minutes()
	if err != nil {
		return false
	}

	slotMoment := day.Add(time.Duration(minutes) * time.Minute)
	return !slotMoment.Before(rng.Start)
}

// toHourModels конвертирует результаты расчета в модели ответа
func toHourModels(hours []hourCapacity) []HourAvailability {
	result := make([]HourAvailability, len(hours))
	for i, h := range hours {
		attendants := make([]AttendantInfo, len(h.attendants))
		for j, att := range h.attendants {
			attendants[j] = AttendantInfo{ID: att.ID, Username: att.Username}
		}
		result[i] = HourAvailability{
			Hour:       h.hour.String(),
			HaveSpace:  h.available,
			Count:      h.count,
			Attendants: attendants,
		}
	}
	return result
}
