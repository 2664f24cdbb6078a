package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий для чтения недельных расписаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByServiceType получает расписания всех типов специалистов,
// квалифицированных на тип услуги
// Каждое расписание собирается целиком: семь дней недели со слотами.
// Время слотов нормализуется к каноничному TimeString еще на границе
// доступа к данным
func (r *Repository) GetByServiceType(ctx context.Context, serviceTypeID int64) ([]*domain.Schedule, error) {
	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.name",
		"sd.weekday",
		"ts.slot_time",
		"ts.active",
	).
		From("schedules s").
		Join("schedule_days sd ON sd.schedule_id = s.id").
		LeftJoin("time_slots ts ON ts.schedule_day_id = sd.id").
		Where(`s.id IN (
			SELECT DISTINCT at.schedule_id
			FROM attendant_types at
			JOIN attendant_type_service_types ast ON ast.attendant_type_id = at.id
			WHERE ast.service_type_id = ?
		)`, serviceTypeID).
		OrderBy("s.id ASC", "sd.weekday ASC", "ts.slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// scanSchedules собирает плоские строки join-а в доменные расписания
func (r *Repository) scanSchedules(rows *sql.Rows) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0)
	byID := make(map[int64]*domain.Schedule)

	for rows.Next() {
		var (
			scheduleID int64
			name       string
			weekday    int
			slotTime   sql.NullString
			active     sql.NullBool
		)

		if err := rows.Scan(&scheduleID, &name, &weekday, &slotTime, &active); err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}

		schedule, ok := byID[scheduleID]
		if !ok {
			schedule = &domain.Schedule{
				ID:   scheduleID,
				Name: name,
				Days: make(map[domain.Weekday][]domain.TimeSlot),
			}
			byID[scheduleID] = schedule
			schedules = append(schedules, schedule)
		}

		day := domain.Weekday(weekday)
		if _, ok := schedule.Days[day]; !ok {
			schedule.Days[day] = make([]domain.TimeSlot, 0)
		}

		// LEFT JOIN: день без слотов дает NULL-колонки слота
		if !slotTime.Valid {
			continue
		}

		normalized, err := types.NewTimeStringFromString(trimSeconds(slotTime.String))
		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - schedule=%d weekday=%d: %v", ErrInvalidSlotTime, scheduleID, weekday, err)
		}

		schedule.Days[day] = append(schedule.Days[day], domain.TimeSlot{
			Time:   normalized,
			Active: active.Valid && active.Bool,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// trimSeconds отбрасывает секунды у значений типа TIME ("10:00:00")
func trimSeconds(s string) string {
	if len(s) >= 8 && s[2] == ':' && s[5] == ':' {
		return s[:5]
	}
	return s
}
