package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWindow получает записи, попадающие в окно [start, end]
//
// Фильтрация на стороне БД повторяет требования движка доступности:
// отмененные и перенесенные записи место не занимают, записи
// disregarded-типов услуг в учете занятости не нуждаются
func (r *Repository) GetByWindow(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error) {
	nonUsageStatuses := make([]string, len(domain.NonUsageStatuses))
	for i, s := range domain.NonUsageStatuses {
		nonUsageStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"a.id",
		"a.scheduled_at",
		"a.service_type_id",
		"a.branch_id",
		"a.attendant_id",
		"a.status",
		"a.created_at",
		"a.updated_at",
	).
		From("appointments a").
		Join("service_types st ON st.id = a.service_type_id").
		Where(squirrel.GtOrEq{"a.scheduled_at": start}).
		Where(squirrel.LtOrEq{"a.scheduled_at": end}).
		Where(squirrel.NotEq{"a.status": nonUsageStatuses}).
		Where(squirrel.Eq{"st.disregarded": false}).
		OrderBy("a.scheduled_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.ScheduledAt,
			&appt.ServiceTypeID,
			&appt.BranchID,
			&appt.AttendantID,
			&appt.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
