package attendant

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения специалистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория специалистов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetQualifiedByServiceType получает специалистов, квалифицированных
// на тип услуги, вместе с ID их расписаний
// Квалификация идет через цепочку "специалист -> тип специалиста ->
// тип услуги"; расписание специалист наследует от своего типа
func (r *Repository) GetQualifiedByServiceType(ctx context.Context, serviceTypeID int64) ([]domain.Attendant, error) {
	query, args, err := psqlbuilder.Select(
		"DISTINCT a.id",
		"a.username",
		"at.schedule_id",
	).
		From("attendants a").
		Join("attendant_types at ON at.id = a.attendant_type_id").
		Join("attendant_type_service_types ast ON ast.attendant_type_id = at.id").
		Where(squirrel.Eq{"ast.service_type_id": serviceTypeID}).
		OrderBy("a.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetQualifiedByServiceType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetQualifiedByServiceType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	attendants := make([]domain.Attendant, 0)
	for rows.Next() {
		var att domain.Attendant
		if err := rows.Scan(&att.ID, &att.Username, &att.ScheduleID); err != nil {
			return nil, fmt.Errorf("%w: GetQualifiedByServiceType - scan attendant: %v", ErrScanRow, err)
		}
		attendants = append(attendants, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetQualifiedByServiceType - rows error: %v", ErrScanRow, err)
	}

	return attendants, nil
}
