package servicetype

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения типов услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает тип услуги по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ServiceType, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"disregarded",
		"morning_limit",
		"evening_limit",
		"night_limit",
	).
		From("service_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var serviceType domain.ServiceType
	var morningLimit, eveningLimit, nightLimit sql.NullInt64

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&serviceType.ID,
		&serviceType.Name,
		&serviceType.Disregarded,
		&morningLimit,
		&eveningLimit,
		&nightLimit,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service type: %v", ErrScanRow, err)
	}

	serviceType.MorningLimit = toIntPtr(morningLimit)
	serviceType.EveningLimit = toIntPtr(eveningLimit)
	serviceType.NightLimit = toIntPtr(nightLimit)

	return &serviceType, nil
}

// toIntPtr конвертирует NULL-able колонку в опциональный лимит
func toIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	value := int(v.Int64)
	return &value
}
