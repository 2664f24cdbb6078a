package get_month_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByWindow получает записи, попадающие в окно [start, end]
	// Отмененные/перенесенные записи и записи disregarded-типов услуг исключены
	GetByWindow(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error)
}

// BranchRepository интерфейс репозитория филиалов
type BranchRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
}

// ServiceTypeRepository интерфейс репозитория типов услуг
type ServiceTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceType, error)
}

// AttendantRepository интерфейс репозитория специалистов
type AttendantRepository interface {
	// GetQualifiedByServiceType получает специалистов, квалифицированных на тип услуги
	GetQualifiedByServiceType(ctx context.Context, serviceTypeID int64) ([]domain.Attendant, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	// GetByServiceType получает расписания типов специалистов,
	// квалифицированных на тип услуги
	GetByServiceType(ctx context.Context, serviceTypeID int64) ([]*domain.Schedule, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
