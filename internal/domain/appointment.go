package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "scheduled"
	StatusConfirmed   AppointmentStatus = "confirmed"
	StatusCompleted   AppointmentStatus = "completed"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusRescheduled AppointmentStatus = "rescheduled"
	StatusNoShow      AppointmentStatus = "no_show"
)

// Appointment represents a booked appointment in the system
// Для движка доступности это неизменяемый снимок: движок записи не создает,
// не меняет и не отменяет
type Appointment struct {
	ID            int64
	ScheduledAt   time.Time // Дата и время записи
	ServiceTypeID int64
	BranchID      int64
	AttendantID   int64
	Status        AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsTowardUsage возвращает true, если запись занимает место
// Отмененные и перенесенные записи не учитываются при подсчете занятости
func (a *Appointment) CountsTowardUsage() bool {
	return a.Status != StatusCancelled && a.Status != StatusRescheduled
}

// NonUsageStatuses список статусов записей, не занимающих место
// Используется при фильтрации записей для подсчета доступных слотов
var NonUsageStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusRescheduled,
}
