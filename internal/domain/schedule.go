package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Weekday закрытое перечисление дней недели (воскресенье = 0)
// Используется вместо локализованных названий дней, чтобы исключить
// опечатки в строковых ключах как класс ошибок
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekdayFromTime конвертирует time.Weekday в доменный Weekday
func WeekdayFromTime(w time.Weekday) Weekday {
	return Weekday(int(w))
}

// String returns the weekday name
func (w Weekday) String() string {
	switch w {
	case Sunday:
		return "sunday"
	case Monday:
		return "monday"
	case Tuesday:
		return "tuesday"
	case Wednesday:
		return "wednesday"
	case Thursday:
		return "thursday"
	case Friday:
		return "friday"
	case Saturday:
		return "saturday"
	default:
		return "unknown"
	}
}

// TimeSlot represents a single slot in a weekly schedule grid
type TimeSlot struct {
	Time   types.TimeString
	Active bool
}

// Schedule represents a weekly schedule shared by attendants of one attendant type
// Хранит семь дней недели, каждый со своим набором слотов
type Schedule struct {
	ID   int64
	Name string
	Days map[Weekday][]TimeSlot
}

// ActiveSlots returns the active time slots for the given weekday
func (s *Schedule) ActiveSlots(w Weekday) []TimeSlot {
	slots := make([]TimeSlot, 0)
	for _, slot := range s.Days[w] {
		if slot.Active {
			slots = append(slots, slot)
		}
	}
	return slots
}
