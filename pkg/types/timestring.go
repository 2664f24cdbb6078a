package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timeLayout формат времени в рамках одного дня
const timeLayout = "15:04"

// TimeString каноничное представление времени суток в формате "HH:MM".
// Единый тип для слотов расписания, времени записей и границ рабочего дня -
// на границе доступа к данным всё приводится к нему, дальше по коду
// никакого ветвления по "сырым" строкам/датам нет.
type TimeString string

// NewTimeString создает TimeString из time.Time (с точностью до минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки формата "HH:MM"
// Нормализует значения вида "9:30" к "09:30"
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		// Пробуем формат без ведущего нуля
		parsed, err = time.Parse("15:4", s)
		if err != nil {
			return "", fmt.Errorf("invalid time format %q: expected HH:MM", s)
		}
	}
	return TimeString(parsed.Format(timeLayout)), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает час (0-23)
func (t TimeString) Hour() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time value %q: %v", string(t), err)
	}
	return parsed.Hour(), nil
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time value %q: %v", string(t), err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время через minutes минут (в пределах суток)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time value %q: %v", string(t), err)
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// Scan реализует sql.Scanner для чтения из БД (TIME или текстовая колонка)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		normalized, err := NewTimeStringFromString(trimSeconds(v))
		if err != nil {
			return err
		}
		*t = normalized
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// trimSeconds отбрасывает секунды у значений вида "10:00:00" (тип TIME в postgres)
func trimSeconds(s string) string {
	if len(s) >= 8 && s[2] == ':' && s[5] == ':' {
		return s[:5]
	}
	return s
}
